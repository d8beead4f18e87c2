package api

type DecodeImageRequest struct {
	LsbsToUse  byte   `json:"lsbs_to_use"`
	StegoImage []byte `json:"stego_image"`
}

type DecodeImageResponse struct {
	Secret []byte `json:"secret"`
}
