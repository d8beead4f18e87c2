package api

type EncodeImageRequest struct {
	LsbsToUse  byte   `json:"lsbs_to_use"`
	CoverImage []byte `json:"cover_image"`
	Secret     []byte `json:"secret"`
}

type EncodeImageResponse struct {
	EncodedImage []byte `json:"encoded_image"`
}
