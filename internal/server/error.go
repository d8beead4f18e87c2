package server

import "github.com/Molcarrus/stegnoapp/api"

var (
	errRequestBodyDecode = api.Error{Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errInvalidBitCount   = api.Error{Code: "invalid_bit_count", Error: "lsbs_to_use must be between 1 and 8"}
	errSecretTooLarge    = api.Error{Code: "secret_too_large", Error: "Supplied secret does not fit in the supplied image at the requested bit count"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
	errDecode            = api.Error{Code: "decode_error", Error: "An error occurred while extracting the secret from the image"}
)
