package config

import "image/png"

// DefaultLSBsToUse matches the historical CLI default: two bits per channel keeps the
// distortion invisible on most photos while still fitting a quarter of the image size.
const DefaultLSBsToUse = 2

type ImageEncodeConfig struct {
	LSBsToUse           byte
	PngCompressionLevel png.CompressionLevel
}

func (c *ImageEncodeConfig) PopulateUnsetConfigVars() {
	if c.LSBsToUse == 0 {
		c.LSBsToUse = DefaultLSBsToUse
	}
}

// ImageDecodeConfig carries the chunk width used during encoding. The embedded data
// has no header, so the caller must know the width the image was encoded with.
type ImageDecodeConfig struct {
	LSBsToUse byte
}

func (c *ImageDecodeConfig) PopulateUnsetConfigVars() {
	if c.LSBsToUse == 0 {
		c.LSBsToUse = DefaultLSBsToUse
	}
}
