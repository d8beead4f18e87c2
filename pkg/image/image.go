package image

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
)

func init() {
	image.RegisterFormat("jpeg", "jpeg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("jpg", "jpg", jpeg.Decode, jpeg.DecodeConfig)
	image.RegisterFormat("png", "png", png.Decode, png.DecodeConfig)
}

// RGBImage is a raster image flattened to three bytes per pixel, row-major,
// channel-interleaved. The codec only ever sees Pix as one flat byte sequence; Rect is
// kept so the buffer can be turned back into a writable image.
type RGBImage struct {
	Pix  []byte
	Rect image.Rectangle
}

// DecodeRGB decodes any registered raster format and normalizes it to RGB, dropping
// alpha. 16-bit sources are truncated to 8 bits per channel.
func DecodeRGB(r io.Reader) (*RGBImage, error) {
	srcImage, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding source image: %w", err)
	}
	return FromImage(srcImage), nil
}

func FromImage(src image.Image) *RGBImage {
	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)

	pix := make([]byte, 0, bounds.Dx()*bounds.Dy()*3)
	for p := 0; p+3 < len(rgba.Pix); p += 4 {
		pix = append(pix, rgba.Pix[p], rgba.Pix[p+1], rgba.Pix[p+2])
	}

	return &RGBImage{Pix: pix, Rect: bounds}
}

// ToRGBA expands the flat RGB buffer back into a fully opaque RGBA image.
func (ri *RGBImage) ToRGBA() *image.RGBA {
	img := image.NewRGBA(ri.Rect)
	for i, p := 0, 0; p+2 < len(ri.Pix); i, p = i+4, p+3 {
		img.Pix[i] = ri.Pix[p]
		img.Pix[i+1] = ri.Pix[p+1]
		img.Pix[i+2] = ri.Pix[p+2]
		img.Pix[i+3] = 255
	}
	return img
}

// WritePNG always emits PNG; a lossy output format would destroy the embedded low
// bits, so the source format is not preserved for the output image.
func (ri *RGBImage) WritePNG(w io.Writer, level png.CompressionLevel) error {
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(w, ri.ToRGBA()); err != nil {
		return fmt.Errorf("encoding output image: %w", err)
	}
	return nil
}
