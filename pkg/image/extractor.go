package image

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/Molcarrus/stegnoapp/internal/bits"
	"github.com/Molcarrus/stegnoapp/pkg/config"
	"github.com/Molcarrus/stegnoapp/pkg/model"
)

// Extractor recovers a secret byte stream from the low bits of an image previously
// written by an Embedder with the same chunk width.
type Extractor struct {
	image *RGBImage
	spec  bits.ChunkSpec

	stats model.DecodeStats
}

func NewExtractor(img *RGBImage, iConfig config.ImageDecodeConfig) (*Extractor, error) {
	iConfig.PopulateUnsetConfigVars()

	spec, err := bits.NewChunkSpec(iConfig.LSBsToUse)
	if err != nil {
		return nil, err
	}

	return &Extractor{image: img, spec: spec}, nil
}

func (x *Extractor) Stats() model.DecodeStats {
	return x.stats
}

// Extract scans every image byte's low bits, treats the first nonzero chunk as the
// start of data, and joins chunks back into bytes from there to the end of the image.
//
// The embedded stream carries no length field or end marker. Output always runs to
// the image's last byte, so the caller is responsible for trimming to the true secret
// length. An image with no nonzero chunk produces no output at all, which is
// indistinguishable from an empty secret or a wrong chunk width.
func (x *Extractor) Extract(output io.Writer) error {
	decodeStart := time.Now()
	defer func() {
		x.stats.DataDecoding = time.Since(decodeStart)
	}()

	secretWriter := bufio.NewWriter(output)
	chunksPerByte := int(x.spec.ChunksPerByte)
	chunks := make([]byte, 0, chunksPerByte)
	started := false

	for i, p := range x.image.Pix {
		chunk := p & x.spec.Mask

		if !started && chunk > 0 {
			// The padding run is a byte count, not a multiple of the chunk count, so the
			// detected start may sit mid-group. Aligning to the known image tail keeps every
			// following group a whole output byte.
			if offset := (len(x.image.Pix) - i) % chunksPerByte; offset != 0 {
				for n := 0; n < chunksPerByte-offset; n++ {
					chunks = append(chunks, 0)
				}
			}
			started = true
		}

		if started {
			chunks = append(chunks, chunk)
		}

		if len(chunks) == chunksPerByte {
			if err := secretWriter.WriteByte(x.spec.JoinChunks(chunks)); err != nil {
				return fmt.Errorf("writing secret: %w", err)
			}
			chunks = chunks[:0]
		}
	}

	if err := secretWriter.Flush(); err != nil {
		return fmt.Errorf("flushing secret: %w", err)
	}
	return nil
}
