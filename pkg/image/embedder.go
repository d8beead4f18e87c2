package image

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Molcarrus/stegnoapp/internal/bits"
	"github.com/Molcarrus/stegnoapp/pkg/config"
	"github.com/Molcarrus/stegnoapp/pkg/model"
)

var (
	ErrSecretTooLarge = errors.New("secret does not fit in the supplied image, either choose a bigger image or raise the chunk width")
)

// Embedder hides a secret byte stream in the low bits of an image. Each image byte
// receives exactly one chunk; the secret is preceded by a run of zero chunks sized so
// that its last chunk lands on the image's last byte.
type Embedder struct {
	image       *RGBImage
	spec        bits.ChunkSpec
	config      config.ImageEncodeConfig
	zeroPadding int

	stats model.EncodeStats
}

// NewEmbedder validates capacity up front: a secret of secretSize bytes needs
// secretSize*ChunksPerByte image bytes. Construction with a secret that exactly fills
// the image succeeds.
func NewEmbedder(img *RGBImage, secretSize int64, iConfig config.ImageEncodeConfig) (*Embedder, error) {
	setupStart := time.Now()
	iConfig.PopulateUnsetConfigVars()

	spec, err := bits.NewChunkSpec(iConfig.LSBsToUse)
	if err != nil {
		return nil, err
	}

	requiredBytes := secretSize * int64(spec.ChunksPerByte)
	if requiredBytes > int64(len(img.Pix)) {
		return nil, ErrSecretTooLarge
	}

	e := &Embedder{
		image:       img,
		spec:        spec,
		config:      iConfig,
		zeroPadding: len(img.Pix) - int(requiredBytes),
	}
	e.stats.Setup = time.Since(setupStart)
	return e, nil
}

func (e *Embedder) Stats() model.EncodeStats {
	return e.stats
}

// ZeroPadding is the number of leading image bytes whose low bits are cleared before
// the secret starts.
func (e *Embedder) ZeroPadding() int {
	return e.zeroPadding
}

// Capacity is the largest secret, in bytes, the image can hold at the configured
// chunk width.
func (e *Embedder) Capacity() int {
	return len(e.image.Pix) / int(e.spec.ChunksPerByte)
}

// Embed streams the secret into the image buffer. The high bits of every image byte
// are left untouched; only the low Bits bits are replaced. The zero-padding run
// doubles as the start marker the extractor scans for, so a secret whose first byte
// decomposes to an all-zero leading chunk run cannot be told apart from padding.
func (e *Embedder) Embed(secret io.Reader) error {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	keep := ^e.spec.Mask
	for p := 0; p < e.zeroPadding; p++ {
		e.image.Pix[p] &= keep
	}

	secretReader := bufio.NewReader(secret)
	p := e.zeroPadding
	for {
		secretByte, err := secretReader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading secret: %w", err)
		}

		reader := e.spec.Chunks(secretByte)
		for chunk, ok := reader.Next(); ok; chunk, ok = reader.Next() {
			if p >= len(e.image.Pix) {
				// The source yielded more bytes than the size the embedder was sized for
				return ErrSecretTooLarge
			}
			e.image.Pix[p] = e.image.Pix[p]&keep | chunk
			p++
		}
	}

	return nil
}

// WriteEncodedPNG writes the image with the embedded secret to output.
func (e *Embedder) WriteEncodedPNG(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return e.image.WritePNG(output, e.config.PngCompressionLevel)
}
