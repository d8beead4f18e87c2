package image

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Molcarrus/stegnoapp/internal/bits"
	"github.com/Molcarrus/stegnoapp/pkg/config"
)

func TestExtractInvalidChunkWidth(t *testing.T) {
	img := generateImage(4, 4)
	_, err := NewExtractor(img, config.ImageDecodeConfig{LSBsToUse: 9})
	if !errors.Is(err, bits.ErrInvalidBitCount) {
		t.Errorf("Expected ErrInvalidBitCount, got %v", err)
	}
}

func TestExtractAllZeroImage(t *testing.T) {
	// No nonzero chunk anywhere: the start is never detected and extraction produces
	// no output, same as an empty secret would
	img := &RGBImage{Pix: make([]byte, 30)}

	extractor, err := NewExtractor(img, config.ImageDecodeConfig{LSBsToUse: 3})
	if err != nil {
		t.Fatalf("Error creating extractor: %s", err)
	}

	var secret bytes.Buffer
	if err = extractor.Extract(&secret); err != nil {
		t.Fatalf("Error extracting from all-zero image: %s", err)
	}
	if secret.Len() != 0 {
		t.Errorf("Extracted %d bytes from an all-zero image, expected none", secret.Len())
	}
}

func TestExtractAlignmentCorrection(t *testing.T) {
	// 0x09 at 3 LSBs decomposes to chunks [0, 2, 1]. The first chunk is zero, so the
	// detected start falls one chunk into the group; only the end-anchored alignment
	// correction recovers the byte intact
	img := &RGBImage{Pix: make([]byte, 10)}
	secret := []byte{0x09}

	embedder, err := NewEmbedder(img, int64(len(secret)), config.ImageEncodeConfig{LSBsToUse: 3})
	if err != nil {
		t.Fatalf("Error creating embedder: %s", err)
	}
	if err = embedder.Embed(bytes.NewReader(secret)); err != nil {
		t.Fatalf("Error embedding secret: %s", err)
	}

	extractor, err := NewExtractor(img, config.ImageDecodeConfig{LSBsToUse: 3})
	if err != nil {
		t.Fatalf("Error creating extractor: %s", err)
	}

	var extracted bytes.Buffer
	if err = extractor.Extract(&extracted); err != nil {
		t.Fatalf("Error extracting secret: %s", err)
	}
	if !bytes.Equal(extracted.Bytes(), secret) {
		t.Errorf("Extracted %#v, expected %#v", extracted.Bytes(), secret)
	}
}

func TestExtractPaddingNotMultipleOfChunkCount(t *testing.T) {
	// With 3 LSBs a 100 byte image and a 3 byte secret leave 91 padding bytes, which
	// is not a multiple of chunksPerByte=3, so the start index sits mid-group
	img := &RGBImage{Pix: generateRandomBytes(100)}
	secret := []byte{0xB7, 0x00, 0x42}

	embedder, err := NewEmbedder(img, int64(len(secret)), config.ImageEncodeConfig{LSBsToUse: 3})
	if err != nil {
		t.Fatalf("Error creating embedder: %s", err)
	}
	if embedder.ZeroPadding() != 91 {
		t.Fatalf("Zero padding was %d, expected 91", embedder.ZeroPadding())
	}
	if err = embedder.Embed(bytes.NewReader(secret)); err != nil {
		t.Fatalf("Error embedding secret: %s", err)
	}

	extractor, err := NewExtractor(img, config.ImageDecodeConfig{LSBsToUse: 3})
	if err != nil {
		t.Fatalf("Error creating extractor: %s", err)
	}

	var extracted bytes.Buffer
	if err = extractor.Extract(&extracted); err != nil {
		t.Fatalf("Error extracting secret: %s", err)
	}
	if !bytes.Equal(extracted.Bytes(), secret) {
		t.Errorf("Extracted %#v, expected %#v", extracted.Bytes(), secret)
	}
}

func TestExtractWholeByteChunks(t *testing.T) {
	// With 8 LSBs the image bytes are the secret bytes; the leading zero run is
	// skipped and everything from the first nonzero byte onward is emitted
	img := &RGBImage{Pix: append(make([]byte, 90), generateSecret(10)...)}

	extractor, err := NewExtractor(img, config.ImageDecodeConfig{LSBsToUse: 8})
	if err != nil {
		t.Fatalf("Error creating extractor: %s", err)
	}

	var extracted bytes.Buffer
	if err = extractor.Extract(&extracted); err != nil {
		t.Fatalf("Error extracting secret: %s", err)
	}
	if !bytes.Equal(extracted.Bytes(), img.Pix[90:]) {
		t.Errorf("Extracted %#v, expected %#v", extracted.Bytes(), img.Pix[90:])
	}
}
