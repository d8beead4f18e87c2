package image

import (
	"fmt"
	"image"
	"math/rand"
	"testing"

	"github.com/Molcarrus/stegnoapp/internal/bits"
)

const testImageSize = 64

type testFunc func(t *testing.T, LSBsToUse byte)

func runImageTestsWithAllChunkWidths(t *testing.T, testFunc testFunc) {
	for LSBsToUse := byte(1); LSBsToUse <= 8; LSBsToUse++ {
		LSBsToUseCopy := LSBsToUse
		t.Run(fmt.Sprintf("LSBsToUse-%d", LSBsToUse), func(t *testing.T) {
			t.Parallel()
			testFunc(t, LSBsToUseCopy)
		})
	}
}

func generateImage(width, height int) *RGBImage {
	return &RGBImage{
		Pix:  generateRandomBytes(width * height * 3),
		Rect: image.Rectangle{Min: image.Point{}, Max: image.Point{X: width, Y: height}},
	}
}

// generateSecret forces the high bit of the first byte, so the first decomposed chunk
// is nonzero for every chunk width and the secret cannot collide with the padding run
func generateSecret(numOfBytes int) []byte {
	secret := generateRandomBytes(numOfBytes)
	if len(secret) > 0 {
		secret[0] |= 0x80
	}
	return secret
}

func calculateBytesThatFitInImage(img *RGBImage, LSBsToUse byte) int {
	spec, err := bits.NewChunkSpec(LSBsToUse)
	if err != nil {
		panic(err)
	}
	return len(img.Pix) / int(spec.ChunksPerByte)
}

func generateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}
