package bits

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewChunkSpec(t *testing.T) {
	expectedSpecs := map[byte]ChunkSpec{
		1: {Bits: 1, Mask: 0b1, ChunksPerByte: 8, Padded: false},
		2: {Bits: 2, Mask: 0b11, ChunksPerByte: 4, Padded: false},
		3: {Bits: 3, Mask: 0b111, ChunksPerByte: 3, Padded: true},
		4: {Bits: 4, Mask: 0b1111, ChunksPerByte: 2, Padded: false},
		5: {Bits: 5, Mask: 0b11111, ChunksPerByte: 2, Padded: true},
		6: {Bits: 6, Mask: 0b111111, ChunksPerByte: 2, Padded: true},
		7: {Bits: 7, Mask: 0b1111111, ChunksPerByte: 2, Padded: true},
		8: {Bits: 8, Mask: 0xFF, ChunksPerByte: 1, Padded: false},
	}

	for bits := byte(1); bits <= 8; bits++ {
		spec, err := NewChunkSpec(bits)
		if err != nil {
			t.Fatalf("Error creating chunk spec for %d bits: %s", bits, err)
		}
		if spec != expectedSpecs[bits] {
			t.Errorf("Chunk spec for %d bits was %+v, expected %+v", bits, spec, expectedSpecs[bits])
		}
		if int(spec.Bits)*int(spec.ChunksPerByte) < 8 {
			t.Errorf("Chunk spec for %d bits cannot cover a full byte", bits)
		}
	}

	for _, invalidBits := range []byte{0, 9, 255} {
		if _, err := NewChunkSpec(invalidBits); !errors.Is(err, ErrInvalidBitCount) {
			t.Errorf("Expected ErrInvalidBitCount for %d bits, got %v", invalidBits, err)
		}
	}
}

func TestChunkDecomposition(t *testing.T) {
	tests := []struct {
		bits           byte
		sourceByte     byte
		expectedChunks []byte
	}{
		{bits: 1, sourceByte: 0xA5, expectedChunks: []byte{1, 0, 1, 0, 0, 1, 0, 1}},
		{bits: 2, sourceByte: 0x41, expectedChunks: []byte{0b01, 0b00, 0b00, 0b01}},
		{bits: 3, sourceByte: 0xFF, expectedChunks: []byte{0b111, 0b111, 0b11}},
		{bits: 3, sourceByte: 0x09, expectedChunks: []byte{0b000, 0b010, 0b01}},
		{bits: 4, sourceByte: 0xC3, expectedChunks: []byte{0xC, 0x3}},
		{bits: 5, sourceByte: 0xC3, expectedChunks: []byte{0b11000, 0b011}},
		{bits: 7, sourceByte: 0x81, expectedChunks: []byte{0b1000000, 0b1}},
		{bits: 8, sourceByte: 0x5A, expectedChunks: []byte{0x5A}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("bits-%d-byte-%#x", test.bits, test.sourceByte), func(t *testing.T) {
			spec, err := NewChunkSpec(test.bits)
			if err != nil {
				t.Fatalf("Error creating chunk spec: %s", err)
			}

			reader := spec.Chunks(test.sourceByte)
			var chunks []byte
			for chunk, ok := reader.Next(); ok; chunk, ok = reader.Next() {
				chunks = append(chunks, chunk)
			}

			if len(chunks) != int(spec.ChunksPerByte) {
				t.Fatalf("Expected %d chunks, got %d", spec.ChunksPerByte, len(chunks))
			}
			for i, chunk := range chunks {
				if chunk != test.expectedChunks[i] {
					t.Errorf("Chunk %d was %#b, expected %#b", i, chunk, test.expectedChunks[i])
				}
			}
		})
	}
}

func TestChunkReaderExhaustion(t *testing.T) {
	spec, err := NewChunkSpec(3)
	if err != nil {
		t.Fatalf("Error creating chunk spec: %s", err)
	}

	reader := spec.Chunks(0xFF)
	for i := byte(0); i < spec.ChunksPerByte; i++ {
		if _, ok := reader.Next(); !ok {
			t.Fatalf("Reader exhausted after %d of %d chunks", i, spec.ChunksPerByte)
		}
	}
	for i := 0; i < 3; i++ {
		if chunk, ok := reader.Next(); ok || chunk != 0 {
			t.Errorf("Exhausted reader returned chunk %d with ok=%t", chunk, ok)
		}
	}
}

func TestJoinChunksInverse(t *testing.T) {
	for bits := byte(1); bits <= 8; bits++ {
		spec, err := NewChunkSpec(bits)
		if err != nil {
			t.Fatalf("Error creating chunk spec for %d bits: %s", bits, err)
		}

		chunks := make([]byte, 0, spec.ChunksPerByte)
		for b := 0; b <= 0xFF; b++ {
			chunks = chunks[:0]
			reader := spec.Chunks(byte(b))
			for chunk, ok := reader.Next(); ok; chunk, ok = reader.Next() {
				chunks = append(chunks, chunk)
			}

			if joined := spec.JoinChunks(chunks); joined != byte(b) {
				t.Errorf("Joining chunks of %#x with %d bits produced %#x", b, bits, joined)
			}
		}
	}
}

func TestJoinChunksShortInput(t *testing.T) {
	spec, err := NewChunkSpec(2)
	if err != nil {
		t.Fatalf("Error creating chunk spec: %s", err)
	}

	// A partial sequence still joins, filling from the most significant end
	if joined := spec.JoinChunks([]byte{0b01}); joined != 0x40 {
		t.Errorf("Joining short chunk sequence produced %#x, expected 0x40", joined)
	}
	if joined := spec.JoinChunks(nil); joined != 0 {
		t.Errorf("Joining empty chunk sequence produced %#x, expected 0", joined)
	}
}
