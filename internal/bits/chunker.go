package bits

import "errors"

var ErrInvalidBitCount = errors.New("chunk width must be between 1 and 8 bits")

// ChunkSpec describes how a single byte is split into fixed-width chunks, each small
// enough to fit in the least significant bits of one image byte. Specs are immutable;
// per-byte iteration state lives in ChunkReader.
type ChunkSpec struct {
	Bits          byte
	Mask          byte
	ChunksPerByte byte
	Padded        bool
}

func NewChunkSpec(bits byte) (ChunkSpec, error) {
	if bits == 0 || bits > 8 {
		return ChunkSpec{}, ErrInvalidBitCount
	}

	chunksPerByte := (8 + bits - 1) / bits
	return ChunkSpec{
		Bits:          bits,
		Mask:          1<<bits - 1,
		ChunksPerByte: chunksPerByte,
		Padded:        chunksPerByte*bits > 8,
	}, nil
}

// Chunks returns a fresh reader over the chunks of b. Chunks are emitted most
// significant group first, so that the first chunk of any byte with a high bit set is
// guaranteed to be nonzero.
func (s ChunkSpec) Chunks(b byte) ChunkReader {
	return ChunkReader{spec: s, b: b}
}

// JoinChunks reassembles one byte from chunks previously produced by a ChunkReader.
// A short or malformed sequence yields a best-effort byte; the shift saturates at zero
// instead of erroring.
func (s ChunkSpec) JoinChunks(chunks []byte) byte {
	var b byte
	shift := byte(8)
	for _, chunk := range chunks {
		if shift >= s.Bits {
			shift -= s.Bits
		} else {
			shift = 0
		}
		b |= chunk << shift
	}
	return b
}

// ChunkReader iterates over the chunks of a single source byte. Readers are cheap
// value types; create a new one per byte rather than re-arming an old one.
type ChunkReader struct {
	spec ChunkSpec
	b    byte
	step byte
}

// Next returns the next chunk, or ok=false once ChunksPerByte chunks have been read.
// When the chunk width does not evenly divide 8, the final chunk carries the byte's
// low remainder bits unshifted, under a narrowed mask.
func (r *ChunkReader) Next() (chunk byte, ok bool) {
	if r.step >= r.spec.ChunksPerByte {
		return 0, false
	}
	r.step++

	if r.spec.Padded && r.step == r.spec.ChunksPerByte {
		shift := r.spec.Bits*r.step - 8
		return r.b & (r.spec.Mask >> shift), true
	}
	shift := 8 - r.spec.Bits*r.step
	return (r.b >> shift) & r.spec.Mask, true
}
