package argon2

import "encoding/binary"

// Block size constants from the Argon2 specification.
const (
	// blockSize is the size of an Argon2 memory block in bytes.
	blockSize = 1024

	// qwordsInBlock is the number of 64-bit words in a block.
	qwordsInBlock = blockSize / 8 // 128
)

// Block is a 1024-byte Argon2 memory block viewed as 128 little-endian
// uint64 words. It is the unit the compression function, the indexing
// rule, and the memory matrix all operate on.
type Block [qwordsInBlock]uint64

// XOR performs an in-place XOR of b with other: b[i] ^= other[i].
func (b *Block) XOR(other *Block) {
	for i := range b {
		b[i] ^= other[i]
	}
}

// Copy overwrites b with other's contents.
func (b *Block) Copy(other *Block) {
	*b = *other
}

// Zero clears every word of b. Used to wipe sensitive intermediate
// state before it is released.
func (b *Block) Zero() {
	for i := range b {
		b[i] = 0
	}
}

// setBytes loads a block from exactly blockSize little-endian bytes.
func (b *Block) setBytes(data []byte) {
	for i := 0; i < qwordsInBlock; i++ {
		b[i] = binary.LittleEndian.Uint64(data[i*8 : i*8+8])
	}
}

// bytes returns a new blockSize-byte little-endian encoding of b.
func (b *Block) bytes() []byte {
	out := make([]byte, blockSize)
	for i := 0; i < qwordsInBlock; i++ {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], b[i])
	}
	return out
}

// zeroBlocks wipes every block in memory. This is the side effect
// Finalize performs when the caller's ClearMemory flag is set.
func zeroBlocks(memory []Block) {
	for i := range memory {
		memory[i].Zero()
	}
}
