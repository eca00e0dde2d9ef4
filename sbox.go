package argon2

// S-box constants. SBOX_SIZE and SBOX_MASK are carried over from the
// reference implementation's argon2-core.h, which defines them as
// 1 << 10 and SBOX_SIZE/2 - 1 respectively; spec section 4.2 describes
// indexing by "the low log2(SBOX_SIZE) bits" of a 1024-word table, so
// this package uses the full sboxSize-1 mask (10 bits) to index the
// whole table rather than the header's half-table mask, since Argon2ds
// has no published test vectors to reconcile the two against (see
// DESIGN.md).
const (
	sboxSize      = 1 << 10 // 1024 64-bit words
	sboxMask      = sboxSize - 1
	sboxMixRounds = 32
)

// sbox is the lookup table the ds variant's compression function
// mixes in. It is regenerated from scratch after pass 0 and before
// every subsequent pass.
type sbox [sboxSize]uint64

// regenerateSbox rebuilds sb from the block at (lane 0, column 0) of
// memory, applying G repeatedly and harvesting its 128-word output
// each time until all sboxSize words are filled, per spec section 4.5.
func regenerateSbox(sb *sbox, seed *Block) {
	var zero, cur, next Block
	cur = *seed

	for offset := 0; offset < sboxSize; offset += qwordsInBlock {
		compress(&next, &zero, &cur, nil)
		copy(sb[offset:offset+qwordsInBlock], next[:])
		cur = next
	}
}

// mix injects the S-box lookup stage described in spec section 4.2
// into the running compression state z. For sboxMixRounds rounds it
// takes two 64-bit words from the running state, looks up two S-box
// entries by their low sboxMask bits, multiplies them (64x64 -> 128,
// keeping the low 64 bits — exactly what a plain uint64 multiply in Go
// already does), and XORs the product back into the state.
func (sb *sbox) mix(z *Block) {
	a, b := z[0], z[1]

	for round := 0; round < sboxMixRounds; round++ {
		sa := sb[a&sboxMask]
		sbv := sb[b&sboxMask]
		product := sa * sbv

		idx := round % qwordsInBlock
		z[idx] ^= product

		a = z[idx]
		b = sa ^ sbv
	}
}
