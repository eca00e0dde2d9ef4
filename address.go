package argon2

// addressesPerBlock is the number of (J1, J2) pairs harvested from a
// single address block: one pair per word, taken from the first
// WORDS_IN_BLOCK/2 = 64 of its qwordsInBlock = 128 words.
const addressesPerBlock = qwordsInBlock / 2

// addressGenerator produces pseudo-random (J1, J2) pairs for the
// data-independent variants (Argon2i, and the Argon2i-style segments
// of Argon2id/Argon2di) without reading any memory content, per spec
// section 4.4.
type addressGenerator struct {
	inst    *instance
	pos     Position
	counter uint64
	block   Block
	ready   bool
}

// newAddressGenerator starts a generator for the given segment. The
// first address block is produced lazily on the first call to wordAt.
func newAddressGenerator(inst *instance, pos Position) *addressGenerator {
	return &addressGenerator{inst: inst, pos: pos, counter: 1}
}

// wordAt returns the (J1, J2) pair for segment-relative position i, per
// spec section 4.4: the pair comes from the "i mod addressesPerBlock"-th
// word of the current address block A, and A is regenerated whenever
// that index wraps to 0 (including the very first access of a segment,
// which may start mid-block — the first segment of pass 0 starts at
// i=2, not i=0, so it must read words 2, 3, 4, ... of the first A, not
// restart its own private count from 0).
func (g *addressGenerator) wordAt(i uint32) (j1, j2 uint32) {
	idx := i % addressesPerBlock
	if !g.ready || idx == 0 {
		g.generate()
		g.ready = true
	}

	word := g.block[idx]
	return uint32(word), uint32(word >> 32)
}

// generate builds one address block: A = G(0, G(0, inputBlock)), where
// inputBlock encodes (pass, lane, slice, memory_blocks, passes, type,
// counter) as little-endian 64-bit words with the remainder zeroed.
func (g *addressGenerator) generate() {
	var zero, input, inner Block
	input[0] = uint64(g.pos.Pass)
	input[1] = uint64(g.pos.Lane)
	input[2] = uint64(g.pos.Slice)
	input[3] = uint64(g.inst.memoryBlocks)
	input[4] = uint64(g.inst.passes)
	input[5] = uint64(g.inst.variant)
	input[6] = g.counter

	compress(&inner, &zero, &input, nil)
	compress(&g.block, &zero, &inner, nil)

	g.counter++
}
