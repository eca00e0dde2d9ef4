package argon2

// instance is the computed runtime state for a single Argon2Core
// invocation: the memory matrix and the derived shape parameters that
// govern how it is filled. It corresponds to the reference
// implementation's Argon2_instance_t.
type instance struct {
	memory []Block

	passes        uint32
	lanes         uint32
	memoryBlocks  uint32
	segmentLength uint32
	laneLength    uint32
	variant       Variant

	sbox *sbox // non-nil only for VariantDS
}

// block returns a pointer to the block at (lane, column).
func (in *instance) block(lane, column uint32) *Block {
	return &in.memory[lane*in.laneLength+column]
}

// newInstance derives the memory shape from the validated cost
// parameters and allocates the matrix via alloc. m.cost is rounded
// down to a multiple of 4*lanes per spec section 4.5; the caller must
// have already checked memoryBlocks >= 8*lanes.
func newInstance(alloc Allocator, passes, memoryBlocks, lanes uint32, variant Variant) (*instance, error) {
	segmentLength := memoryBlocks / (SyncPoints * lanes)
	laneLength := segmentLength * SyncPoints
	effectiveBlocks := laneLength * lanes

	mem, err := alloc.Allocate(int(effectiveBlocks))
	if err != nil {
		return nil, wrapErr(ErrMemoryAllocation, err)
	}

	in := &instance{
		memory:        mem,
		passes:        passes,
		lanes:         lanes,
		memoryBlocks:  effectiveBlocks,
		segmentLength: segmentLength,
		laneLength:    laneLength,
		variant:       variant,
	}

	if variant.usesSbox() {
		in.sbox = &sbox{}
	}

	return in, nil
}

// release returns the memory matrix to free, optionally wiping it
// first when clearMemory is set, and always zeroes the S-box if there
// is one. This is the core half of Finalize (spec section 4.6).
// Validation and allocation failures return before any instance
// exists, so there is nothing for them to release.
func (in *instance) release(free func([]Block), clearMemory bool) {
	if in.memory == nil {
		return
	}
	if clearMemory {
		zeroBlocks(in.memory)
	}
	if in.sbox != nil {
		for i := range in.sbox {
			in.sbox[i] = 0
		}
	}
	free(in.memory)
	in.memory = nil
}
