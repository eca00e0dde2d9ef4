package argon2

// Allocator supplies and reclaims the memory matrix. The core calls
// Free with the same block count it passed to Allocate, mirroring the
// reference implementation's byte-length contract (spec section 6) at
// Go's natural block granularity.
type Allocator interface {
	Allocate(blocks int) ([]Block, error)
	Free(memory []Block)
}

// defaultAllocator is a plain heap allocation, used whenever a Context
// doesn't supply its own Allocate/Free pair.
type defaultAllocator struct{}

func (defaultAllocator) Allocate(blocks int) ([]Block, error) {
	return make([]Block, blocks), nil
}

func (defaultAllocator) Free(memory []Block) {}

// funcAllocator adapts a Context's optional Allocate/Free function
// pair to the Allocator interface.
type funcAllocator struct {
	allocate func(int) ([]Block, error)
	free     func([]Block)
}

func (a funcAllocator) Allocate(blocks int) ([]Block, error) { return a.allocate(blocks) }
func (a funcAllocator) Free(memory []Block)                  { a.free(memory) }

// zeroBytes clears a byte slice in place. Used to wipe the password
// and/or secret buffers immediately after they are folded into the
// pre-hash, when the corresponding Context flag requests it.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
