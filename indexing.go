package argon2

// SyncPoints is the number of slices a lane is divided into, and the
// number of cross-lane synchronization barriers per pass.
const SyncPoints = 4

// Position identifies the block currently being produced: which pass,
// which lane, which of the SyncPoints slices, and which column within
// that slice's segment.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// indexAlpha computes the reference block's (lane, column) using the
// skewed indexing rule from spec section 4.3. j1 and j2 are the 32-bit
// pseudo-random values for this block: the low 32 bits of words 0 and 1
// of the previous block for data-dependent variants, or the two halves
// of one address-block word for data-independent ones.
func indexAlpha(pos Position, j1, j2, lanes, segmentLength, laneLength uint32) (refLane, refColumn uint32) {
	if pos.Pass == 0 && pos.Slice == 0 {
		refLane = pos.Lane
	} else {
		refLane = j2 % lanes
	}
	sameLane := refLane == pos.Lane

	var w int64
	switch {
	case sameLane && pos.Pass == 0:
		w = int64(pos.Slice)*int64(segmentLength) + int64(pos.Index) - 1
	case sameLane:
		w = 3*int64(segmentLength) + int64(pos.Index) - 1
	case pos.Pass == 0:
		w = int64(pos.Slice) * int64(segmentLength)
	default:
		w = 3 * int64(segmentLength)
	}
	if !sameLane && pos.Index == 0 {
		w--
	}
	if sameLane && pos.Index == 0 && !(pos.Pass == 0 && pos.Slice == 0) {
		w--
	}
	if w < 1 {
		w = 1
	}

	x := (uint64(j1) * uint64(j1)) >> 32
	y := (uint64(w) * x) >> 32
	z := uint64(w) - 1 - y

	var start uint32
	if pos.Pass != 0 {
		start = ((pos.Slice + 1) * segmentLength) % laneLength
	}
	refColumn = (start + uint32(z)) % laneLength

	return refLane, refColumn
}
