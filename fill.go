package argon2

import "sync"

// fillMemory performs the full memory-filling pass structure described
// in spec section 4.5 and section 5: passes x slices x lanes, with a
// synchronization barrier at every slice boundary so that no lane
// begins slice s+1 before every lane has finished slice s. Within a
// slice the lanes are filled concurrently (one goroutine per lane,
// joined with a sync.WaitGroup), mirroring the teacher's worker-pool
// pattern for the RandomX dataset build.
func fillMemory(in *instance) {
	for pass := uint32(0); pass < in.passes; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			var wg sync.WaitGroup
			for lane := uint32(0); lane < in.lanes; lane++ {
				wg.Add(1)
				go func(lane uint32) {
					defer wg.Done()
					fillSegment(in, pass, lane, slice)
				}(lane)
			}
			wg.Wait()
		}

		if in.variant.usesSbox() && pass+1 < in.passes {
			regenerateSbox(in.sbox, in.block(0, 0))
		}
	}
}

// fillSegment fills one segment — the (lane, slice) intersection — in
// strict column order, since column i depends on column i-1 within the
// same lane. This is the only sequential part of the algorithm; cross-
// lane and cross-pass reads never touch a segment being written
// concurrently (spec section 5), so no locking is required here beyond
// the slice barrier in fillMemory.
func fillSegment(in *instance, pass, lane, slice uint32) {
	start := slice * in.segmentLength
	startIndex := uint32(0)
	if pass == 0 && slice == 0 {
		startIndex = 2
	}

	var gen *addressGenerator
	if in.variant.dataIndependent(pass, slice) {
		gen = newAddressGenerator(in, Position{Pass: pass, Lane: lane, Slice: slice})
	}

	for i := startIndex; i < in.segmentLength; i++ {
		column := start + i

		var prevColumn uint32
		if column == 0 {
			prevColumn = in.laneLength - 1
		} else {
			prevColumn = column - 1
		}
		prev := in.block(lane, prevColumn)

		// Argon2i draws J1/J2 as the two halves of one address-block
		// word (spec section 4.4); Argon2d/Argon2ds instead draw them
		// from two separate words of the previous block (section 4.5).
		var j1, j2 uint32
		if gen != nil {
			j1, j2 = gen.wordAt(i)
		} else {
			j1, j2 = uint32(prev[0]), uint32(prev[1])
		}

		pos := Position{Pass: pass, Lane: lane, Slice: slice, Index: i}
		refLane, refColumn := indexAlpha(pos, j1, j2, in.lanes, in.segmentLength, in.laneLength)
		ref := in.block(refLane, refColumn)

		cur := in.block(lane, column)
		if pass == 0 {
			compress(cur, prev, ref, in.sbox)
		} else {
			var next Block
			compress(&next, prev, ref, in.sbox)
			cur.XOR(&next)
		}
	}
}
