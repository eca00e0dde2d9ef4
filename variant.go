package argon2

// Variant selects one member of the Argon2 family. The selector value
// is folded into InitialHash, so changing the variant changes the tag
// even when every other input is held constant.
type Variant uint32

const (
	// VariantD is Argon2d: fully data-dependent memory access. Fast and
	// maximally resistant to GPU/ASIC tradeoff attacks, but the access
	// pattern leaks through cache-timing side channels.
	VariantD Variant = 0

	// VariantI is Argon2i: fully data-independent memory access,
	// recommended when the access pattern must not depend on secret
	// data (e.g. password hashing on a shared host).
	VariantI Variant = 1

	// VariantDI is Argon2di: data-dependent in the first half of the
	// first pass, data-independent thereafter — the inverse schedule
	// of VariantID.
	VariantDI Variant = 2

	// VariantID is Argon2id: data-independent in the first half of the
	// first pass (closing the side-channel window while the memory is
	// still sparse), data-dependent thereafter. The PHC-recommended
	// default for most password-hashing deployments.
	VariantID Variant = 3

	// VariantDS is Argon2ds: data-dependent addressing identical to
	// VariantD, with an additional S-box mixing stage inside the
	// compression function.
	VariantDS Variant = 4

	// numVariants bounds the "unknown variant" validation check in
	// valid(). Never part of the public API.
	numVariants = 5
)

func (v Variant) valid() bool {
	return v < numVariants
}

func (v Variant) usesSbox() bool {
	return v == VariantDS
}

// dataIndependent reports whether, for the given variant, the segment
// at (pass, slice) derives its (J1, J2) values from the address
// generator (true) or from the previous block's contents (false).
//
// VariantD and VariantDS always read previous-block contents.
// VariantI always uses the address generator.
// VariantID uses the generator only in the first two slices of the
// first pass; VariantDI is the inverse schedule.
func (v Variant) dataIndependent(pass, slice uint32) bool {
	switch v {
	case VariantI:
		return true
	case VariantID:
		return pass == 0 && slice < SyncPoints/2
	case VariantDI:
		return !(pass == 0 && slice < SyncPoints/2)
	default: // VariantD, VariantDS
		return false
	}
}
