package argon2

import (
	"hash"

	"golang.org/x/crypto/blake2b"
)

// blake2bSum computes a single BLAKE2b hash of data with the given
// output size (1 to 64 bytes). This is the sole external collaborator
// the core requires, per spec section 6: everything else — H', the
// compression function G, the indexing rule — is built on top of this
// one primitive.
func blake2bSum(data []byte, outLen int) []byte {
	h, err := blake2b.New(outLen, nil)
	if err != nil {
		// outLen is always caller-controlled and in [1,64] at every call
		// site in this package; a failure here means an internal
		// invariant was violated, not a runtime condition to recover from.
		panic("argon2: invalid blake2b output length: " + err.Error())
	}
	h.Write(data)
	return h.Sum(nil)
}

// blake2bSum512 computes a one-shot 64-byte BLAKE2b digest. InitialHash
// builds H0 with the streaming newBlake2b512 hasher instead, since its
// input is assembled incrementally from several fields. hPrime hashes
// its single-buffer inputs with blake2bSum(data, 64), which yields the
// same digest; this one-shot form is exercised only by the tests.
func blake2bSum512(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// newBlake2b512 returns a streaming 64-byte BLAKE2b hasher, used where
// the input is assembled incrementally (InitialHash) rather than as a
// single contiguous buffer.
func newBlake2b512() hash.Hash {
	h, err := blake2b.New512(nil)
	if err != nil {
		panic("argon2: blake2b-512 unavailable: " + err.Error())
	}
	return h
}
