package argon2

import "encoding/binary"

// hPrime implements H'(x, tau), the variable-length hash built on top
// of BLAKE2b described in spec section 4.1. It is the only source of
// outputs longer than 64 bytes in the whole algorithm, used both for
// the first two blocks of every lane and for the final tag.
//
//   - If tau <= 64: H'(x, tau) = BLAKE2b(LE32(tau) || x, outlen=tau).
//   - Else: let r = ceil(tau/32) - 2. V1 = BLAKE2b(LE32(tau) || x, 64),
//     V(i+1) = BLAKE2b(V(i), 64) for i = 1..r. The output is the first
//     32 bytes of each of V1..Vr, followed by the full V(r+1) truncated
//     to tau - 32*r bytes.
func hPrime(x []byte, tau uint32) []byte {
	lenPrefixed := make([]byte, 4+len(x))
	binary.LittleEndian.PutUint32(lenPrefixed[:4], tau)
	copy(lenPrefixed[4:], x)

	if tau <= 64 {
		return blake2bSum(lenPrefixed, int(tau))
	}

	out := make([]byte, tau)
	v := blake2bSum(lenPrefixed, 64)
	copied := copy(out, v[:32])

	for copied < int(tau) {
		v = blake2bSum(v, 64)
		remaining := int(tau) - copied
		if remaining > 64 {
			copied += copy(out[copied:], v[:32])
		} else {
			copied += copy(out[copied:], v[:remaining])
		}
	}

	return out
}
