// Package argon2 implements the memory-hard core of the Argon2 family
// of password-hashing functions: Argon2d, Argon2i, Argon2id, Argon2di,
// and the S-box-extended Argon2ds. It computes a fixed-length tag from
// a password, salt, optional secret and associated data, and cost
// parameters, following the algorithm described by the Argon2
// specification (initial hash, first-block seeding, parallel memory
// filling with data-dependent and/or data-independent indexing, and
// finalization).
//
// The command-line driver, benchmarking harnesses, and cycle-counting
// instrumentation that typically sit on top of an implementation like
// this are out of scope: this package is the computation engine only.
//
// Example usage:
//
//	ctx := &argon2.Context{
//	    Out:   make([]byte, 32),
//	    Pwd:   []byte("correct horse battery staple"),
//	    Salt:  []byte("somesaltsomesalt"),
//	    TCost: 3,
//	    MCost: 1 << 16,
//	    Lanes: 4,
//	}
//	if err := argon2.Argon2id(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	tag := ctx.Out
package argon2

import "encoding/binary"

// Argon2Version is the version byte folded into InitialHash.
const Argon2Version = version

// initialHash computes H0 as described in spec section 4.6:
//
//	H0 = BLAKE2b(lanes || outlen || m_cost || t_cost || version || type ||
//	             |pwd| || pwd || |salt| || salt ||
//	             |secret| || secret || |ad| || ad, outlen=64)
func initialHash(c *Context, variant Variant) [64]byte {
	h := newBlake2b512()

	var buf [4]byte
	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	writeField := func(data []byte) {
		writeU32(uint32(len(data)))
		h.Write(data)
	}

	writeU32(c.Lanes)
	writeU32(uint32(len(c.Out)))
	writeU32(c.MCost)
	writeU32(c.TCost)
	writeU32(Argon2Version)
	writeU32(uint32(variant))

	writeField(c.Pwd)
	writeField(c.Salt)
	writeField(c.Secret)
	writeField(c.AD)

	var h0 [64]byte
	copy(h0[:], h.Sum(nil))
	return h0
}

// seedFirstBlocks fills columns 0 and 1 of every lane from H0, per
// spec section 4.6:
//
//	block(lane, 0) = H'(H0 || LE32(0) || LE32(lane), 1024)
//	block(lane, 1) = H'(H0 || LE32(1) || LE32(lane), 1024)
func seedFirstBlocks(in *instance, h0 [64]byte) {
	input := make([]byte, 72)
	copy(input[:64], h0[:])

	for lane := uint32(0); lane < in.lanes; lane++ {
		binary.LittleEndian.PutUint32(input[68:72], lane)

		binary.LittleEndian.PutUint32(input[64:68], 0)
		in.block(lane, 0).setBytes(hPrime(input, blockSize))

		binary.LittleEndian.PutUint32(input[64:68], 1)
		in.block(lane, 1).setBytes(hPrime(input, blockSize))
	}
}

// finalize XORs the last block of every lane together and hashes the
// result with H' to produce the outlen-byte tag, per spec section 4.6.
func finalize(in *instance, outlen int) []byte {
	var c Block
	c.Copy(in.block(0, in.laneLength-1))
	for lane := uint32(1); lane < in.lanes; lane++ {
		c.XOR(in.block(lane, in.laneLength-1))
	}

	return hPrime(c.bytes(), uint32(outlen))
}

// argon2Core is Argon2Core from spec section 4.7: it validates c,
// allocates and fills the memory matrix, and writes the tag into
// c.Out. Every exit path releases any memory that was allocated,
// including error paths after allocation succeeds.
func argon2Core(c *Context, variant Variant) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !variant.valid() {
		return newErr(ErrIncorrectType)
	}

	h0 := initialHash(c, variant)

	if c.ClearPassword {
		zeroBytes(c.Pwd)
	}
	if c.ClearSecret {
		zeroBytes(c.Secret)
	}

	in, err := newInstance(c.allocator(), c.TCost, c.MCost, c.Lanes, variant)
	if err != nil {
		return err
	}

	seedFirstBlocks(in, h0)
	fillMemory(in)

	copy(c.Out, finalize(in, len(c.Out)))

	in.release(c.allocator().Free, c.ClearMemory)
	return nil
}

// Argon2d computes the tag using fully data-dependent memory access.
func Argon2d(c *Context) error { return argon2Core(c, VariantD) }

// Argon2i computes the tag using fully data-independent memory access.
func Argon2i(c *Context) error { return argon2Core(c, VariantI) }

// Argon2di computes the tag using Argon2di's schedule: data-dependent
// in the first half of the first pass, data-independent thereafter.
func Argon2di(c *Context) error { return argon2Core(c, VariantDI) }

// Argon2id computes the tag using Argon2id's schedule: data-independent
// in the first half of the first pass, data-dependent thereafter.
func Argon2id(c *Context) error { return argon2Core(c, VariantID) }

// Argon2ds computes the tag using Argon2d's addressing with the
// additional S-box mixing stage inside the compression function.
func Argon2ds(c *Context) error { return argon2Core(c, VariantDS) }

// PHS is the PHC-submission convenience entry point: lanes=1, no
// secret, no associated data, wiping password and secret but not
// memory, using Argon2d. Per spec section 6/9, this mirrors the
// reference implementation's PHS() exactly, including its choice of
// Argon2d over Argon2i.
func PHS(out []byte, in, salt []byte, tCost, mCost uint32) error {
	c := &Context{
		Out:           out,
		Pwd:           in,
		Salt:          salt,
		TCost:         tCost,
		MCost:         mCost,
		Lanes:         1,
		ClearPassword: true,
		ClearSecret:   true,
	}
	return Argon2d(c)
}
