// Package ref is a direct, table driven rendition of the BLAKE2b compression
// function. It favors readability over speed and is used to check the
// unrolled implementation.
package ref

import (
	"math/bits"

	"github.com/libblake2/blake2b/internal/consts"
)

// G mixes the message words selected by round r and step i into the four
// lanes a, b, c and d.
func G(r, i int, a, b, c, d *uint64, m *[16]uint64) {
	s := &consts.Sigma[r]

	*a = *a + *b + m[s[2*i]]
	*d = bits.RotateLeft64(*d^*a, -32)
	*c = *c + *d
	*b = bits.RotateLeft64(*b^*c, -24)
	*a = *a + *b + m[s[2*i+1]]
	*d = bits.RotateLeft64(*d^*a, -16)
	*c = *c + *d
	*b = bits.RotateLeft64(*b^*c, -63)
}

// Round applies G to the four columns and then the four diagonals of v.
func Round(r int, v *[16]uint64, m *[16]uint64) {
	for i := 0; i < 4; i++ {
		G(r, i, &v[i], &v[i+4], &v[i+8], &v[i+12], m)
	}

	G(r, 4, &v[0], &v[5], &v[10], &v[15], m)
	G(r, 5, &v[1], &v[6], &v[11], &v[12], m)
	G(r, 6, &v[2], &v[7], &v[8], &v[13], m)
	G(r, 7, &v[3], &v[4], &v[9], &v[14], m)
}

// Compress writes the chaining value that follows chain after absorbing
// block into out. counter is the byte counter (low, high) and flags the
// finalization pair. chain and out may alias.
func Compress(chain *[8]uint64, block *[16]uint64, counter, flags [2]uint64, out *[8]uint64) {
	var v [16]uint64
	copy(v[:8], chain[:])
	copy(v[8:], consts.IV[:])

	v[12] ^= counter[0]
	v[13] ^= counter[1]
	v[14] ^= flags[0]
	v[15] ^= flags[1]

	for r := 0; r < consts.Rounds; r++ {
		Round(r, &v, block)
	}

	for k := 0; k < 8; k++ {
		out[k] = chain[k] ^ v[k] ^ v[k+8]
	}
}
