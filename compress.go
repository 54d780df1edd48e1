package blake2b

import (
	"math/bits"

	"github.com/libblake2/blake2b/internal/consts"
)

func g(a, b, c, d, mx, my uint64) (uint64, uint64, uint64, uint64) {
	a += b + mx
	d = bits.RotateLeft64(d^a, -32)
	c += d
	b = bits.RotateLeft64(b^c, -24)
	a += b + my
	d = bits.RotateLeft64(d^a, -16)
	c += d
	b = bits.RotateLeft64(b^c, -63)
	return a, b, c, d
}

// compress returns the chaining value that follows h after absorbing block m
// with byte counter t and finalization flags f. h is left untouched.
func compress(h *[8]uint64, m *[consts.BlockWords]uint64, t, f [2]uint64) [8]uint64 {
	s := [16]uint64{
		h[0], h[1], h[2], h[3],
		h[4], h[5], h[6], h[7],
		consts.IV0, consts.IV1, consts.IV2, consts.IV3,
		consts.IV4 ^ t[0], consts.IV5 ^ t[1], consts.IV6 ^ f[0], consts.IV7 ^ f[1],
	}

	return rcompress(h, &s, m)
}

// rcompress runs the twelve rounds over s with the message schedule
// unrolled and folds the result into h.
func rcompress(h *[8]uint64, s *[16]uint64, m *[consts.BlockWords]uint64) [8]uint64 {
	const (
		a = 10
		b = 11
		c = 12
		d = 13
		e = 14
		f = 15
	)

	s0, s4, s8, sc := g(s[0], s[4], s[8], s[c], m[0], m[1])
	s1, s5, s9, sd := g(s[1], s[5], s[9], s[d], m[2], m[3])
	s2, s6, sa, se := g(s[2], s[6], s[a], s[e], m[4], m[5])
	s3, s7, sb, sf := g(s[3], s[7], s[b], s[f], m[6], m[7])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[8], m[9])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[a], m[b])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[c], m[d])
	s3, s4, s9, se = g(s3, s4, s9, se, m[e], m[f])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[e], m[a])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[4], m[8])
	s2, s6, sa, se = g(s2, s6, sa, se, m[9], m[f])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[d], m[6])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[1], m[c])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[0], m[2])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[b], m[7])
	s3, s4, s9, se = g(s3, s4, s9, se, m[5], m[3])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[b], m[8])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[c], m[0])
	s2, s6, sa, se = g(s2, s6, sa, se, m[5], m[2])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[f], m[d])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[a], m[e])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[3], m[6])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[7], m[1])
	s3, s4, s9, se = g(s3, s4, s9, se, m[9], m[4])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[7], m[9])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[3], m[1])
	s2, s6, sa, se = g(s2, s6, sa, se, m[d], m[c])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[b], m[e])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[2], m[6])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[5], m[a])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[4], m[0])
	s3, s4, s9, se = g(s3, s4, s9, se, m[f], m[8])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[9], m[0])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[5], m[7])
	s2, s6, sa, se = g(s2, s6, sa, se, m[2], m[4])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[a], m[f])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[e], m[1])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[b], m[c])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[6], m[8])
	s3, s4, s9, se = g(s3, s4, s9, se, m[3], m[d])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[2], m[c])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[6], m[a])
	s2, s6, sa, se = g(s2, s6, sa, se, m[0], m[b])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[8], m[3])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[4], m[d])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[7], m[5])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[f], m[e])
	s3, s4, s9, se = g(s3, s4, s9, se, m[1], m[9])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[c], m[5])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[1], m[f])
	s2, s6, sa, se = g(s2, s6, sa, se, m[e], m[d])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[4], m[a])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[0], m[7])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[6], m[3])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[9], m[2])
	s3, s4, s9, se = g(s3, s4, s9, se, m[8], m[b])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[d], m[b])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[7], m[e])
	s2, s6, sa, se = g(s2, s6, sa, se, m[c], m[1])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[3], m[9])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[5], m[0])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[f], m[4])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[8], m[6])
	s3, s4, s9, se = g(s3, s4, s9, se, m[2], m[a])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[6], m[f])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[e], m[9])
	s2, s6, sa, se = g(s2, s6, sa, se, m[b], m[3])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[0], m[8])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[c], m[2])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[d], m[7])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[1], m[4])
	s3, s4, s9, se = g(s3, s4, s9, se, m[a], m[5])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[a], m[2])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[8], m[4])
	s2, s6, sa, se = g(s2, s6, sa, se, m[7], m[6])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[1], m[5])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[f], m[b])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[9], m[e])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[3], m[c])
	s3, s4, s9, se = g(s3, s4, s9, se, m[d], m[0])

	// rounds 10 and 11 reuse the schedules of rounds 0 and 1
	s0, s4, s8, sc = g(s0, s4, s8, sc, m[0], m[1])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[2], m[3])
	s2, s6, sa, se = g(s2, s6, sa, se, m[4], m[5])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[6], m[7])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[8], m[9])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[a], m[b])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[c], m[d])
	s3, s4, s9, se = g(s3, s4, s9, se, m[e], m[f])

	s0, s4, s8, sc = g(s0, s4, s8, sc, m[e], m[a])
	s1, s5, s9, sd = g(s1, s5, s9, sd, m[4], m[8])
	s2, s6, sa, se = g(s2, s6, sa, se, m[9], m[f])
	s3, s7, sb, sf = g(s3, s7, sb, sf, m[d], m[6])
	s0, s5, sa, sf = g(s0, s5, sa, sf, m[1], m[c])
	s1, s6, sb, sc = g(s1, s6, sb, sc, m[0], m[2])
	s2, s7, s8, sd = g(s2, s7, s8, sd, m[b], m[7])
	s3, s4, s9, se = g(s3, s4, s9, se, m[5], m[3])

	return [8]uint64{
		h[0] ^ s0 ^ s8, h[1] ^ s1 ^ s9, h[2] ^ s2 ^ sa, h[3] ^ s3 ^ sb,
		h[4] ^ s4 ^ sc, h[5] ^ s5 ^ sd, h[6] ^ s6 ^ se, h[7] ^ s7 ^ sf,
	}
}
