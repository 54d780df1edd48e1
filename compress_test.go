package blake2b

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/libblake2/blake2b/internal/consts"
	"github.com/libblake2/blake2b/ref"
)

func TestCompress(t *testing.T) {
	var chain [8]uint64
	var block [16]uint64

	for i := 0; i < 1e5; i++ {
		var o2 [8]uint64

		counter := [2]uint64{pcg.Uint64(), pcg.Uint64()}
		flags := [2]uint64{pcg.Uint64(), pcg.Uint64()}
		for i := range &chain {
			chain[i] = pcg.Uint64()
		}
		for i := range &block {
			block[i] = pcg.Uint64()
		}

		before := chain
		o1 := compress(&chain, &block, counter, flags)
		ref.Compress(&chain, &block, counter, flags, &o2)

		assert.Equal(t, o1, o2)
		assert.Equal(t, chain, before)
	}
}

// https://tools.ietf.org/html/rfc7693#appendix-A
func TestCompressRFC7693(t *testing.T) {
	p := params{digestLen: Size}
	chain := p.chain()
	assert.Equal(t, chain[0], uint64(0x6a09e667f2bdc948))

	block := [16]uint64{0x0000000000636261}
	out := compress(&chain, &block, [2]uint64{3, 0}, [2]uint64{consts.Flag_Last, 0})

	assert.Equal(t, out, [8]uint64{
		0x0D4D1C983FA580BA, 0xE9F6129FB697276A, 0xB7C45A68142F214C,
		0xD1A2FFDB6FBB124B, 0x2D79AB2A39C5877D, 0x95CC3345DED552C2,
		0x5A92F1DBA88AD318, 0x239900D4ED8623B9,
	})
}

func TestMixingRotations(t *testing.T) {
	// With b = c = m = 0 the first half of g leaves d = rotr(a, 32) and the
	// second half only depends on the fixed rotation amounts.
	a, b, c, d := g(1, 0, 0, 0, 0, 0)

	ea := uint64(1)
	ed := uint64(1) << 32
	ec := ed
	eb := ec >> 24
	ea += eb
	ed ^= ea
	ed = ed>>16 | ed<<48
	ec += ed
	eb ^= ec
	eb = eb>>63 | eb<<1

	assert.Equal(t, [4]uint64{a, b, c, d}, [4]uint64{ea, eb, ec, ed})
}
