package ref

import (
	"testing"

	"github.com/zeebo/assert"
	"golang.org/x/crypto/blake2b"

	"github.com/libblake2/blake2b/internal/consts"
	"github.com/libblake2/blake2b/internal/utils"
)

// https://tools.ietf.org/html/rfc7693#appendix-A
func TestCompressRFC7693(t *testing.T) {
	chain := [8]uint64{
		0x6a09e667f2bdc948, 0xbb67ae8584caa73b,
		0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
		0x510e527fade682d1, 0x9b05688c2b3e6c1f,
		0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
	}
	block := [16]uint64{0x0000000000636261}

	var out [8]uint64
	Compress(&chain, &block, [2]uint64{3, 0}, [2]uint64{consts.Flag_Last, 0}, &out)

	assert.Equal(t, out, [8]uint64{
		0x0D4D1C983FA580BA, 0xE9F6129FB697276A, 0xB7C45A68142F214C,
		0xD1A2FFDB6FBB124B, 0x2D79AB2A39C5877D, 0x95CC3345DED552C2,
		0x5A92F1DBA88AD318, 0x239900D4ED8623B9,
	})
}

func TestCompressAliased(t *testing.T) {
	chain := consts.IV
	var block [16]uint64
	for i := range block {
		block[i] = uint64(i) * 0x0101010101010101
	}

	var out [8]uint64
	Compress(&chain, &block, [2]uint64{128, 0}, [2]uint64{}, &out)
	Compress(&chain, &block, [2]uint64{128, 0}, [2]uint64{}, &chain)

	assert.Equal(t, out, chain)
}

func TestHash(t *testing.T) {
	// parameter block for an unkeyed 64 byte digest
	chain := consts.IV
	chain[0] ^= 0x01010040

	input := make([]byte, 1024)
	for i := range input {
		input[i] = byte(i+1) % 251
	}

	for n := 0; n <= len(input); n++ {
		var got [64]byte
		sum := Hash(chain, input[:n])
		utils.WordsToBytes(&sum, got[:])

		assert.Equal(t, got, blake2b.Sum512(input[:n]))
	}
}

func TestRoundsRepeatSchedule(t *testing.T) {
	assert.Equal(t, consts.Sigma[10], consts.Sigma[0])
	assert.Equal(t, consts.Sigma[11], consts.Sigma[1])

	for r := range consts.Sigma {
		var seen [16]bool
		for _, idx := range consts.Sigma[r] {
			assert.That(t, !seen[idx])
			seen[idx] = true
		}
	}
}
