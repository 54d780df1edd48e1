package blake2b

import (
	"encoding/binary"
	"testing"

	"github.com/libblake2/blake2b/internal/consts"
	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

// blocks drains s into a list of blocks covering n bytes.
func blocks(s source, n int) (out [][consts.BlockWords]uint64) {
	for off := 0; off == 0 || off < n; off += BlockSize {
		var m [consts.BlockWords]uint64
		for i := range m {
			m[i] = s.word(i)
		}
		out = append(out, m)
		s.advance()
	}
	return out
}

func TestSourcesAgree(t *testing.T) {
	for iter := 0; iter < 200; iter++ {
		words := make([]uint64, pcg.Uint32()%70)
		for i := range words {
			words[i] = pcg.Uint64()
		}

		msg := make([]byte, 8*len(words))
		for i, w := range words {
			binary.LittleEndian.PutUint64(msg[8*i:], w)
		}

		n := len(msg)
		exp := blocks(newByteSource(msg), n)
		assert.Equal(t, blocks(newStringSource(string(msg)), n), exp)
		assert.Equal(t, blocks(newWordSource(words), n), exp)

		h, err := NewSized(48)
		assert.NoError(t, err)
		assert.Equal(t, h.HashWords(words), h.Hash(msg))
		assert.Equal(t, h.HashString(string(msg)), h.Hash(msg))
	}
}

func TestSourcePadding(t *testing.T) {
	msg := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}

	for _, s := range []source{newByteSource(msg), newStringSource(string(msg))} {
		assert.Equal(t, s.word(0), uint64(0x0807060504030201))
		assert.Equal(t, s.word(1), uint64(0x0b0a09))
		for i := 2; i < 16; i++ {
			assert.Equal(t, s.word(i), uint64(0))
		}

		// past the end every word is zero
		s.advance()
		for i := 0; i < 16; i++ {
			assert.Equal(t, s.word(i), uint64(0))
		}
	}

	ws := newWordSource([]uint64{7, 8, 9})
	assert.Equal(t, ws.word(2), uint64(9))
	assert.Equal(t, ws.word(3), uint64(0))
}

func TestLoadFastPath(t *testing.T) {
	msg := testInput(3*BlockSize + 5)
	s := newByteSource(msg)

	for b := 0; b < 4; b++ {
		var fast, slow [16]uint64
		load(s, &fast)
		for i := range slow {
			slow[i] = s.word(i)
		}
		assert.Equal(t, fast, slow)
		s.advance()
	}
}

func TestBlockWordsCoverBlock(t *testing.T) {
	assert.Equal(t, consts.BlockWords*8, consts.BlockLen)

	// every word of a full block is backed by message bytes
	var c cursor
	c.n = consts.BlockLen
	for i := 0; i < consts.BlockWords; i++ {
		_, k := c.span(i)
		assert.Equal(t, k, 8)
	}
	c.advance()
	_, k := c.span(0)
	assert.Equal(t, k, 0)
}
