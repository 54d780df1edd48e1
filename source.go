package blake2b

import (
	"encoding/binary"

	"github.com/libblake2/blake2b/internal/consts"
	"github.com/libblake2/blake2b/internal/utils"
)

// source is a word addressable view of a message, one block at a time.
// Words at or past the end of the message read as zero, and the word that
// straddles the end is zero padded, so callers never see the true length.
type source interface {
	// word returns word i, 0 <= i < 16, of the current block.
	word(i int) uint64
	// advance moves to the next block.
	advance()
}

// cursor tracks the current block of a message of n bytes and decides how
// many message bytes back each word. It is the only place padding is decided.
type cursor struct {
	off int
	n   int
}

func (c *cursor) advance() { c.off += consts.BlockLen }

// span returns the byte position of word i of the current block and how many
// message bytes, 0 through 8, are available there.
func (c *cursor) span(i int) (p, k int) {
	p = c.off + 8*i
	k = c.n - p
	if k < 0 {
		k = 0
	} else if k > 8 {
		k = 8
	}
	return p, k
}

type byteSource struct {
	cursor
	msg []byte
}

func newByteSource(msg []byte) *byteSource {
	return &byteSource{cursor: cursor{n: len(msg)}, msg: msg}
}

func (s *byteSource) word(i int) uint64 {
	p, k := s.span(i)
	switch k {
	case 0:
		return 0
	case 8:
		return binary.LittleEndian.Uint64(s.msg[p:])
	}
	return utils.WordFromBytes(s.msg[p : p+k])
}

type stringSource struct {
	cursor
	msg string
}

func newStringSource(msg string) *stringSource {
	return &stringSource{cursor: cursor{n: len(msg)}, msg: msg}
}

func (s *stringSource) word(i int) uint64 {
	p, k := s.span(i)
	if k == 0 {
		return 0
	}
	return utils.WordFromString(s.msg[p : p+k])
}

// wordSource reads a message that is already a sequence of little-endian
// words, so its length is always a multiple of 8 bytes.
type wordSource struct {
	cursor
	msg []uint64
}

func newWordSource(msg []uint64) *wordSource {
	return &wordSource{cursor: cursor{n: 8 * len(msg)}, msg: msg}
}

func (s *wordSource) word(i int) uint64 {
	p, k := s.span(i)
	if k == 0 {
		return 0
	}
	return s.msg[p/8]
}

// load reads the current block of s into m. Full blocks of a byteSource are
// decoded straight from the message; everything else goes word by word.
func load(s source, m *[consts.BlockWords]uint64) {
	if bs, ok := s.(*byteSource); ok && bs.off+consts.BlockLen <= bs.n {
		utils.BytesToWords((*[consts.BlockLen]byte)(bs.msg[bs.off:]), m)
		return
	}
	for i := range m {
		m[i] = s.word(i)
	}
}
