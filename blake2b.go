package blake2b

import (
	"github.com/libblake2/blake2b/internal/consts"
	"github.com/libblake2/blake2b/internal/utils"
)

//
// hasher contains the configuration of a blake2b hash
//

type hasher struct {
	p params
}

// hash runs every block of s through the compression function and returns
// the final chaining value. n is the exact message length in bytes.
func (a *hasher) hash(s source, n uint64) [8]uint64 {
	h := a.p.chain()

	var m [consts.BlockWords]uint64
	var t [2]uint64

	// Every block strictly before the last is compressed with the running
	// counter. A length that is a multiple of the block size keeps its last
	// full block back for finalization.
	for off := uint64(0); off+consts.BlockLen < n; off += consts.BlockLen {
		t[0] += consts.BlockLen
		if t[0] < consts.BlockLen {
			t[1]++
		}

		load(s, &m)
		h = compress(&h, &m, t, [2]uint64{})
		s.advance()
	}

	load(s, &m)
	return compress(&h, &m, [2]uint64{n, 0}, [2]uint64{consts.Flag_Last, 0})
}

func (a *hasher) sum(s source, n uint64) (out [consts.MaxDigest]byte) {
	h := a.hash(s, n)
	utils.WordsToBytes(&h, out[:])
	return out
}
