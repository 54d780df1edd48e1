package ref

import (
	"github.com/libblake2/blake2b/internal/consts"
	"github.com/libblake2/blake2b/internal/utils"
)

// Hash runs the whole message through Compress starting from chain and
// returns the final chaining value. The message is copied into a zero padded
// buffer up front.
func Hash(chain [8]uint64, msg []byte) [8]uint64 {
	blocks := (len(msg) + consts.BlockLen - 1) / consts.BlockLen
	if blocks == 0 {
		blocks = 1
	}

	padded := make([]byte, blocks*consts.BlockLen)
	copy(padded, msg)

	var block [16]uint64
	var counter [2]uint64

	for n := 0; n < blocks; n++ {
		var flags [2]uint64
		if n == blocks-1 {
			counter[0] = uint64(len(msg))
			flags[0] = consts.Flag_Last
		} else {
			counter[0] += consts.BlockLen
		}

		utils.BytesToWords((*[consts.BlockLen]byte)(padded[n*consts.BlockLen:]), &block)
		Compress(&chain, &block, counter, flags, &chain)
	}

	return chain
}
