package blake2b

import "github.com/libblake2/blake2b/internal/consts"

const (
	// BlockSize is the size of a BLAKE2b block in bytes.
	BlockSize = consts.BlockLen
	// Size is the largest digest, and the size of the value Hash returns.
	Size = consts.MaxDigest
	// Size256 is the digest size of BLAKE2b-256.
	Size256 = 32
	// SaltSize is the maximum salt length in bytes.
	SaltSize = consts.SaltLen
	// PersonalSize is the maximum personalization length in bytes.
	PersonalSize = consts.PersonalLen
)
