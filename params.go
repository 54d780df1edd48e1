package blake2b

import (
	"github.com/libblake2/blake2b/internal/consts"
	"github.com/libblake2/blake2b/internal/utils"
)

// params holds the user-visible fields of the BLAKE2b parameter block. Only
// sequential mode is supported, so fanout and depth are always 1 and the tree
// fields are always zero; they are written by marshal rather than stored.
type params struct {
	digestLen byte
	keyLen    byte
	salt      [consts.SaltLen]byte
	personal  [consts.PersonalLen]byte
}

func newParams(digestLen, keyLen int, salt, personal []byte) (params, error) {
	var p params
	if err := p.setDigestLen(digestLen); err != nil {
		return params{}, err
	}
	if err := p.setKeyLen(keyLen); err != nil {
		return params{}, err
	}
	if err := p.setSalt(salt); err != nil {
		return params{}, err
	}
	if err := p.setPersonal(personal); err != nil {
		return params{}, err
	}
	return p, nil
}

func (p *params) setDigestLen(n int) error {
	if n < 1 || n > consts.MaxDigest {
		return ErrDigestLength
	}
	p.digestLen = byte(n)
	return nil
}

func (p *params) setKeyLen(n int) error {
	if n < 0 || n > consts.MaxKey {
		return ErrKeyLength
	}
	if n > 0 {
		return ErrKeyed
	}
	p.keyLen = byte(n)
	return nil
}

// setSalt right-pads short salts with zeros.
func (p *params) setSalt(salt []byte) error {
	if len(salt) > consts.SaltLen {
		return ErrSaltLength
	}
	p.salt = [consts.SaltLen]byte{}
	copy(p.salt[:], salt)
	return nil
}

func (p *params) setPersonal(personal []byte) error {
	if len(personal) > consts.PersonalLen {
		return ErrPersonalLength
	}
	p.personal = [consts.PersonalLen]byte{}
	copy(p.personal[:], personal)
	return nil
}

// marshal packs the parameter block:
//
//	0      digest length
//	1      key length
//	2      fanout
//	3      depth
//	4-7    leaf length
//	8-15   node offset
//	16     node depth
//	17     inner length
//	18-31  reserved
//	32-47  salt
//	48-63  personalization
func (p *params) marshal() (buf [consts.ParamLen]byte) {
	buf[0] = p.digestLen
	buf[1] = p.keyLen
	buf[2] = 1
	buf[3] = 1
	copy(buf[32:48], p.salt[:])
	copy(buf[48:64], p.personal[:])
	return buf
}

// chain returns the initial chaining value, the IV xor'd with the parameter
// block read as eight little-endian words.
func (p *params) chain() (h [8]uint64) {
	buf := p.marshal()
	utils.ParamsToWords(&buf, &h)
	for i := range h {
		h[i] ^= consts.IV[i]
	}
	return h
}
