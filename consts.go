package sha256

import "github.com/zeebo/sha256/internal/consts"

// Size is the size of a SHA-256 digest in bytes.
const Size = consts.Size

// BlockSize is the size of a chunk of the padded message in bytes.
const BlockSize = consts.BlockLen

func init() {
	if err := consts.Check(); err != nil {
		panic(err)
	}
}
