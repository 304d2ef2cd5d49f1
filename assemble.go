package sha256

import (
	"encoding/hex"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

func sum(state *[8]uint32) (out [consts.Size]byte) {
	utils.WordsToBytes(state, &out)
	return out
}

// assemble renders the state as 64 lowercase hex characters, first word
// first.
func assemble(state *[8]uint32) string {
	out := sum(state)
	return hex.EncodeToString(out[:])
}
