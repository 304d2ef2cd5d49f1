package sha256

import (
	"math/bits"

	"github.com/zeebo/sha256/internal/consts"
	"github.com/zeebo/sha256/internal/utils"
)

// schedule expands a chunk into the words consumed by the rounds.
func schedule(chunk *[consts.BlockLen]byte, w *[consts.Rounds]uint32) {
	utils.BytesToWords(chunk, (*[16]uint32)(w[:16]))

	for i := 16; i < consts.Rounds; i++ {
		v1 := w[i-15]
		s0 := bits.RotateLeft32(v1, -7) ^ bits.RotateLeft32(v1, -18) ^ (v1 >> 3)
		v2 := w[i-2]
		s1 := bits.RotateLeft32(v2, -17) ^ bits.RotateLeft32(v2, -19) ^ (v2 >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}
}
