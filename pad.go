package sha256

import (
	"encoding/binary"

	"github.com/zeebo/sha256/internal/consts"
)

// pad builds the final chunks of a message of total bytes whose
// unconsumed tail is rem: rem, the terminator bit, zero fill up to 56
// bytes mod 64, then the bit length of the whole message. The result is
// one chunk if rem leaves room for the terminator and the length field,
// and two otherwise.
func pad(dst *[2 * consts.BlockLen]byte, rem []byte, total uint64) ([]byte, error) {
	if len(rem) >= consts.BlockLen {
		panic("pad: tail holds a whole chunk")
	}
	if err := checkLen(total); err != nil {
		return nil, err
	}

	n := consts.BlockLen
	if len(rem) >= consts.BlockLen-consts.LenFieldLen {
		n = 2 * consts.BlockLen
	}

	out := dst[:n]
	m := copy(out, rem)
	out[m] = 0x80
	clear(out[m+1 : n-consts.LenFieldLen])
	binary.BigEndian.PutUint64(out[n-consts.LenFieldLen:], total<<3)

	return out, nil
}
