package sha256

import (
	"github.com/zeebo/sha256/internal/consts"
)

// fold consumes the whole chunks of p in order, threading the state from
// each compression into the next. Bytes short of a full chunk at the end
// of p are left alone. visit, if not nil, sees the state after every
// chunk.
func fold(state [8]uint32, p []byte, visit func(*[8]uint32)) [8]uint32 {
	var w [consts.Rounds]uint32

	for len(p) >= consts.BlockLen {
		schedule((*[consts.BlockLen]byte)(p), &w)
		state = compress(state, &w)
		if visit != nil {
			visit(&state)
		}
		p = p[consts.BlockLen:]
	}

	return state
}

// hashMessage runs the whole pipeline over an in memory message. The
// length is checked before any chunk is compressed.
func hashMessage(message []byte, visit func(*[8]uint32)) ([8]uint32, error) {
	total := uint64(len(message))
	if err := checkLen(total); err != nil {
		return [8]uint32{}, err
	}

	full := len(message) &^ (consts.BlockLen - 1)
	state := fold(consts.IV(), message[:full], visit)

	var tail [2 * consts.BlockLen]byte
	padded, err := pad(&tail, message[full:], total)
	if err != nil {
		return [8]uint32{}, err
	}

	return fold(state, padded, visit), nil
}

//
// hasher contains state for an incremental hash
//

type hasher struct {
	state [8]uint32
	buf   [consts.BlockLen]byte
	nbuf  int
	len   uint64
	err   error
}

func newHasher() hasher {
	return hasher{state: consts.IV()}
}

func (a *hasher) reset() {
	a.state = consts.IV()
	a.nbuf = 0
	a.len = 0
	a.err = nil
}

func (a *hasher) update(p []byte) error {
	if a.err != nil {
		return a.err
	}
	if err := checkLen(a.len + uint64(len(p))); err != nil {
		a.err = err
		return err
	}
	a.len += uint64(len(p))

	if a.nbuf > 0 {
		n := copy(a.buf[a.nbuf:], p)
		a.nbuf += n
		p = p[n:]

		if a.nbuf < consts.BlockLen {
			return nil
		}

		a.state = fold(a.state, a.buf[:], nil)
		a.nbuf = 0
	}

	full := len(p) &^ (consts.BlockLen - 1)
	a.state = fold(a.state, p[:full], nil)
	a.nbuf = copy(a.buf[:], p[full:])

	return nil
}

// finalize returns the state after padding what has been written so far.
// The hasher itself is left untouched so more data may follow.
func (a *hasher) finalize() ([8]uint32, error) {
	if a.err != nil {
		return [8]uint32{}, a.err
	}

	var tail [2 * consts.BlockLen]byte
	padded, err := pad(&tail, a.buf[:a.nbuf], a.len)
	if err != nil {
		return [8]uint32{}, err
	}

	return fold(a.state, padded, nil), nil
}
