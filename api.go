// Package sha256 implements the SHA-256 hash function.
package sha256

import (
	"crypto/hmac"
	"hash"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

// Hash returns the SHA-256 digest of message as 64 lowercase hex
// characters.
func Hash(message []byte) (string, error) {
	state, err := hashMessage(message, nil)
	if err != nil {
		return "", err
	}
	return assemble(&state), nil
}

// HashString is Hash over the bytes of s.
func HashString(s string) (string, error) {
	return Hash([]byte(s))
}

// Sum256 returns the SHA-256 digest of the data. It panics with an
// *OversizedInputError if data is too long to be hashed.
func Sum256(data []byte) [Size]byte {
	state, err := hashMessage(data, nil)
	if err != nil {
		panic(err)
	}
	return sum(&state)
}

// State is the running hash state between chunks.
type State [8]uint32

// String renders the state the way a final digest is rendered.
func (s State) String() string {
	w := [8]uint32(s)
	return assemble(&w)
}

// Trace is like Hash but calls visit with the running state after every
// chunk of the padded message, numbered from zero.
func Trace(message []byte, visit func(chunk int, st State)) (string, error) {
	chunk := 0
	state, err := hashMessage(message, func(st *[8]uint32) {
		if visit != nil {
			visit(chunk, State(*st))
		}
		chunk++
	})
	if err != nil {
		return "", err
	}
	return assemble(&state), nil
}

// Hasher is a hash.Hash for SHA-256.
type Hasher struct {
	h hasher
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{h: newHasher()}
}

// Write implements part of the hash.Hash interface. It only fails with an
// *OversizedInputError, after which every call fails until Reset.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.h.update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. It panics if a previous
// Write failed.
func (h *Hasher) Sum(b []byte) []byte {
	state, err := h.h.finalize()
	if err != nil {
		panic(err)
	}
	out := sum(&state)
	return append(b, out[:]...)
}

// HexDigest returns the digest of everything written so far as 64
// lowercase hex characters.
func (h *Hasher) HexDigest() (string, error) {
	state, err := h.h.finalize()
	if err != nil {
		return "", err
	}
	return assemble(&state), nil
}

// Clone returns a new Hasher with the same internal state.
//
// Modifying the resulting Hasher will not modify the original Hasher, and
// vice versa.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// NewKeyed returns a hash.Hash computing HMAC-SHA-256 with the given key.
func NewKeyed(key []byte) hash.Hash {
	return hmac.New(newHash, key)
}

// DeriveKey derives len(out) bytes of key material from material using
// HKDF-SHA-256 with context as the info string. At most 255*Size bytes
// can be derived.
func DeriveKey(context string, material, out []byte) error {
	r := hkdf.New(newHash, material, nil, []byte(context))
	if _, err := io.ReadFull(r, out); err != nil {
		return errors.Wrapf(err, "derive %d bytes", len(out))
	}
	return nil
}

func newHash() hash.Hash { return New() }
