package sha256

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/zeebo/sha256/internal/consts"
)

// OversizedInputError is returned for messages whose length in bits does
// not fit in the 64 bit length field.
type OversizedInputError struct {
	Len uint64 // in bytes
}

func (e *OversizedInputError) Error() string {
	return fmt.Sprintf("message of %d bytes exceeds the limit of %d bytes",
		e.Len, uint64(consts.MaxLen))
}

// InvalidConstantTableError is what the package panics with during
// initialization if its initial state or round constant table does not
// match the published constants.
type InvalidConstantTableError = consts.TableError

func checkLen(n uint64) error {
	if n > consts.MaxLen {
		return errors.WithStack(&OversizedInputError{Len: n})
	}
	return nil
}
