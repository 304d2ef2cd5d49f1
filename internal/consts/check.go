package consts

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// TableError describes a fixed table that does not match the published
// constants.
type TableError struct {
	Table string

	// Index is the first mismatching entry, or -1 if the table has the
	// wrong number of entries.
	Index int
	Got   uint32
	Want  uint32

	Count     int
	WantCount int
}

func (e *TableError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid constant table %s: %d entries, want %d",
			e.Table, e.Count, e.WantCount)
	}
	return fmt.Sprintf("invalid constant table %s: entry %d is %#08x, want %#08x",
		e.Table, e.Index, e.Got, e.Want)
}

// Check derives the initial state and round constants from the first
// primes and compares them against the tables bit for bit.
func Check() error {
	primes := firstPrimes(Rounds)

	iv := IV()
	if err := checkTable("iv", iv[:], deriveIV(primes[:8])); err != nil {
		return err
	}
	return checkTable("k", k[:], deriveK(primes))
}

func checkTable(name string, got, want []uint32) error {
	if len(got) != len(want) {
		return errors.WithStack(&TableError{
			Table:     name,
			Index:     -1,
			Count:     len(got),
			WantCount: len(want),
		})
	}
	for i := range want {
		if got[i] != want[i] {
			return errors.WithStack(&TableError{
				Table:     name,
				Index:     i,
				Got:       got[i],
				Want:      want[i],
				Count:     len(got),
				WantCount: len(want),
			})
		}
	}
	return nil
}

func firstPrimes(n int) []int64 {
	primes := make([]int64, 0, n)
	for c := int64(2); len(primes) < n; c++ {
		prime := true
		for _, p := range primes {
			if p*p > c {
				break
			}
			if c%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			primes = append(primes, c)
		}
	}
	return primes
}

var mask32 = big.NewInt(0xFFFFFFFF)

// deriveIV returns the first 32 bits of the fractional parts of the square
// roots of the primes: floor(sqrt(p * 2^64)) mod 2^32.
func deriveIV(primes []int64) []uint32 {
	out := make([]uint32, len(primes))
	for i, p := range primes {
		n := new(big.Int).Lsh(big.NewInt(p), 64)
		n.Sqrt(n)
		out[i] = uint32(n.And(n, mask32).Uint64())
	}
	return out
}

// deriveK returns the first 32 bits of the fractional parts of the cube
// roots of the primes: floor(cbrt(p * 2^96)) mod 2^32.
func deriveK(primes []int64) []uint32 {
	out := make([]uint32, len(primes))
	for i, p := range primes {
		n := cbrt(new(big.Int).Lsh(big.NewInt(p), 96))
		out[i] = uint32(n.And(n, mask32).Uint64())
	}
	return out
}

// cbrt returns floor(cbrt(n)) for n > 0 using Newton's method from above.
func cbrt(n *big.Int) *big.Int {
	three := big.NewInt(3)
	x := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()+2)/3)
	for {
		y := new(big.Int).Mul(x, x)
		y.Quo(n, y)
		y.Add(y, new(big.Int).Lsh(x, 1))
		y.Quo(y, three)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}
