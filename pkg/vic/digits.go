package vic

import (
	"vic/pkg/serrors"
)

// IsDigits reports whether s is non-empty and made only of '0'..'9'.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// NoCarryAdd adds two equal-length digit strings position by position,
// keeping only the last digit of each sum.
//
//	NoCarryAdd("73003", "45050") == "18053"
func NoCarryAdd(a, b string) (string, error) {
	if len(a) != len(b) {
		return "", serrors.With(serrors.ErrInvalidDigits, "cannot add %d digits to %d digits", len(a), len(b))
	}
	if !IsDigits(a) || !IsDigits(b) {
		return "", serrors.With(serrors.ErrInvalidDigits, "cannot add %q and %q: not digit strings", a, b)
	}

	out := make([]byte, len(a))
	for i := range out {
		out[i] = addDigits(a[i], b[i])
	}

	return string(out), nil
}

// ChainExtend extends seed to n digits by chain addition: every new digit is
// the no-carry sum of the pair starting at position j of the result so far,
// with j advancing by one per appended digit. When n is not larger than the
// seed, the first n digits of the seed are returned.
//
//	ChainExtend("18053", 10) == "1805398582"
func ChainExtend(seed string, n int) (string, error) {
	if n < 0 {
		return "", serrors.With(serrors.ErrInvalidDigits, "cannot extend to negative length %d", n)
	}
	if !IsDigits(seed) {
		return "", serrors.With(serrors.ErrInvalidDigits, "cannot extend %q: not a digit string", seed)
	}
	if len(seed) >= n {
		return seed[:n], nil
	}
	// a single digit has no pair to add
	if len(seed) < 2 {
		return "", serrors.With(serrors.ErrInvalidDigits, "cannot chain-extend %q: need at least two digits", seed)
	}

	out := make([]byte, len(seed), n)
	copy(out, seed)
	for j := 0; len(out) < n; j++ {
		out = append(out, addDigits(out[j], out[j+1]))
	}

	return string(out), nil
}

func addDigits(a, b byte) byte {
	return '0' + (a-'0'+b-'0')%10
}
