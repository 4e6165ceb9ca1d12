package vic

import (
	"strings"
	"vic/pkg/serrors"
)

const (
	// Width is the number of columns of the checkerboard.
	Width = 10
	// Filler marks the unused last column of each overflow row.
	Filler = '$'
	// overflowPerRow is how many of the 18 overflow letters each escape row holds.
	overflowPerRow = 9
)

// Checkerboard is a straddling checkerboard. Letters in AnagramRow are
// encoded by the Header digit of their column alone; letters in OverflowA and
// OverflowB are prefixed by Escape[0] and Escape[1] respectively.
type Checkerboard struct {
	// Header is the key permutation, one digit per column.
	Header [Width]byte
	// AnagramRow holds the upper-cased anagram with ' ' under the escape digits.
	AnagramRow [Width]byte
	// OverflowA holds the first nine letters missing from the anagram, keyed by Escape[0].
	OverflowA [Width]byte
	// OverflowB holds the remaining nine letters, keyed by Escape[1].
	OverflowB [Width]byte
	// Escape are the header digits above the two anagram spaces, left to right.
	Escape [2]byte
}

// BuildCheckerboard lays out a checkerboard for the given permutation and
// anagram. The permutation must use each digit exactly once; the anagram must
// hold two spaces and eight distinct letters (case is ignored).
func BuildCheckerboard(permutation, anagram string) (*Checkerboard, error) {
	if err := validatePermutation(permutation); err != nil {
		return nil, err
	}
	anagram = strings.ToUpper(anagram)
	if err := validateAnagram(anagram); err != nil {
		return nil, err
	}
	escape, err := EscapeDigits(permutation, anagram)
	if err != nil {
		return nil, err
	}

	b := &Checkerboard{Escape: escape}
	copy(b.Header[:], permutation)
	copy(b.AnagramRow[:], anagram)

	overflow := make([]byte, 0, 2*overflowPerRow)
	for c := byte('A'); c <= 'Z'; c++ {
		if strings.IndexByte(anagram, c) < 0 {
			overflow = append(overflow, c)
		}
	}
	for col := 0; col < Width; col++ {
		b.OverflowA[col], b.OverflowB[col] = Filler, Filler
		if col < overflowPerRow {
			b.OverflowA[col] = overflow[col]
			b.OverflowB[col] = overflow[col+overflowPerRow]
		}
	}

	return b, nil
}

// EscapeDigits returns the permutation digits that sit above the two spaces
// of the anagram, in left-to-right order.
func EscapeDigits(permutation, anagram string) ([2]byte, error) {
	var escape [2]byte
	if len(permutation) != len(anagram) {
		return escape, serrors.With(serrors.ErrInvalidAnagram,
			"anagram %q does not line up with permutation %q", anagram, permutation)
	}

	found := 0
	for i := 0; i < len(anagram); i++ {
		if anagram[i] != ' ' {
			continue
		}
		if found == len(escape) {
			return escape, serrors.With(serrors.ErrInvalidAnagram, "anagram %q has more than two spaces", anagram)
		}
		escape[found] = permutation[i]
		found++
	}
	if found != len(escape) {
		return escape, serrors.With(serrors.ErrInvalidAnagram, "anagram %q has %d spaces, need 2", anagram, found)
	}

	return escape, nil
}

// IsEscape reports whether d opens a two-digit code.
func (b *Checkerboard) IsEscape(d byte) bool {
	return d == b.Escape[0] || d == b.Escape[1]
}

// String renders the board as a table: the header row followed by the
// anagram row and the two overflow rows, each led by its row key.
func (b *Checkerboard) String() string {
	var sb strings.Builder
	row := func(key byte, cells [Width]byte) {
		sb.WriteByte(key)
		for _, c := range cells {
			sb.WriteByte(' ')
			sb.WriteByte(c)
		}
		sb.WriteByte('\n')
	}

	row(' ', b.Header)
	row(' ', b.AnagramRow)
	row(b.Escape[0], b.OverflowA)
	row(b.Escape[1], b.OverflowB)

	return sb.String()
}

func validatePermutation(permutation string) error {
	if len(permutation) != Width {
		return serrors.With(serrors.ErrInvalidPermutation,
			"permutation %q has %d characters, need %d", permutation, len(permutation), Width)
	}
	var used [10]bool
	for i := 0; i < len(permutation); i++ {
		c := permutation[i]
		if c < '0' || c > '9' {
			return serrors.With(serrors.ErrInvalidPermutation, "permutation %q has non-digit %q", permutation, c)
		}
		if used[c-'0'] {
			return serrors.With(serrors.ErrInvalidPermutation, "permutation %q repeats digit %q", permutation, c)
		}
		used[c-'0'] = true
	}

	return nil
}

func validateAnagram(anagram string) error {
	if len(anagram) != Width {
		return serrors.With(serrors.ErrInvalidAnagram,
			"anagram %q has %d characters, need %d", anagram, len(anagram), Width)
	}
	var used [26]bool
	for i := 0; i < len(anagram); i++ {
		c := anagram[i]
		if c == ' ' {
			continue
		}
		if c < 'A' || c > 'Z' {
			return serrors.With(serrors.ErrInvalidAnagram, "anagram %q has non-letter %q", anagram, c)
		}
		if used[c-'A'] {
			return serrors.With(serrors.ErrInvalidAnagram, "anagram %q repeats letter %q", anagram, c)
		}
		used[c-'A'] = true
	}

	return nil
}
