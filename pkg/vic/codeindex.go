package vic

// CodeIndex maps letters to checkerboard codes and back. It is read-only
// once built.
type CodeIndex struct {
	codes   [26]string
	letters map[string]byte
}

// NewCodeIndex derives the code of every letter on the board. The code is the
// row key (nothing for the anagram row) followed by the header digit of the
// letter's column.
func NewCodeIndex(b *Checkerboard) *CodeIndex {
	idx := &CodeIndex{letters: make(map[string]byte, 26)}
	add := func(prefix string, row [Width]byte) {
		for col, c := range row {
			if c < 'A' || c > 'Z' {
				continue
			}
			code := prefix + string(b.Header[col])
			idx.codes[c-'A'] = code
			idx.letters[code] = c
		}
	}

	add("", b.AnagramRow)
	add(string(b.Escape[0]), b.OverflowA)
	add(string(b.Escape[1]), b.OverflowB)

	return idx
}

// CodeOf returns the code of an upper-case letter.
func (idx *CodeIndex) CodeOf(letter byte) (string, bool) {
	if letter < 'A' || letter > 'Z' {
		return "", false
	}
	code := idx.codes[letter-'A']

	return code, code != ""
}

// LetterOf returns the letter encoded by code.
func (idx *CodeIndex) LetterOf(code string) (byte, bool) {
	c, ok := idx.letters[code]

	return c, ok
}

// Len returns the number of letters with a code.
func (idx *CodeIndex) Len() int { return len(idx.letters) }
