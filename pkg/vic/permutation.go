package vic

import (
	"sort"
	"vic/pkg/serrors"
)

// PermutationSourceLength is the number of leading characters DigitPermutation reads.
const PermutationSourceLength = 10

// DigitPermutation numbers the first ten characters of s from 0 to 9 in
// sorted order. Repeated characters are numbered left to right, so
//
//	DigitPermutation("DONTDODRUG") == "0548162793"
//
// The result is always a permutation of "0123456789". Characters are compared
// byte-wise; the comparison is case-sensitive.
func DigitPermutation(s string) (string, error) {
	if len(s) < PermutationSourceLength {
		return "", serrors.With(serrors.ErrInvalidInputLength,
			"permutation source %q has %d characters, need at least %d", s, len(s), PermutationSourceLength)
	}
	src := s[:PermutationSourceLength]

	rank := rankTable(src)
	seen := make(map[byte]int, len(rank))
	out := make([]byte, PermutationSourceLength)
	for i := 0; i < len(src); i++ {
		c := src[i]
		out[i] = '0' + byte(rank[c]+seen[c])
		seen[c]++
	}

	return string(out), nil
}

// rankTable maps every distinct character of src to the number of characters
// in src that sort strictly before it.
func rankTable(src string) map[byte]int {
	freq := make(map[byte]int, len(src))
	for i := 0; i < len(src); i++ {
		freq[src[i]]++
	}

	letters := make([]byte, 0, len(freq))
	for c := range freq {
		letters = append(letters, c)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	rank := make(map[byte]int, len(letters))
	before := 0
	for _, c := range letters {
		rank[c] = before
		before += freq[c]
	}

	return rank
}
