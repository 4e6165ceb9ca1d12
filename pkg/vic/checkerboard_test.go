package vic_test

import (
	"strings"
	"testing"
	"vic/pkg/serrors"
	"vic/pkg/vic"

	"github.com/stretchr/testify/require"
)

func TestBuildCheckerboard(t *testing.T) {
	b, err := vic.BuildCheckerboard("4071826395", "a tin shoe")
	require.NoError(t, err)

	require.Equal(t, "4071826395", string(b.Header[:]))
	require.Equal(t, "A TIN SHOE", string(b.AnagramRow[:]))
	require.Equal(t, "BCDFGJKLM$", string(b.OverflowA[:]))
	require.Equal(t, "PQRUVWXYZ$", string(b.OverflowB[:]))
	require.Equal(t, [2]byte{'0', '2'}, b.Escape)
}

func TestCodeIndex(t *testing.T) {
	b, err := vic.BuildCheckerboard("4071826395", "A TIN SHOE")
	require.NoError(t, err)
	idx := vic.NewCodeIndex(b)

	want := map[byte]string{
		'A': "4", 'T': "7", 'I': "1", 'N': "8", 'S': "6", 'H': "3", 'O': "9", 'E': "5",
		'B': "04", 'C': "00", 'D': "07", 'F': "01", 'G': "08", 'J': "02", 'K': "06", 'L': "03", 'M': "09",
		'P': "24", 'Q': "20", 'R': "27", 'U': "21", 'V': "28", 'W': "22", 'X': "26", 'Y': "23", 'Z': "29",
	}
	require.Equal(t, 26, idx.Len())
	for letter, code := range want {
		got, ok := idx.CodeOf(letter)
		require.True(t, ok, "letter %q", letter)
		require.Equal(t, code, got, "letter %q", letter)
	}
}

func TestCodeIndexRoundTripAndPrefixFree(t *testing.T) {
	boards := []struct{ perm, anagram string }{
		{"4071826395", "A TIN SHOE"},
		{"1354670298", "A TIN SHOE"},
		{"0123456789", "ETAOIN  SR"},
		{"9876543210", "  ZYXWVUTS"},
	}

	for _, tc := range boards {
		b, err := vic.BuildCheckerboard(tc.perm, tc.anagram)
		require.NoError(t, err, "%s/%s", tc.perm, tc.anagram)
		idx := vic.NewCodeIndex(b)

		codes := make([]string, 0, 26)
		single := 0
		for l := byte('A'); l <= 'Z'; l++ {
			code, ok := idx.CodeOf(l)
			require.True(t, ok)
			got, ok := idx.LetterOf(code)
			require.True(t, ok)
			require.Equal(t, l, got, "round trip of %q through %q", l, code)

			if len(code) == 1 {
				single++
				require.False(t, b.IsEscape(code[0]), "single-digit code %q collides with an escape digit", code)
			} else {
				require.Len(t, code, 2)
				require.True(t, b.IsEscape(code[0]), "two-digit code %q must start with an escape digit", code)
			}
			codes = append(codes, code)
		}
		require.Equal(t, 8, single)

		for i, a := range codes {
			for j, c := range codes {
				if i != j {
					require.False(t, strings.HasPrefix(c, a), "%q is a prefix of %q", a, c)
				}
			}
		}
	}
}

func TestCodeIndexUnknown(t *testing.T) {
	b, err := vic.BuildCheckerboard("4071826395", "A TIN SHOE")
	require.NoError(t, err)
	idx := vic.NewCodeIndex(b)

	_, ok := idx.LetterOf("0")
	require.False(t, ok, "escape digit alone is not a code")
	_, ok = idx.LetterOf("05")
	require.False(t, ok, "filler column has no letter")
	_, ok = idx.LetterOf("123")
	require.False(t, ok)
	_, ok = idx.CodeOf('a')
	require.False(t, ok)
	_, ok = idx.CodeOf('?')
	require.False(t, ok)
}

func TestBuildCheckerboardRejects(t *testing.T) {
	cases := []struct {
		name    string
		perm    string
		anagram string
		kind    serrors.Kind
	}{
		{name: "short permutation", perm: "407182639", anagram: "A TIN SHOE", kind: serrors.ErrInvalidPermutation},
		{name: "letter in permutation", perm: "40718263X5", anagram: "A TIN SHOE", kind: serrors.ErrInvalidPermutation},
		{name: "repeated digit", perm: "4071826394", anagram: "A TIN SHOE", kind: serrors.ErrInvalidPermutation},
		{name: "short anagram", perm: "4071826395", anagram: "A TIN SHO", kind: serrors.ErrInvalidAnagram},
		{name: "one space", perm: "4071826395", anagram: "AXTINSHOE ", kind: serrors.ErrInvalidAnagram},
		{name: "three spaces", perm: "4071826395", anagram: "A TIN SHO ", kind: serrors.ErrInvalidAnagram},
		{name: "digit in anagram", perm: "4071826395", anagram: "A T1N SHOE", kind: serrors.ErrInvalidAnagram},
		{name: "repeated letter", perm: "4071826395", anagram: "A TIN SHOA", kind: serrors.ErrInvalidAnagram},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := vic.BuildCheckerboard(tc.perm, tc.anagram)
			require.ErrorIs(t, err, tc.kind)
			require.Nil(t, b)
		})
	}
}

func TestEscapeDigits(t *testing.T) {
	escape, err := vic.EscapeDigits("4071826395", "A TIN SHOE")
	require.NoError(t, err)
	require.Equal(t, [2]byte{'0', '2'}, escape)

	_, err = vic.EscapeDigits("4071826395", "ATINSHOEXY")
	require.ErrorIs(t, err, serrors.ErrInvalidAnagram)

	_, err = vic.EscapeDigits("4071826395", "A TIN")
	require.ErrorIs(t, err, serrors.ErrInvalidAnagram)
}

func TestCheckerboardString(t *testing.T) {
	b, err := vic.BuildCheckerboard("4071826395", "A TIN SHOE")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "  4 0 7 1 8 2 6 3 9 5", lines[0])
	require.Equal(t, "  A   T I N   S H O E", lines[1])
	require.Equal(t, "0 B C D F G J K L M $", lines[2])
	require.Equal(t, "2 P Q R U V W X Y Z $", lines[3])
}
