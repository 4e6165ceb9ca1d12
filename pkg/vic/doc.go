// Package vic implements the primitives of the VIC pencil-and-paper cipher:
// no-carry addition, chain addition, digit permutations of short phrases and
// the straddling checkerboard that turns letters into one or two digit codes.
//
// Every function is pure. Digit strings are plain Go strings of '0'..'9';
// invalid inputs are reported with the kinds defined in vic/pkg/serrors.
package vic
