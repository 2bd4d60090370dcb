/*
 * Verhoeff algorithm
 * https://en.wikipedia.org/wiki/Verhoeff_algorithm
 * J. Verhoeff, Error Detecting Decimal Codes, Mathematical Centre Tract 29, 1969
 *
 * A decimal check digit scheme built on the dihedral group of order 10.
 * It detects all single-digit substitutions and all adjacent transpositions,
 * which is why it is used for identification numbers (e.g. Aadhaar) where
 * transcription mistakes are the errors worth catching.
 */
package verhoeff

// multiplication table of the dihedral group D5
var mul = [10][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// position permutations, row selected by distance from the end mod 8
var perm = [8][10]uint8{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// inv[x] is the unique y with mul[x][y] == 0
var inv = [10]uint8{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}

// toDigits converts number to digit values, 1:1 and in order.
// Only ASCII '0'-'9' qualify; digits from other scripts are rejected.
func toDigits(number string) ([]uint8, error) {
	if len(number) == 0 {
		return nil, &EmptyInputError{}
	}
	digits := make([]uint8, 0, len(number))
	for i, r := range number {
		if r < '0' || r > '9' {
			return nil, &InvalidCharacterError{Char: r, Pos: i}
		}
		digits = append(digits, uint8(r-'0'))
	}
	return digits, nil
}

// ChecksumStrict computes the Verhoeff check digit for number,
// which must be non-empty and contain only ASCII digits.
// Appending the returned digit to number yields a string that Validate
// accepts.
func ChecksumStrict(number string) (int, error) {
	digits, err := toDigits(number)
	if err != nil {
		return 0, err
	}

	// fold right to left; the check digit is not present yet, so the
	// permutation row is shifted by one to account for its eventual place
	c := uint8(0)
	for i := range digits {
		k := digits[len(digits)-1-i]
		c = mul[c][perm[(i+1)%8][k]]
	}
	return int(inv[c]), nil
}

// Checksum computes the Verhoeff check digit for number.
//
// On any malformed input (empty, or containing a non-digit) it returns 0,
// which is indistinguishable from a legitimate check digit of 0. Callers
// that need to tell the two apart must use ChecksumStrict.
func Checksum(number string) int {
	c, err := ChecksumStrict(number)
	if err != nil {
		return 0
	}
	return c
}

// ValidateStrict reports whether number, whose last character is taken to
// be the check digit, passes the Verhoeff check. Malformed input (empty,
// or containing a non-digit) is an error, not a mismatch.
func ValidateStrict(number string) (bool, error) {
	digits, err := toDigits(number)
	if err != nil {
		return false, err
	}

	// the whole string is folded, check digit included, so row i%8 lines
	// up with each digit's actual distance from the end
	c := uint8(0)
	for i := range digits {
		k := digits[len(digits)-1-i]
		c = mul[c][perm[i%8][k]]
	}
	return c == 0, nil
}

// Validate reports whether number passes the Verhoeff check.
// It returns false on malformed or empty input; use ValidateStrict to
// distinguish a failed check from bad input.
func Validate(number string) bool {
	ok, err := ValidateStrict(number)
	return err == nil && ok
}

// Append returns number with its Verhoeff check digit appended.
// On malformed input it returns number unchanged; this silent no-op means
// Append cannot signal errors, use ChecksumStrict where that matters.
func Append(number string) string {
	c, err := ChecksumStrict(number)
	if err != nil {
		return number
	}
	return number + string(byte('0'+c))
}
