package verhoeff

import (
	"fmt"
)

// An EmptyInputError reports a zero-length input.
type EmptyInputError struct {
}

func (e *EmptyInputError) Error() string {
	return "verhoeff: input is empty"
}

// An InvalidCharacterError reports the first character of the input that
// is not an ASCII decimal digit.
type InvalidCharacterError struct {
	Char rune
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("verhoeff: invalid character %q at position %d, only digits 0-9 allowed", e.Char, e.Pos)
}

// An InvalidLengthError reports an Aadhaar candidate whose length is not
// AadhaarLength.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("verhoeff: aadhaar numbers must be %d digits, got %d", AadhaarLength, e.Len)
}
