package verhoeff

// AadhaarLength is the number of digits in an Aadhaar number,
// the 12-digit Indian national identification number whose last
// digit is a Verhoeff check digit.
const AadhaarLength = 12

// ValidateAadhaar checks the Verhoeff digit of a 12-digit Aadhaar number.
// It returns an InvalidLengthError before looking at any characters, and
// an InvalidCharacterError if any of the 12 characters is not an ASCII
// digit; only well-formed input reaches the checksum comparison.
func ValidateAadhaar(number string) (bool, error) {
	if len(number) != AadhaarLength {
		return false, &InvalidLengthError{Len: len(number)}
	}

	digits, err := toDigits(number)
	if err != nil {
		return false, err
	}

	expected, err := ChecksumStrict(number[:AadhaarLength-1])
	if err != nil {
		return false, err
	}
	return expected == int(digits[AadhaarLength-1]), nil
}
