package verhoeff_test

import (
	"fmt"

	"halftwo/verhoeff"
)

func ExampleChecksum() {
	fmt.Println(verhoeff.Checksum("236"))
	// Output: 3
}

func ExampleAppend() {
	fmt.Println(verhoeff.Append("142857"))
	// Output: 1428570
}

func ExampleValidate() {
	fmt.Println(verhoeff.Validate("2363"))
	fmt.Println(verhoeff.Validate("2364"))
	// Output:
	// true
	// false
}

func ExampleChecksumStrict() {
	_, err := verhoeff.ChecksumStrict("12a45")
	fmt.Println(err)
	// Output: verhoeff: invalid character 'a' at position 2, only digits 0-9 allowed
}

func ExampleValidateAadhaar() {
	id := verhoeff.Append("12345678901")
	ok, err := verhoeff.ValidateAadhaar(id)
	fmt.Println(ok, err)

	_, err = verhoeff.ValidateAadhaar("12345")
	fmt.Println(err)
	// Output:
	// true <nil>
	// verhoeff: aadhaar numbers must be 12 digits, got 5
}
