package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"halftwo/verhoeff"
)

var aadhaarJSON bool

var aadhaarCmd = &cobra.Command{
	Use:   "aadhaar [number]",
	Short: "Validate a 12-digit Aadhaar number",
	Long: `Checks that the argument is exactly 12 ASCII digits and that its
last digit is the correct Verhoeff check digit for the first 11.`,
	Args: cobra.ExactArgs(1),
	RunE: runAadhaar,
}

func init() {
	aadhaarCmd.Flags().BoolVar(&aadhaarJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(aadhaarCmd)
}

func runAadhaar(cmd *cobra.Command, args []string) error {
	ok, err := verhoeff.ValidateAadhaar(args[0])
	if err != nil {
		return fmt.Errorf("aadhaar validation failed: %w", err)
	}
	log.Debugw("validated aadhaar", "input", args[0], "valid", ok)
	return printVerdict(cmd, args[0], ok, aadhaarJSON)
}
