package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"halftwo/verhoeff"
)

// errChecksumMismatch drives the non-zero exit code for a well-formed
// number that fails its check.
var errChecksumMismatch = errors.New("checksum mismatch")

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate [digits]",
	Short: "Verify a number carrying its check digit",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output result as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ok, err := verhoeff.ValidateStrict(args[0])
	if err != nil {
		return fmt.Errorf("validate failed: %w", err)
	}
	log.Debugw("validated number", "input", args[0], "valid", ok)
	return printVerdict(cmd, args[0], ok, validateJSON)
}

func printVerdict(cmd *cobra.Command, input string, ok, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(struct {
			Input string `json:"input"`
			Valid bool   `json:"valid"`
		}{input, ok})
		if err != nil {
			return err
		}
		cmd.Println(string(data))
	} else if ok {
		cmd.Println("valid")
	} else {
		cmd.Println("invalid")
	}

	if !ok {
		cmd.SilenceErrors = true
		return errChecksumMismatch
	}
	return nil
}
