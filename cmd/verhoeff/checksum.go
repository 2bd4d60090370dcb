package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"halftwo/verhoeff"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum [digits]",
	Short: "Compute the check digit for a number",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecksum,
}

func init() {
	rootCmd.AddCommand(checksumCmd)
}

func runChecksum(cmd *cobra.Command, args []string) error {
	digit, err := verhoeff.ChecksumStrict(args[0])
	if err != nil {
		return fmt.Errorf("checksum failed: %w", err)
	}
	log.Debugw("computed check digit", "input", args[0], "digit", digit)
	cmd.Println(digit)
	return nil
}
