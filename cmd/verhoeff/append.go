package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"halftwo/verhoeff"
)

var appendCmd = &cobra.Command{
	Use:   "append [digits]",
	Short: "Append the check digit to a number",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppend,
}

func init() {
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	digit, err := verhoeff.ChecksumStrict(args[0])
	if err != nil {
		return fmt.Errorf("append failed: %w", err)
	}
	out := args[0] + string(byte('0'+digit))
	log.Debugw("appended check digit", "input", args[0], "output", out)
	cmd.Println(out)
	return nil
}
