package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose bool
	log     = zap.NewNop().Sugar()
)

var rootCmd = &cobra.Command{
	Use:   "verhoeff",
	Short: "Compute and verify Verhoeff check digits",
	Long: `Computes, appends and verifies the Verhoeff check digit carried by
identification numbers such as Aadhaar. Input is a string of ASCII
decimal digits; anything else is rejected.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger setup failed: %w", err)
		}
		log = l.Sugar()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
