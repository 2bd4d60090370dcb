package main

import (
	"github.com/spf13/cobra"
)

// set through -ldflags at release time
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("verhoeff " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
