package main

import (
	"os"
)

func main() {
	defer func() {
		_ = log.Sync()
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
