package main

import (
	"os"

	"github.com/arthur-debert/helpdoc/cmd/helpdoc"
	"github.com/fatih/color"
)

func main() {
	rootCmd := helpdoc.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
