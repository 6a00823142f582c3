package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/helpdoc/cmd/helpdoc"
	"github.com/arthur-debert/helpdoc/internal/version"
)

func main() {
	rootCmd := helpdoc.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HELPDOC",
		Section: "1",
		Source:  "helpdoc " + version.Version,
		Manual:  "helpdoc manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
