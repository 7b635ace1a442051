// Command frece-manpage writes the roff manual page for frece to stdout.
// Packaging runs it at release time.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/frece/internal/cli"
	"github.com/arthur-debert/frece/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "FRECE",
		Section: "1",
		Source:  version.String(),
		Manual:  "frece manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
