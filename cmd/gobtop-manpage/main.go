package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/gobtop/cmd/gobtop"
	"github.com/arthur-debert/gobtop/internal/version"
)

func main() {
	rootCmd := gobtop.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   strings.ToUpper(version.ProgramName),
		Section: "1",
		Source:  version.ProgramName + " " + version.Version,
		Manual:  version.ProgramName + " manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
