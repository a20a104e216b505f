package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/gobtop/cmd/gobtop"
	"github.com/arthur-debert/gobtop/pkg/ui/output/styles"
)

func main() {
	rootCmd := gobtop.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
