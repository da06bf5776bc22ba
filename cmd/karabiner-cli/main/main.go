package main

import (
	"os"

	karabinercli "github.com/Oliyy/karabiner-cli/cmd/karabiner-cli"
	"github.com/Oliyy/karabiner-cli/pkg/style"
)

func main() {
	rootCmd := karabinercli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		style.NewPrinter(os.Stderr, style.IsColorTerminal(os.Stderr)).Error(err)
		os.Exit(1)
	}
}
