package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// configureColor resolves the --color persistent flag against the terminal
// the output lands on and toggles colored rendering globally.
func configureColor(cmd *cobra.Command, out *os.File) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		flag = "auto"
	}
	switch flag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(out)
	}
}

func quietFlag(cmd *cobra.Command) bool {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return false
	}
	return quiet
}
