package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"llama/runtime/libllama"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the runtime ABI catalogue",
	Long:  `List every C-callable function the runtime exposes, grouped the way the header groups them`,
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().String("group", "all", "show one group (io|math|refs|casts|strings|all)")
}

var groupTitles = []struct {
	group libllama.Group
	title string
}{
	{libllama.GroupIO, "console I/O"},
	{libllama.GroupMath, "math"},
	{libllama.GroupRefs, "reference mutation"},
	{libllama.GroupCasts, "type casts"},
	{libllama.GroupStrings, "string cells"},
}

func runCatalog(cmd *cobra.Command, args []string) error {
	configureColor(cmd, os.Stdout)

	groupFlag, err := cmd.Flags().GetString("group")
	if err != nil {
		return fmt.Errorf("failed to get group flag: %w", err)
	}
	if groupFlag != "all" {
		known := false
		for _, gt := range groupTitles {
			if string(gt.group) == groupFlag {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown group %q (io|math|refs|casts|strings|all)", groupFlag)
		}
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	nameStyle := lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("3"))

	entries := libllama.Catalog()
	out := cmd.OutOrStdout()
	for _, gt := range groupTitles {
		if groupFlag != "all" && string(gt.group) != groupFlag {
			continue
		}
		fmt.Fprintln(out, titleStyle.Render(gt.title))
		for _, e := range entries {
			if e.Group != gt.group {
				continue
			}
			fmt.Fprintf(out, "  %s %s\n", nameStyle.Render(e.Name), e.Signature)
		}
		fmt.Fprintln(out)
	}
	return nil
}
