package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new runtime harness project",
	Long: `Initialize a harness project by creating a project manifest (llama.toml)
and a hello-world script (main.lls). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const helloScript = `# exercises the print group; run with: llama exec
print_string hello, world!\n
print_int 42
print_char \n
`

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "llama-harness"
	}

	manifestPath := filepath.Join(target, "llama.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	manifest := fmt.Sprintf("[package]\nname = %q\n\n[run]\nscript = \"main.lls\"\n", name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", manifestPath, err)
	}

	scriptPath := filepath.Join(target, "main.lls")
	if _, err := os.Stat(scriptPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(scriptPath, []byte(helloScript), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", scriptPath, err)
		}
	}

	if !quietFlag(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\ncreated %s\n", manifestPath, scriptPath)
	}
	return nil
}
