package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"llama/internal/script"
	"llama/internal/session"
	"llama/runtime/console"
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] [file.lls]",
	Short: "Run a runtime harness script",
	Long: `Execute a .lls harness script against the console runtime. With no
argument the script is taken from the llama.toml manifest. --record captures
the console session into a log; --replay re-runs the script against a
recorded session and verifies byte-identical behavior.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().String("record", "", "write a session log to this file")
	execCmd.Flags().String("replay", "", "verify the run against this session log")
}

func runExec(cmd *cobra.Command, args []string) error {
	configureColor(cmd, os.Stderr)

	recordPath, err := cmd.Flags().GetString("record")
	if err != nil {
		return fmt.Errorf("failed to get record flag: %w", err)
	}
	replayPath, err := cmd.Flags().GetString("replay")
	if err != nil {
		return fmt.Errorf("failed to get replay flag: %w", err)
	}
	if recordPath != "" && replayPath != "" {
		return errors.New("--record and --replay are mutually exclusive")
	}

	scriptPath, err := resolveExecScript(args)
	if err != nil {
		return err
	}
	src, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer src.Close()

	var (
		in  io.Reader = os.Stdin
		out io.Writer = os.Stdout
		rep *session.Replayer
		rec *session.Recorder
	)

	if replayPath != "" {
		logFile, err := os.Open(replayPath)
		if err != nil {
			return fmt.Errorf("failed to open session log: %w", err)
		}
		rep, err = session.Load(logFile)
		logFile.Close()
		if err != nil {
			return err
		}
		in, out = rep.Input(), rep.Output()
	}

	var logFile *os.File
	if recordPath != "" {
		logFile, err = os.Create(recordPath)
		if err != nil {
			return fmt.Errorf("failed to create session log: %w", err)
		}
		defer logFile.Close()
		rec, err = session.NewRecorder(logFile)
		if err != nil {
			return err
		}
		in, out = rec.TapInput(in), rec.TapOutput(out)
	}

	h := script.New(console.New(in, out))
	if err := h.Run(src); err != nil {
		return fmt.Errorf("%s: %w", scriptPath, err)
	}

	if rec != nil {
		if err := rec.Err(); err != nil {
			return err
		}
		if !quietFlag(cmd) {
			fmt.Fprintf(os.Stderr, "%s session recorded to %s\n",
				color.GreenString("ok:"), recordPath)
		}
	}
	if rep != nil {
		if err := rep.Verify(); err != nil {
			return err
		}
		if !quietFlag(cmd) {
			fmt.Fprintf(os.Stderr, "%s replay matched %s\n",
				color.GreenString("ok:"), replayPath)
		}
	}
	return nil
}

func resolveExecScript(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New(noLlamaTomlMessage)
	}
	return resolveScriptTarget(manifest)
}
