package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chunkah/relcut/internal/notes"
)

func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, env notes.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	// Local lazy instance ensures t.Parallel() safety
	lazy := &LazyManager{}

	if env == nil {
		env = notes.NewEnvProvider()
	}

	rootCmd := NewRootCmd(lazy, logLevel, env)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
