package app

import (
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/chunkah/relcut/internal/cargo"
	"github.com/chunkah/relcut/internal/config"
	"github.com/chunkah/relcut/internal/execx"
	"github.com/chunkah/relcut/internal/forge"
	"github.com/chunkah/relcut/internal/notes"
	"github.com/chunkah/relcut/internal/repo"
	"github.com/chunkah/relcut/internal/validator"
	"github.com/chunkah/relcut/internal/verify"
)

// Version is the current version of relcut, set at build time.
var Version = "dev"

const InitCmdName = "init"

var LongDescription = `
relcut cuts a release for chunkah: it verifies preconditions, collects
release notes, creates a signed tag, builds the source and vendor tarballs,
verifies they build offline, and publishes the GitHub release.

Edited release notes are checkpointed to a .release-notes-<version>.md file
in the working directory, so an interrupted run can be re-invoked and will
resume with the saved notes instead of opening the editor from scratch.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, env notes.EnvProvider) *cobra.Command {
	var debug bool
	var noPush bool

	rootCmd := &cobra.Command{
		Use:           "relcut <version>",
		Short:         "Cut a release for chunkah",
		Long:          LongDescription,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help, completion and init commands
			if cmd.Name() == "help" || isCompletionCommand(cmd) || cmd.Name() == InitCmdName {
				return nil
			}
			// Skip if already initialised (e.g., in tests)
			if lazy.HasInner() {
				if debug {
					ll.Set(slog.LevelDebug)
				}
				return nil
			}

			// 1. Setup Logging
			if debug {
				ll.Set(slog.LevelDebug)
			}
			logger, _, err := setupLogger(cmd.ErrOrStderr(), ll)
			if err != nil {
				logger.Warn("logging to file disabled", "error", err)
			}

			// 2. Build Dependencies
			cfg, err := config.Load(".", validator.NewSanthoshCompiler())
			if err != nil {
				return err
			}

			runner := execx.NewCLIRunner(logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
			cargoCLI := cargo.NewCLICargo(runner)
			editor := notes.NewEditor(env, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

			// 3. Hydrate the Lazy Wrapper
			realMgr := NewCLIManager(
				logger,
				cfg,
				runner,
				repo.NewCLIGitter(runner),
				forge.NewGHForge(runner),
				cargoCLI,
				notes.NewStore("."),
				editor,
				verify.NewVerifier(runner, cargoCLI),
				cmd.OutOrStdout(),
				cmd.ErrOrStderr(),
			)
			lazy.SetInner(realMgr)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			version := args[0]
			if _, err := semver.StrictNewVersion(version); err != nil {
				return fmt.Errorf("invalid version %q: %w", version, err)
			}
			return lazy.Release(cmd.Context(), version, noPush)
		},
	}

	rootCmd.Flags().BoolVar(&noPush, "no-push", false, "Prepare the release without pushing to the remote")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	// Subcommands
	rootCmd.AddCommand(NewInitCmd())

	return rootCmd
}

// isCompletionCommand returns true if the command or any of its parents is the "completion" command.
func isCompletionCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return true
		}
	}
	return false
}
