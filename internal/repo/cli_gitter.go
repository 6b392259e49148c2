package repo

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chunkah/relcut/internal/execx"
)

// Ensure the interface is satisfied.
var _ Gitter = (*CLIGitter)(nil)

// CLIGitter is the concrete implementation of Gitter using the git CLI.
type CLIGitter struct {
	runner execx.Runner
}

// NewCLIGitter creates a new CLIGitter instance.
func NewCLIGitter(runner execx.Runner) *CLIGitter {
	return &CLIGitter{runner: runner}
}

// TagExists reports whether the exact tag already exists locally.
func (g *CLIGitter) TagExists(ctx context.Context, tag string) (bool, error) {
	out, err := g.runner.Output(ctx, "git", "tag", "-l", tag)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// CreateSignedTag creates a signed annotated tag at HEAD. The message is
// passed to git through a temporary file so multi-line notes survive intact.
func (g *CLIGitter) CreateSignedTag(ctx context.Context, tag, message string) error {
	f, err := os.CreateTemp("", "relcut-tag-*.md")
	if err != nil {
		return fmt.Errorf("failed to create tag message file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err = f.WriteString(message); err != nil {
		f.Close()
		return fmt.Errorf("failed to write tag message file: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close tag message file: %w", err)
	}

	return g.runner.Run(ctx, "git", "tag", "-s", "-a", tag, "-F", f.Name())
}

// Archive writes a gzip-compressed tarball of the tree at tag.
func (g *CLIGitter) Archive(ctx context.Context, tag, prefix, outPath string) error {
	return g.runner.Run(ctx, "git", "archive", "--format=tar.gz",
		"--prefix="+prefix, "-o", outPath, tag)
}

// PushTag pushes the tag to the named remote.
func (g *CLIGitter) PushTag(ctx context.Context, remote, tag string) error {
	return g.runner.Run(ctx, "git", "push", remote, tag)
}
