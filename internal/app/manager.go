package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/chunkah/relcut/internal/cargo"
	"github.com/chunkah/relcut/internal/config"
	"github.com/chunkah/relcut/internal/execx"
	"github.com/chunkah/relcut/internal/forge"
	"github.com/chunkah/relcut/internal/notes"
	"github.com/chunkah/relcut/internal/repo"
)

// Manager defines the business logic for cutting a release.
type Manager interface {
	// Release runs the full release workflow for the version. With noPush set
	// it stops short of any remote mutation and prints the manual follow-up
	// commands instead.
	Release(ctx context.Context, version string, noPush bool) error
}

// NotesEditor hands release notes to an interactive editor and returns the
// edited text.
type NotesEditor interface {
	Edit(ctx context.Context, initial string) (string, error)
}

// BuildVerifier checks that the release tarballs build offline.
type BuildVerifier interface {
	VerifyOfflineBuild(ctx context.Context, project, version, sourceTar, vendorTar string) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Release(ctx context.Context, version string, noPush bool) error {
	return l.check().Release(ctx, version, noPush)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface,
// orchestrating git, cargo and the hosting platform through their CLIs.
type CLIManager struct {
	logger   *slog.Logger
	cfg      *config.Config
	runner   execx.Runner
	gitter   repo.Gitter
	forge    forge.Forge
	cargo    cargo.Cargo
	store    *notes.Store
	editor   NotesEditor
	verifier BuildVerifier
	stdout   io.Writer
	stderr   io.Writer
}

func NewCLIManager(
	l *slog.Logger,
	cfg *config.Config,
	runner execx.Runner,
	g repo.Gitter,
	f forge.Forge,
	c cargo.Cargo,
	store *notes.Store,
	editor NotesEditor,
	verifier BuildVerifier,
	stdout, stderr io.Writer,
) *CLIManager {
	return &CLIManager{
		logger:   l,
		cfg:      cfg,
		runner:   runner,
		gitter:   g,
		forge:    f,
		cargo:    c,
		store:    store,
		editor:   editor,
		verifier: verifier,
		stdout:   stdout,
		stderr:   stderr,
	}
}
