package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chunkah/relcut/internal/config"
	"github.com/chunkah/relcut/internal/notes"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// chdir switches to dir for the duration of the test, standing in for
// testing.T.Chdir which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

type MockManager struct {
	mock.Mock
}

func (m *MockManager) Release(ctx context.Context, version string, noPush bool) error {
	args := m.Called(ctx, version, noPush)
	return args.Error(0)
}

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	callArgs := m.Called(ctx, name, args)
	return callArgs.Error(0)
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	callArgs := m.Called(ctx, name, args)
	return callArgs.String(0), callArgs.Error(1)
}

type mockGitter struct {
	mock.Mock
}

func (m *mockGitter) TagExists(ctx context.Context, tag string) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitter) CreateSignedTag(ctx context.Context, tag, message string) error {
	return m.Called(ctx, tag, message).Error(0)
}

func (m *mockGitter) Archive(ctx context.Context, tag, prefix, outPath string) error {
	return m.Called(ctx, tag, prefix, outPath).Error(0)
}

func (m *mockGitter) PushTag(ctx context.Context, remote, tag string) error {
	return m.Called(ctx, remote, tag).Error(0)
}

type mockForge struct {
	mock.Mock
}

func (m *mockForge) GenerateNotes(ctx context.Context, tag string) (string, error) {
	args := m.Called(ctx, tag)
	return args.String(0), args.Error(1)
}

func (m *mockForge) CreateRelease(ctx context.Context, tag string, assets ...string) error {
	return m.Called(ctx, tag, assets).Error(0)
}

type mockCargo struct {
	mock.Mock
}

func (m *mockCargo) PackageVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockCargo) Vendor(ctx context.Context, platform, outPath string) error {
	return m.Called(ctx, platform, outPath).Error(0)
}

func (m *mockCargo) BuildOffline(ctx context.Context, manifestPath string) error {
	return m.Called(ctx, manifestPath).Error(0)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) VerifyOfflineBuild(ctx context.Context, project, version, sourceTar, vendorTar string) error {
	return m.Called(ctx, project, version, sourceTar, vendorTar).Error(0)
}

// stubEditor returns canned edited text without launching anything.
type stubEditor struct {
	edit func(initial string) (string, error)
}

func (s *stubEditor) Edit(_ context.Context, initial string) (string, error) {
	return s.edit(initial)
}

// passthroughEditor leaves the notes unchanged.
func passthroughEditor() *stubEditor {
	return &stubEditor{edit: func(initial string) (string, error) { return initial, nil }}
}

// testManager bundles a CLIManager with its mocked collaborators.
type testManager struct {
	mgr      *CLIManager
	runner   *mockRunner
	gitter   *mockGitter
	forge    *mockForge
	cargo    *mockCargo
	verifier *mockVerifier
	store    *notes.Store
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

// newTestManager builds a CLIManager in a fresh working directory. The
// checkpoint store is real, everything external is mocked.
func newTestManager(t *testing.T, editor NotesEditor) *testManager {
	t.Helper()
	chdir(t, t.TempDir())

	tm := &testManager{
		runner:   &mockRunner{},
		gitter:   &mockGitter{},
		forge:    &mockForge{},
		cargo:    &mockCargo{},
		verifier: &mockVerifier{},
		store:    notes.NewStore("."),
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}
	tm.mgr = NewCLIManager(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		config.Default(),
		tm.runner,
		tm.gitter,
		tm.forge,
		tm.cargo,
		tm.store,
		editor,
		tm.verifier,
		tm.stdout,
		tm.stderr,
	)
	return tm
}

func (tm *testManager) assertExpectations(t *testing.T) {
	t.Helper()
	tm.runner.AssertExpectations(t)
	tm.gitter.AssertExpectations(t)
	tm.forge.AssertExpectations(t)
	tm.cargo.AssertExpectations(t)
	tm.verifier.AssertExpectations(t)
}
