// Package verify checks that release tarballs can build without network access.
package verify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chunkah/relcut/internal/cargo"
	"github.com/chunkah/relcut/internal/execx"
)

// Verifier extracts the source and vendor tarballs into a scratch directory,
// points cargo at the vendored dependencies and performs a full release build
// offline. This catches packaging mistakes before anything is published.
type Verifier struct {
	runner execx.Runner
	cargo  cargo.Cargo
}

// NewVerifier creates a new Verifier.
func NewVerifier(runner execx.Runner, c cargo.Cargo) *Verifier {
	return &Verifier{runner: runner, cargo: c}
}

// VerifyOfflineBuild performs the end-to-end offline build check.
func (v *Verifier) VerifyOfflineBuild(ctx context.Context, project, version, sourceTar, vendorTar string) error {
	tmpDir, err := os.MkdirTemp("", "relcut-verify-*")
	if err != nil {
		return fmt.Errorf("failed to create verification directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	// The source tarball extracts to <project>-<version>/; the vendor tarball
	// extracts to vendor/ nested inside it.
	if err = v.runner.Run(ctx, "tar", "-xzf", sourceTar, "-C", tmpDir); err != nil {
		return err
	}

	projectDir := filepath.Join(tmpDir, fmt.Sprintf("%s-%s", project, version))
	if err = v.runner.Run(ctx, "tar", "-xzf", vendorTar, "-C", projectDir); err != nil {
		return err
	}

	if err = writeCargoConfig(projectDir); err != nil {
		return err
	}

	return v.cargo.BuildOffline(ctx, filepath.Join(projectDir, "Cargo.toml"))
}

// cargoSourceConfig models the [source] table of .cargo/config.toml that
// redirects crates-io resolution to the vendored directory.
type cargoSourceConfig struct {
	Source map[string]map[string]string `toml:"source"`
}

// writeCargoConfig writes projectDir/.cargo/config.toml redirecting all
// dependency resolution to the local vendor directory.
func writeCargoConfig(projectDir string) error {
	cargoDir := filepath.Join(projectDir, ".cargo")
	if err := os.MkdirAll(cargoDir, 0o755); err != nil {
		return fmt.Errorf("failed to create .cargo directory: %w", err)
	}

	cfg := cargoSourceConfig{
		Source: map[string]map[string]string{
			"crates-io":        {"replace-with": "vendored-sources"},
			"vendored-sources": {"directory": "vendor"},
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode cargo config: %w", err)
	}

	configPath := filepath.Join(cargoDir, "config.toml")
	if err := os.WriteFile(configPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write cargo config: %w", err)
	}
	return nil
}
