package cargo

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/chunkah/relcut/internal/execx"
)

// Ensure the interface is satisfied.
var _ Cargo = (*CLICargo)(nil)

// CLICargo is the concrete implementation of Cargo using the cargo CLI.
type CLICargo struct {
	runner execx.Runner
}

// NewCLICargo creates a new CLICargo instance.
func NewCLICargo(runner execx.Runner) *CLICargo {
	return &CLICargo{runner: runner}
}

// PackageVersion returns the version declared by the workspace's single package.
func (c *CLICargo) PackageVersion(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, "cargo", "metadata", "--no-deps", "--format-version=1")
	if err != nil {
		return "", err
	}

	packages := gjson.Get(out, "packages")
	if !packages.IsArray() {
		return "", fmt.Errorf("cargo metadata returned no packages array")
	}
	if n := len(packages.Array()); n != 1 {
		return "", fmt.Errorf("expected exactly one package in cargo metadata, got %d", n)
	}

	version := gjson.Get(out, "packages.0.version").String()
	if version == "" {
		return "", fmt.Errorf("cargo metadata package has no version")
	}
	return version, nil
}

// Vendor bundles non-dev dependencies into a tarball via cargo vendor-filterer.
func (c *CLICargo) Vendor(ctx context.Context, platform, outPath string) error {
	return c.runner.Run(ctx, "cargo", "vendor-filterer",
		"--platform", platform,
		"--keep-dep-kinds", "no-dev",
		"--format=tar.gz",
		"--prefix=vendor",
		outPath)
}

// BuildOffline performs a release build with network access disabled.
func (c *CLICargo) BuildOffline(ctx context.Context, manifestPath string) error {
	return c.runner.Run(ctx, "cargo", "build", "--release", "--offline",
		"--manifest-path", manifestPath)
}
