package app

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Release runs the full release workflow. On any failure it reports the
// checkpoint file's location so the operator knows the edited notes survive
// a retry.
func (m *CLIManager) Release(ctx context.Context, version string, noPush bool) error {
	if err := m.release(ctx, version, noPush); err != nil {
		if m.store.Exists(version) {
			fmt.Fprintf(m.stderr, "Release notes saved to: %s\n", m.store.Path(version))
		}
		return err
	}
	return nil
}

func (m *CLIManager) release(ctx context.Context, version string, noPush bool) error {
	m.logger.Debug("cutting release", "version", version, "noPush", noPush)

	tag := m.cfg.TagPrefix + version
	sourceTarball := fmt.Sprintf("%s-%s.tar.gz", m.cfg.Project, version)
	vendorTarball := fmt.Sprintf("%s-%s-vendor.tar.gz", m.cfg.Project, version)

	exists, err := m.gitter.TagExists(ctx, tag)
	if err != nil {
		return err
	}
	if exists {
		return &TagExistsError{Tag: tag}
	}

	m.step("Running checks...")
	if err = m.runner.Run(ctx, m.cfg.CheckCommand[0], m.cfg.CheckCommand[1:]...); err != nil {
		return err
	}

	m.step("Verifying version matches Cargo.toml...")
	declared, err := m.cargo.PackageVersion(ctx)
	if err != nil {
		return err
	}
	if declared != version {
		return &VersionMismatchError{Declared: declared, Requested: version}
	}

	text, err := m.acquireNotes(ctx, version, tag)
	if err != nil {
		return err
	}

	m.step("Opening editor for release notes...")
	edited, err := m.editor.Edit(ctx, text)
	if err != nil {
		return err
	}
	if strings.TrimSpace(edited) == "" {
		return &EmptyNotesError{}
	}

	// Checkpoint the edited notes before any mutating step so a failure from
	// here on never loses operator-authored content.
	if err = m.store.Write(version, edited); err != nil {
		return err
	}

	m.step("Creating signed tag %s...", tag)
	if err = m.gitter.CreateSignedTag(ctx, tag, edited); err != nil {
		return err
	}

	m.step("Generating source tarball...")
	prefix := fmt.Sprintf("%s-%s/", m.cfg.Project, version)
	if err = m.gitter.Archive(ctx, tag, prefix, sourceTarball); err != nil {
		return err
	}

	m.step("Generating vendor tarball...")
	if err = m.cargo.Vendor(ctx, m.cfg.VendorPlatform, vendorTarball); err != nil {
		return err
	}

	m.step("Verifying offline build...")
	if err = m.verifier.VerifyOfflineBuild(ctx, m.cfg.Project, version, sourceTarball, vendorTarball); err != nil {
		return err
	}

	if noPush {
		m.printFollowUp(tag, sourceTarball, vendorTarball)
	} else {
		if err = m.publish(ctx, tag, sourceTarball, vendorTarball); err != nil {
			return err
		}
	}

	// The checkpoint only outlives the run when the run fails.
	return m.store.Delete(version)
}

// acquireNotes reuses checkpointed notes from an interrupted run, or fetches
// auto-generated notes from the hosting platform.
func (m *CLIManager) acquireNotes(ctx context.Context, version, tag string) (string, error) {
	if m.store.Exists(version) {
		fmt.Fprintf(m.stdout, "Found saved release notes from previous run: %s\n", m.store.Path(version))
		return m.store.Read(version)
	}

	m.step("Fetching release notes from GitHub...")
	return m.forge.GenerateNotes(ctx, tag)
}

func (m *CLIManager) publish(ctx context.Context, tag, sourceTarball, vendorTarball string) error {
	m.step("Pushing tag...")
	if err := m.gitter.PushTag(ctx, m.cfg.Remote, tag); err != nil {
		return err
	}

	m.step("Creating GitHub release...")
	if err := m.forge.CreateRelease(ctx, tag, sourceTarball, vendorTarball); err != nil {
		return err
	}

	m.step("Cleaning up tarballs...")
	for _, tarball := range []string{sourceTarball, vendorTarball} {
		if err := os.Remove(tarball); err != nil {
			return fmt.Errorf("failed to remove %s: %w", tarball, err)
		}
	}

	fmt.Fprintln(m.stdout)
	m.success("Release %s published successfully!", tag)
	return nil
}

// printFollowUp reports the manual commands that complete a --no-push release.
func (m *CLIManager) printFollowUp(tag, sourceTarball, vendorTarball string) {
	fmt.Fprintln(m.stdout)
	m.success("Release %s prepared successfully.", tag)
	fmt.Fprintf(m.stdout, "Tarballs: %s, %s\n", sourceTarball, vendorTarball)
	fmt.Fprintln(m.stdout)
	fmt.Fprintln(m.stdout, "To complete the release, run:")
	fmt.Fprintf(m.stdout, "  git push %s %s\n", m.cfg.Remote, tag)
	fmt.Fprintf(m.stdout, "  gh release create %s --notes-from-tag --verify-tag %s %s\n",
		tag, sourceTarball, vendorTarball)
	fmt.Fprintf(m.stdout, "  rm %s %s\n", sourceTarball, vendorTarball)
}
