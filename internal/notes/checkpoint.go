// Package notes manages release-notes acquisition, editing and checkpointing.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists edited release notes to a version-keyed checkpoint file so
// an interrupted release can resume without repeating the editing step. The
// file exists exactly while notes have been edited but the release has not
// yet fully succeeded.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the checkpoint file path for the version.
func (s *Store) Path(version string) string {
	return filepath.Join(s.dir, fmt.Sprintf(".release-notes-%s.md", version))
}

// Exists reports whether a checkpoint for the version is present.
func (s *Store) Exists(version string) bool {
	_, err := os.Stat(s.Path(version))
	return err == nil
}

// Read returns the checkpointed notes for the version.
func (s *Store) Read(version string) (string, error) {
	data, err := os.ReadFile(s.Path(version))
	if err != nil {
		return "", fmt.Errorf("failed to read saved release notes: %w", err)
	}
	return string(data), nil
}

// Write checkpoints the notes for the version.
func (s *Store) Write(version, text string) error {
	if err := os.WriteFile(s.Path(version), []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to save release notes: %w", err)
	}
	return nil
}

// Delete removes the checkpoint for the version. Deleting an absent
// checkpoint is not an error.
func (s *Store) Delete(version string) error {
	err := os.Remove(s.Path(version))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove release notes file: %w", err)
	}
	return nil
}
