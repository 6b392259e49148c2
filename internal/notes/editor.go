package notes

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultEditor is used when neither EDITOR nor VISUAL is set.
const DefaultEditor = "vi"

// Editor opens the operator's configured editor on a temporary file and
// returns the edited contents.
type Editor struct {
	env    EnvProvider
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewEditor creates an Editor attached to the given terminal streams.
func NewEditor(env EnvProvider, stdin io.Reader, stdout, stderr io.Writer) *Editor {
	return &Editor{env: env, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Edit writes initial to a temporary file, runs the editor on it as a
// blocking foreground process and returns the file's final contents. The
// temporary file is removed on every path.
func (e *Editor) Edit(ctx context.Context, initial string) (string, error) {
	f, err := os.CreateTemp("", "relcut-notes-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create notes file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err = f.WriteString(initial); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write notes file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("failed to close notes file: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.resolveEditor(), path)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr
	if err = cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with an error: %w", err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited notes: %w", err)
	}
	return string(edited), nil
}

// resolveEditor picks the editor from EDITOR, then VISUAL, then DefaultEditor.
func (e *Editor) resolveEditor() string {
	if editor := e.env.Get("EDITOR"); editor != "" {
		return editor
	}
	if editor := e.env.Get("VISUAL"); editor != "" {
		return editor
	}
	return DefaultEditor
}
