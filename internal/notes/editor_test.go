package notes

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnv is a map-backed EnvProvider.
type fakeEnv map[string]string

func (f fakeEnv) Get(key string) string { return f[key] }

func TestEditor_ResolveEditor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  fakeEnv
		want string
	}{
		{"EDITOR wins", fakeEnv{"EDITOR": "nano", "VISUAL": "code"}, "nano"},
		{"VISUAL fallback", fakeEnv{"VISUAL": "code"}, "code"},
		{"default", fakeEnv{}, DefaultEditor},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := NewEditor(tt.env, nil, io.Discard, io.Discard)
			assert.Equal(t, tt.want, e.resolveEditor())
		})
	}
}

func TestEditor_Edit_ReturnsContents(t *testing.T) {
	t.Parallel()

	// "true" leaves the file untouched, so Edit returns the initial text.
	e := NewEditor(fakeEnv{"EDITOR": "true"}, nil, io.Discard, io.Discard)
	got, err := e.Edit(context.Background(), "initial notes\n")
	require.NoError(t, err)
	assert.Equal(t, "initial notes\n", got)
}

func TestEditor_Edit_EditorFailure(t *testing.T) {
	t.Parallel()

	e := NewEditor(fakeEnv{"EDITOR": "false"}, nil, io.Discard, io.Discard)
	_, err := e.Edit(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "editor exited with an error")
}
