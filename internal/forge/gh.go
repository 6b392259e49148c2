package forge

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/chunkah/relcut/internal/execx"
)

// generateNotesEndpoint resolves :owner/:repo from the current repository,
// a convention understood by gh api.
const generateNotesEndpoint = "repos/:owner/:repo/releases/generate-notes"

// Ensure the interface is satisfied.
var _ Forge = (*GHForge)(nil)

// GHForge is the concrete implementation of Forge using the gh CLI.
type GHForge struct {
	runner execx.Runner
}

// NewGHForge creates a new GHForge instance.
func NewGHForge(runner execx.Runner) *GHForge {
	return &GHForge{runner: runner}
}

// GenerateNotes fetches auto-generated release notes for the tag.
func (f *GHForge) GenerateNotes(ctx context.Context, tag string) (string, error) {
	out, err := f.runner.Output(ctx, "gh", "api", "--method", "POST",
		generateNotesEndpoint, "-f", "tag_name="+tag)
	if err != nil {
		return "", err
	}
	return gjson.Get(out, "body").String(), nil
}

// CreateRelease publishes a release for the tag with the assets attached.
// --notes-from-tag reuses the tag's annotation as the release notes and
// --verify-tag refuses to publish if the tag is missing from the remote.
func (f *GHForge) CreateRelease(ctx context.Context, tag string, assets ...string) error {
	args := append([]string{"release", "create", tag, "--notes-from-tag", "--verify-tag"}, assets...)
	return f.runner.Run(ctx, "gh", args...)
}
