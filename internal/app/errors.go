package app

import (
	"fmt"
)

type TagExistsError struct {
	Tag string
}

func (e *TagExistsError) Error() string {
	return fmt.Sprintf("Tag %s already exists", e.Tag)
}

type VersionMismatchError struct {
	Declared  string
	Requested string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("Version mismatch: Cargo.toml has %s, but releasing %s", e.Declared, e.Requested)
}

type EmptyNotesError struct{}

func (e *EmptyNotesError) Error() string {
	return "Release notes are empty, aborting"
}
