package core

import (
	"context"
	"errors"
	"time"
)

// ErrNoteNotFound is returned by content sources when a note does not exist.
var ErrNoteNotFound = errors.New("note not found")

// Command identifiers accepted by CommandRunner.
const (
	MigrateDateFooterCommand = "migrate-date-footer"
)

// ContentSource gives read-only access to notes.
// Paths are vault-relative and use / as separator.
type ContentSource interface {
	LoadContent(path string) (string, error)
	LoadProperties(path string) (map[string]any, error)
}

// PropertyMutator edits the Front Matter of a note.
// Every call re-reads the current state of the note.
type PropertyMutator interface {
	SetProperty(ctx context.Context, path string, key string, value any) error
	RemoveProperty(ctx context.Context, path string, key string) error
}

// CommandRunner executes a named command against a note.
type CommandRunner interface {
	RunCommand(ctx context.Context, commandID string, path string) error
}

// LinkResolver determines if a wikilink target exists.
type LinkResolver interface {
	Resolve(title string, sourcePath string) bool
}

// Notifier surfaces short status messages to the user.
type Notifier interface {
	Notify(message string, timeout time.Duration)
}
