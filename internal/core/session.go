package core

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

const notificationTimeout = 5 * time.Second

// Session lints notes loaded from a content source.
type Session struct {
	source   ContentSource
	linters  []Linter
	notifier Notifier
}

// NewSession creates a session. The notifier is optional.
func NewSession(source ContentSource, notifier Notifier, linters ...Linter) *Session {
	return &Session{
		source:   source,
		linters:  linters,
		notifier: notifier,
	}
}

// LintFile lints a note. In autofix mode, fixes run before the inspections are returned.
// The inspections are the ones found before fixing.
func (s *Session) LintFile(ctx context.Context, relativePath string, autofix bool) ([]*Inspection, error) {
	content, err := s.source.LoadContent(relativePath)
	if err != nil {
		return nil, fmt.Errorf("unable to load %s: %w", relativePath, err)
	}
	properties, err := s.source.LoadProperties(relativePath)
	if err != nil {
		return nil, fmt.Errorf("unable to load properties of %s: %w", relativePath, err)
	}

	inspections := LintAll(s.linters, LintArgs{
		Title:      text.TrimExtension(path.Base(relativePath)),
		Content:    content,
		Path:       relativePath,
		Properties: properties,
	})
	if !autofix {
		return inspections, nil
	}

	fixed := 0
	for _, inspection := range inspections {
		if inspection.Fixable() {
			fixed++
		}
	}
	if fixed == 0 {
		return inspections, nil
	}

	err = RunFixes(ctx, inspections)
	if s.notifier != nil {
		if err != nil {
			s.notifier.Notify(fmt.Sprintf("Failed to fix %s: %v", relativePath, err), notificationTimeout)
		} else {
			s.notifier.Notify(fmt.Sprintf("Fixed %d issue(s) in %s", fixed, relativePath), notificationTimeout)
		}
	}
	return inspections, err
}
