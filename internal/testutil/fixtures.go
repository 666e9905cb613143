package testutil

import (
	"time"

	"github.com/alexanderramin/tt/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithArchived() ProjectOption {
	return func(p *domain.Project) {
		p.Archived = true
	}
}

func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t.UTC().Truncate(time.Second)
	}
}

// NewTestProject builds a project with sane defaults. Times are truncated to
// whole seconds so they survive the RFC3339 round-trip through SQLite.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TimeEntry options
type EntryOption func(*domain.TimeEntry)

func WithStart(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Start = t.UTC().Truncate(time.Second)
	}
}

func WithEnd(t time.Time) EntryOption {
	return func(e *domain.TimeEntry) {
		end := t.UTC().Truncate(time.Second)
		e.End = &end
	}
}

func WithNote(note string) EntryOption {
	return func(e *domain.TimeEntry) {
		e.Note = &note
	}
}

// NewTestEntry builds a running entry for the given project; add WithEnd to
// close it.
func NewTestEntry(projectID string, opts ...EntryOption) *domain.TimeEntry {
	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Start:     time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
