package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/tt/internal/domain"
)

// ProjectRepo is the persistence port for projects. Implementations hold no
// business rules beyond storage, filtering and ordering.
type ProjectRepo interface {
	// FetchAllActive returns non-archived projects ordered by created_at ascending.
	FetchAllActive(ctx context.Context) ([]*domain.Project, error)
	// FetchAll returns every project, archived included, same ordering.
	FetchAll(ctx context.Context) ([]*domain.Project, error)
	Insert(ctx context.Context, p *domain.Project) error
	// Archive marks the project archived. Missing ids are a no-op, not an error.
	Archive(ctx context.Context, id string) error
	// EnsureDefaultProject returns the first active project, creating one
	// named "default" when none exists.
	EnsureDefaultProject(ctx context.Context) (*domain.Project, error)
}

// EntryRepo is the persistence port for time entries.
type EntryRepo interface {
	// InsertRunning stores a new open entry. The entry's End must be absent.
	InsertRunning(ctx context.Context, e *domain.TimeEntry) error
	// StopRunning sets the entry's end (clamped to not precede its start),
	// persists it and returns the updated entry.
	StopRunning(ctx context.Context, e *domain.TimeEntry, end time.Time) (*domain.TimeEntry, error)
	// Update replaces the stored entry by id.
	Update(ctx context.Context, e *domain.TimeEntry) error
	// Delete removes the entry. Missing ids are a no-op, not an error.
	Delete(ctx context.Context, id string) error
	// Get returns the entry by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*domain.TimeEntry, error)
	// FetchRunning returns the open entry with the latest start, or nil when
	// nothing is running.
	FetchRunning(ctx context.Context) (*domain.TimeEntry, error)
	// FetchEntries returns entries overlapping the half-open range
	// [rangeStart, rangeEnd), ordered by start descending. An open entry
	// counts as overlapping any range its start precedes.
	FetchEntries(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.TimeEntry, error)
	// ResolveRunning force-closes all running entries except the one with
	// the latest start, setting their end to the kept entry's start.
	// Idempotent; zero or one running entries leave the store unchanged.
	ResolveRunning(ctx context.Context) error
}
