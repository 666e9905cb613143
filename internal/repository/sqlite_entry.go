package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/domain"
)

const entryColumns = `id, project_id, started_at, ended_at, note`

// SQLiteEntryRepo implements EntryRepo over a SQLite database or transaction.
type SQLiteEntryRepo struct {
	db db.DBTX
}

// NewSQLiteEntryRepo creates a new SQLiteEntryRepo.
func NewSQLiteEntryRepo(db db.DBTX) *SQLiteEntryRepo {
	return &SQLiteEntryRepo{db: db}
}

func (r *SQLiteEntryRepo) InsertRunning(ctx context.Context, e *domain.TimeEntry) error {
	if e.End != nil {
		return fmt.Errorf("inserting running entry %s: end is already set", e.ID)
	}
	query := `INSERT INTO time_entries (id, project_id, started_at, ended_at, note) VALUES (?, ?, ?, NULL, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.ProjectID,
		e.Start.UTC().Format(time.RFC3339),
		nullableString(e.Note),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

// StopRunning closes the entry at end, clamped so it never precedes the
// entry's start, and returns the updated entry.
func (r *SQLiteEntryRepo) StopRunning(ctx context.Context, e *domain.TimeEntry, end time.Time) (*domain.TimeEntry, error) {
	stopped := *e
	stopped.End = &end
	stopped.Normalize()

	query := `UPDATE time_entries SET ended_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, stopped.End.UTC().Format(time.RFC3339), stopped.ID); err != nil {
		return nil, fmt.Errorf("stopping time entry: %w", err)
	}
	return &stopped, nil
}

// Update replaces the stored row by id. The entry is normalized first so a
// caller-supplied end earlier than start can never reach the store.
func (r *SQLiteEntryRepo) Update(ctx context.Context, e *domain.TimeEntry) error {
	updated := *e
	updated.Normalize()

	query := `UPDATE time_entries SET project_id = ?, started_at = ?, ended_at = ?, note = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		updated.ProjectID,
		updated.Start.UTC().Format(time.RFC3339),
		nullableTimeToString(updated.End, time.RFC3339),
		nullableString(updated.Note),
		updated.ID,
	)
	if err != nil {
		return fmt.Errorf("updating time entry: %w", err)
	}
	return nil
}

// Delete removes the entry. Deleting an unknown id changes no rows and is
// not an error.
func (r *SQLiteEntryRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteEntryRepo) Get(ctx context.Context, id string) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	e, err := scanEntryRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("time entry %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FetchRunning returns the open entry with the latest start, or nil when
// nothing is running.
func (r *SQLiteEntryRepo) FetchRunning(ctx context.Context) (*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE ended_at IS NULL ORDER BY started_at DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	e, err := scanEntryRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// FetchEntries returns entries overlapping [rangeStart, rangeEnd), newest
// start first. An entry with no end is open-ended and overlaps any range its
// start precedes.
func (r *SQLiteEntryRepo) FetchEntries(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.TimeEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE started_at < ? AND (ended_at IS NULL OR ended_at > ?)
		ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query,
		rangeEnd.UTC().Format(time.RFC3339),
		rangeStart.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ResolveRunning force-closes every running entry except the one with the
// latest start, setting their end to the kept entry's start. With zero or
// one running entries the store is left unchanged.
func (r *SQLiteEntryRepo) ResolveRunning(ctx context.Context) error {
	query := `SELECT ` + entryColumns + ` FROM time_entries
		WHERE ended_at IS NULL ORDER BY started_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("listing running entries: %w", err)
	}
	running, err := func() ([]*domain.TimeEntry, error) {
		defer rows.Close()
		return scanEntries(rows)
	}()
	if err != nil {
		return err
	}
	if len(running) <= 1 {
		return nil
	}

	keep := running[0]
	forcedEnd := keep.Start.UTC().Format(time.RFC3339)
	for _, e := range running[1:] {
		if _, err := r.db.ExecContext(ctx,
			`UPDATE time_entries SET ended_at = ? WHERE id = ?`, forcedEnd, e.ID); err != nil {
			return fmt.Errorf("force-closing entry %s: %w", e.ID, err)
		}
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for entry scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*domain.TimeEntry, error) {
	var e domain.TimeEntry
	var startedAtStr string
	var endedAtStr, noteStr sql.NullString

	if err := s.Scan(&e.ID, &e.ProjectID, &startedAtStr, &endedAtStr, &noteStr); err != nil {
		return nil, err
	}

	var parseErr error
	e.Start, parseErr = time.Parse(time.RFC3339, startedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing started_at: %w", parseErr)
	}
	e.End = parseNullableTime(endedAtStr, time.RFC3339)
	if noteStr.Valid {
		note := noteStr.String
		e.Note = &note
	}
	return &e, nil
}

func scanEntryRow(row *sql.Row) (*domain.TimeEntry, error) {
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, sql.ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("scanning time entry: %w", err)
	}
	return e, nil
}

func scanEntries(rows *sql.Rows) ([]*domain.TimeEntry, error) {
	var entries []*domain.TimeEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning time entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}
