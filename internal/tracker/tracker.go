// Package tracker holds the orchestrator that owns in-memory tracking state,
// mediates all mutations through the project and entry stores, enforces the
// single-running-entry invariant and recomputes derived reports.
//
// A Tracker is single-owner: one logical thread of control issues all
// operations, and no internal locking is provided. Embedders that need
// concurrent access must serialize it themselves.
package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/report"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/google/uuid"
)

// Tracker mediates every mutation of tracking state. Derived state
// (project list, running entry, today's entries, report totals) is reloaded
// from storage after each successful mutation, never updated optimistically.
type Tracker struct {
	projects repository.ProjectRepo
	entries  repository.EntryRepo
	uow      db.UnitOfWork

	now func() time.Time
	loc *time.Location

	projectList       []*domain.Project
	running           *domain.TimeEntry
	todaysEntries     []*domain.TimeEntry
	dailyTotals       []report.ProjectTotal
	weeklyTotals      []report.DayTotal
	selectedProjectID string

	observers []func()
}

// New builds a Tracker over the given stores. The unit of work covers the
// mutations that must pair a write with an invariant-resolution pass.
func New(projects repository.ProjectRepo, entries repository.EntryRepo, uow db.UnitOfWork, opts ...Option) *Tracker {
	t := &Tracker{
		projects: projects,
		entries:  entries,
		uow:      uow,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnChange registers an observer invoked after every successful mutating
// operation, once derived state has been reloaded from storage. Callbacks
// run on the Tracker's own context; observers marshal to their own loop if
// they need to.
func (t *Tracker) OnChange(fn func()) {
	t.observers = append(t.observers, fn)
}

func (t *Tracker) notify() {
	for _, fn := range t.observers {
		fn()
	}
}

// Accessors for derived state. Callers must not mutate the returned slices.

func (t *Tracker) Projects() []*domain.Project        { return t.projectList }
func (t *Tracker) RunningEntry() *domain.TimeEntry    { return t.running }
func (t *Tracker) TodaysEntries() []*domain.TimeEntry { return t.todaysEntries }
func (t *Tracker) DailyTotals() []report.ProjectTotal { return t.dailyTotals }
func (t *Tracker) WeeklyTotals() []report.DayTotal    { return t.weeklyTotals }
func (t *Tracker) SelectedProjectID() string          { return t.selectedProjectID }

// IsRunning reports whether a time entry is currently open.
func (t *Tracker) IsRunning() bool {
	return t.running != nil
}

// ElapsedSeconds returns the running entry's elapsed whole seconds at now,
// or 0 when idle. Display-only; calling it never touches stored state.
func (t *Tracker) ElapsedSeconds(now time.Time) int {
	if t.running == nil {
		return 0
	}
	return domain.DurationSeconds(t.running.Start, t.running.End, now)
}

// ProjectName resolves a project id to its display name from the loaded
// active list, falling back to "unknown".
func (t *Tracker) ProjectName(projectID string) string {
	for _, p := range t.projectList {
		if p.ID == projectID {
			return p.Name
		}
	}
	return "unknown"
}

// LoadInitialState resolves the running-entry invariant, guarantees a
// default project, and loads all derived state. On any storage failure the
// Tracker presents fully-empty state rather than a partial load; the error
// is still returned so the embedder can decide whether to retry.
func (t *Tracker) LoadInitialState(ctx context.Context) error {
	if err := t.load(ctx); err != nil {
		t.resetState()
		return err
	}
	return nil
}

func (t *Tracker) load(ctx context.Context) error {
	if err := t.entries.ResolveRunning(ctx); err != nil {
		return err
	}
	defaultProject, err := t.projects.EnsureDefaultProject(ctx)
	if err != nil {
		return err
	}
	t.projectList, err = t.projects.FetchAllActive(ctx)
	if err != nil {
		return err
	}
	t.selectedProjectID = defaultProject.ID
	t.running, err = t.entries.FetchRunning(ctx)
	if err != nil {
		return err
	}
	if err := t.refreshTodaysEntries(ctx); err != nil {
		return err
	}
	return t.RefreshReports(ctx, t.now())
}

func (t *Tracker) resetState() {
	t.projectList = nil
	t.running = nil
	t.todaysEntries = nil
	t.dailyTotals = nil
	t.weeklyTotals = nil
	t.selectedProjectID = ""
}

// StartTimer opens a new entry against the selected project. Already
// running, or nothing selected, is a silent no-op.
func (t *Tracker) StartTimer(ctx context.Context) error {
	if t.running != nil {
		return nil
	}
	if t.selectedProjectID == "" {
		return nil
	}

	e := &domain.TimeEntry{
		ID:        uuid.New().String(),
		ProjectID: t.selectedProjectID,
		Start:     t.now().UTC().Truncate(time.Second),
	}
	if err := t.entries.InsertRunning(ctx, e); err != nil {
		return err
	}
	t.running = e

	if err := t.refreshAfterEntryChange(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// StopTimer closes the running entry at now. Idle is a silent no-op.
func (t *Tracker) StopTimer(ctx context.Context) error {
	if t.running == nil {
		return nil
	}

	if _, err := t.entries.StopRunning(ctx, t.running, t.now().UTC().Truncate(time.Second)); err != nil {
		return err
	}
	t.running = nil

	if err := t.refreshAfterEntryChange(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// SelectProject changes the selection. Pure in-memory state; the id is not
// validated here — an unknown id simply means StartTimer records against it.
func (t *Tracker) SelectProject(id string) {
	t.selectedProjectID = id
}

// CreateProject stores a new project under the trimmed, case-folded name.
// A name that is empty after trimming is a silent no-op. The current
// selection is preserved.
func (t *Tracker) CreateProject(ctx context.Context, name string) error {
	normalized := domain.NormalizeProjectName(name)
	if normalized == "" {
		return nil
	}

	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      normalized,
		CreatedAt: t.now().UTC().Truncate(time.Second),
	}
	if err := t.projects.Insert(ctx, p); err != nil {
		return err
	}
	if err := t.refreshProjects(ctx, true); err != nil {
		return err
	}
	t.notify()
	return nil
}

// ArchiveProject archives the project and reloads the active list. If the
// archived project was selected, selection falls back to the first
// remaining active project, or to none.
func (t *Tracker) ArchiveProject(ctx context.Context, id string) error {
	if err := t.projects.Archive(ctx, id); err != nil {
		return err
	}
	if err := t.refreshProjects(ctx, false); err != nil {
		return err
	}
	if err := t.RefreshReports(ctx, t.now()); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *Tracker) refreshProjects(ctx context.Context, keepSelection bool) error {
	list, err := t.projects.FetchAllActive(ctx)
	if err != nil {
		return err
	}
	t.projectList = list

	if keepSelection {
		return nil
	}
	for _, p := range t.projectList {
		if p.ID == t.selectedProjectID {
			return nil
		}
	}
	t.selectedProjectID = ""
	if len(t.projectList) > 0 {
		t.selectedProjectID = t.projectList[0].ID
	}
	return nil
}

// GetEntry returns a single stored entry, or repository.ErrNotFound.
func (t *Tracker) GetEntry(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return t.entries.Get(ctx, id)
}

// ListEntries returns stored entries overlapping [rangeStart, rangeEnd),
// newest first.
func (t *Tracker) ListEntries(ctx context.Context, rangeStart, rangeEnd time.Time) ([]*domain.TimeEntry, error) {
	return t.entries.FetchEntries(ctx, rangeStart, rangeEnd)
}

// UpdateEntry edits an entry's interval and note. Unknown ids are a silent
// no-op. The end is clamped to not precede start and the note trimmed (empty
// becomes absent). The write and the invariant-resolution pass run in one
// transaction, since an edit can create or remove a running entry.
func (t *Tracker) UpdateEntry(ctx context.Context, id string, start time.Time, end *time.Time, note *string) error {
	e, err := t.entries.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	e.Start = start
	e.End = end
	e.Note = note
	e.Normalize()

	err = t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		if err := txEntries.Update(ctx, e); err != nil {
			return err
		}
		return txEntries.ResolveRunning(ctx)
	})
	if err != nil {
		return err
	}

	t.running, err = t.entries.FetchRunning(ctx)
	if err != nil {
		return err
	}
	if err := t.refreshAfterEntryChange(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

// DeleteEntry removes an entry; a missing id deletes nothing. The running
// entry is reloaded since the deleted entry may have been it.
func (t *Tracker) DeleteEntry(ctx context.Context, id string) error {
	if err := t.entries.Delete(ctx, id); err != nil {
		return err
	}

	var err error
	t.running, err = t.entries.FetchRunning(ctx)
	if err != nil {
		return err
	}
	if err := t.refreshAfterEntryChange(ctx); err != nil {
		return err
	}
	t.notify()
	return nil
}

func (t *Tracker) refreshAfterEntryChange(ctx context.Context) error {
	if err := t.refreshTodaysEntries(ctx); err != nil {
		return err
	}
	return t.RefreshReports(ctx, t.now())
}

func (t *Tracker) refreshTodaysEntries(ctx context.Context) error {
	dayStart, dayEnd := t.dayBounds(t.now())
	entries, err := t.entries.FetchEntries(ctx, dayStart, dayEnd)
	if err != nil {
		return err
	}
	t.todaysEntries = entries
	return nil
}

// RefreshReports recomputes daily totals for today and weekly totals for
// the trailing 7-day window ending at end-of-today, using calendar-day
// boundaries in the Tracker's location.
func (t *Tracker) RefreshReports(ctx context.Context, now time.Time) error {
	dayStart, dayEnd := t.dayBounds(now)

	year, month, day := now.In(t.loc).Date()
	weekStart := time.Date(year, month, day-6, 0, 0, 0, 0, t.loc)

	dailyEntries, err := t.entries.FetchEntries(ctx, dayStart, dayEnd)
	if err != nil {
		return err
	}
	weeklyEntries, err := t.entries.FetchEntries(ctx, weekStart, dayEnd)
	if err != nil {
		return err
	}

	t.dailyTotals = report.DailyTotals(dailyEntries, dayStart, dayEnd, now, t.ProjectName)
	t.weeklyTotals = report.WeeklyTotals(weeklyEntries, weekStart, now, t.loc)
	return nil
}

// ExportCSV renders entries overlapping [rangeStart, rangeEnd) as CSV text.
// Names resolve against every project, archived included, so historical
// exports keep their project names.
func (t *Tracker) ExportCSV(ctx context.Context, rangeStart, rangeEnd, now time.Time) (string, error) {
	entries, err := t.entries.FetchEntries(ctx, rangeStart, rangeEnd)
	if err != nil {
		return "", err
	}
	all, err := t.projects.FetchAll(ctx)
	if err != nil {
		return "", err
	}

	names := make(map[string]string, len(all))
	for _, p := range all {
		names[p.ID] = p.Name
	}
	return report.BuildCSV(entries, names, now), nil
}

// dayBounds returns the start of the calendar day containing now and the
// start of the next day, in the Tracker's location.
func (t *Tracker) dayBounds(now time.Time) (time.Time, time.Time) {
	year, month, day := now.In(t.loc).Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, t.loc)
	dayEnd := time.Date(year, month, day+1, 0, 0, 0, 0, t.loc)
	return dayStart, dayEnd
}
