package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/google/uuid"
)

const projectColumns = `id, name, archived, created_at`

// SQLiteProjectRepo implements ProjectRepo over a SQLite database or
// transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) FetchAllActive(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE archived = 0 ORDER BY created_at`
	return r.queryProjects(ctx, query)
}

func (r *SQLiteProjectRepo) FetchAll(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	return r.queryProjects(ctx, query)
}

func (r *SQLiteProjectRepo) Insert(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, archived, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		boolToInt(p.Archived),
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

// Archive marks the project archived. Archiving an unknown id changes no
// rows and is not an error.
func (r *SQLiteProjectRepo) Archive(ctx context.Context, id string) error {
	query := `UPDATE projects SET archived = 1 WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("archiving project: %w", err)
	}
	return nil
}

// EnsureDefaultProject returns the first active project, inserting one named
// "default" when the store has none.
func (r *SQLiteProjectRepo) EnsureDefaultProject(ctx context.Context) (*domain.Project, error) {
	active, err := r.FetchAllActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return active[0], nil
	}

	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      "default",
		CreatedAt: time.Now().UTC(),
	}
	if err := r.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *SQLiteProjectRepo) queryProjects(ctx context.Context, query string) ([]*domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func scanProject(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var archived int
	var createdAtStr string

	if err := rows.Scan(&p.ID, &p.Name, &archived, &createdAtStr); err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}

	p.Archived = intToBool(archived)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &p, nil
}
