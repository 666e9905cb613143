package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/tt/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func projectExists(uow *db.SQLiteUnitOfWork, id string) bool {
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var name string
		row := tx.QueryRowContext(ctx, `SELECT name FROM projects WHERE id = ?`, id)
		if err := row.Scan(&name); err == nil {
			found = true
		}
		return nil
	})
	return found
}

func insertProject(ctx context.Context, tx db.DBTX, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO projects (id, name, archived, created_at) VALUES (?, ?, 0, ?)`,
		id, "tx-test", "2024-01-01T00:00:00Z")
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertProject(ctx, tx, "p-commit")
	})
	require.NoError(t, err)

	assert.True(t, projectExists(uow, "p-commit"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertProject(ctx, tx, "p-rollback"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	assert.False(t, projectExists(uow, "p-rollback"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertProject(ctx, tx, "p-panic")
			panic("boom")
		})
	})

	assert.False(t, projectExists(uow, "p-panic"), "row should not exist after panic rollback")
}
