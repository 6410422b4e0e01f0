package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

var _ TxManager = (*SQLTxManager)(nil)

type SQLTxManager struct {
	db *sql.DB
}

func NewSQLTxManager(db *sql.DB) *SQLTxManager {
	return &SQLTxManager{db: db}
}

func (tm *SQLTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	// Nested calls join the outer transaction.
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := tm.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txCtx := NewContextWithTx(ctx, tx)

	defer func() {
		if r := recover(); r != nil {
			rollback(tx)
			panic(r)
		}

		if err != nil {
			rollback(tx)
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	err = fn(txCtx)
	return err
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		slog.Error("failed to rollback transaction", "reason", err)
	}
}

type nopTxCtxKey int

const nopTxKey nopTxCtxKey = iota

var _ TxManager = (*NopTxManager)(nil)

// NopTxManager runs fn directly. It backs stores that are atomic per operation.
type NopTxManager struct{}

func (NopTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, nopTxKey, struct{}{}))
}
