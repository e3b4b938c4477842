package duckdb

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTransaction binds tx to ctx so that stores called with ctx write inside it.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// Execer is the subset of *sql.DB and *sql.Tx the stores write through.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ExecerFor returns the transaction bound to ctx, or db when there is none.
func ExecerFor(ctx context.Context, db *sql.DB) Execer {
	if tx := GetTransaction(ctx); tx != nil {
		return tx
	}
	return db
}

// InTransaction runs fn inside a transaction bound to its context. The transaction is
// committed when fn returns nil and rolled back otherwise. An already bound transaction
// is reused.
func InTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	if GetTransaction(ctx) != nil {
		return fn(ctx)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(WithTransaction(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
