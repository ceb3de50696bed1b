package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type dbTransaction struct {
	tx     *gorm.DB
	nested bool
	done   bool
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the running transaction if any, otherwise the root database.
func DB(ctx context.Context) *gorm.DB {
	if t, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !t.done {
		return t.tx
	}

	db, _ := ctx.Value(dbKey{}).(*gorm.DB)
	return db
}

// WithDBTransaction begins a transaction. If the context is already inside a
// transaction, the returned context joins it and only the outermost caller can
// commit or rollback.
func WithDBTransaction(ctx context.Context) context.Context {
	if t, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !t.done {
		return context.WithValue(ctx, dbTransactionKey{}, &dbTransaction{tx: t.tx, nested: true})
	}

	tx := DB(ctx).Begin()
	return context.WithValue(ctx, dbTransactionKey{}, &dbTransaction{tx: tx})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if t, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !t.done {
		if !t.nested {
			t.tx.Commit()
		}
		t.done = true
	}

	return ctx
}

// WithRollbackDBTransaction is a no-op when the transaction has been committed,
// so it is safe to defer.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if t, ok := ctx.Value(dbTransactionKey{}).(*dbTransaction); ok && !t.done {
		if !t.nested {
			t.tx.Rollback()
		}
		t.done = true
	}

	return ctx
}
