package querier

import (
	"context"
	"database/sql"

	trmsql "github.com/avito-tech/go-transaction-manager/sql"
)

// Querier runs statements on the transaction stored in ctx, or directly on the pool when
// there is none.
type Querier struct {
	db     *sql.DB
	getter *trmsql.CtxGetter
}

func New(db *sql.DB, getter *trmsql.CtxGetter) *Querier {
	return &Querier{
		db:     db,
		getter: getter,
	}
}

func (q *Querier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.get(ctx).ExecContext(ctx, query, args...)
}

func (q *Querier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return q.get(ctx).QueryContext(ctx, query, args...)
}

func (q *Querier) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return q.get(ctx).QueryRowContext(ctx, query, args...)
}

func (q *Querier) get(ctx context.Context) trmsql.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.db)
}
