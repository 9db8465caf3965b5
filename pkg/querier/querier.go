package querier

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Builder билдер запросов с плейсхолдерами postgres ($1, $2...).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Querier выполняет запросы в транзакции из контекста, если она есть,
// иначе напрямую через пул.
type Querier struct {
	pool   *pgxpool.Pool
	getter *pgxv5.CtxGetter
}

func New(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *Querier {
	return &Querier{
		pool:   pool,
		getter: getter,
	}
}

func (q *Querier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return q.get(ctx).Exec(ctx, sql, args...)
}

func (q *Querier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return q.get(ctx).Query(ctx, sql, args...)
}

func (q *Querier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return q.get(ctx).QueryRow(ctx, sql, args...)
}

// QueryBuilder собирает запрос из squirrel и выполняет его.
func (q *Querier) QueryBuilder(ctx context.Context, builder sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, query, args...)
}

// QueryRowBuilder как QueryBuilder, но для одной строки. Ошибка сборки
// запроса вернётся из Scan.
func (q *Querier) QueryRowBuilder(ctx context.Context, builder sq.Sqlizer) pgx.Row {
	query, args, err := builder.ToSql()
	if err != nil {
		return errRow{err: fmt.Errorf("build query: %w", err)}
	}
	return q.QueryRow(ctx, query, args...)
}

func (q *Querier) get(ctx context.Context) pgxv5.Tr {
	return q.getter.DefaultTrOrDB(ctx, q.pool)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
