package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/order_reporter/internal/domain"
)

const TableRuns = "report_runs"

type RunsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRunsRepository(pool *pgxpool.Pool) *RunsRepository {
	return &RunsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *RunsRepository) RecordRun(ctx context.Context, run *domain.Run) error {
	sql, args, err := r.qb.
		Insert(TableRuns).
		Columns(
			"input",
			"output",
			"status_column",
			"status_value",
			"recipient",
			"total_rows",
			"matched_rows",
			"outcome",
			"draft_path",
			"error_message",
			"finished_at",
		).
		Values(
			run.Input,
			run.Output,
			run.StatusColumn,
			run.StatusValue,
			run.Recipient,
			run.TotalRows,
			run.MatchedRows,
			run.Outcome,
			run.DraftPath,
			run.ErrorMessage,
			run.FinishedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// Runs returns the latest runs, newest first. limit 0 means all.
func (r *RunsRepository) Runs(ctx context.Context, limit uint64) ([]*domain.Run, error) {
	qb := r.qb.
		Select(
			"input",
			"output",
			"status_column",
			"status_value",
			"recipient",
			"total_rows",
			"matched_rows",
			"outcome",
			"draft_path",
			"error_message",
			"finished_at",
		).
		From(TableRuns).
		OrderBy("finished_at DESC", "id DESC")

	if limit > 0 {
		qb = qb.Limit(limit)
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	runs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Run])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return runs, nil
}
