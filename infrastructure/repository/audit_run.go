package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/vx-block-audit/infrastructure/database/postgres"
	"github.com/vfg2006/vx-block-audit/internal/domain"
)

const (
	auditRunsTable   = "audit_runs"
	auditRunsColumns = "id, target_app_ids, excluded_block_values, recipient_email, sender_email, status, error_message, duration_ms, created_at"
)

type AuditRunRepository interface {
	Save(ctx context.Context, run *domain.AuditRun) error
	GetByID(ctx context.Context, id string) (*domain.AuditRun, error)
	List(ctx context.Context, filters *domain.AuditRunFilters) ([]*domain.AuditRun, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type auditRunRepository struct {
	conn postgres.Queryer
	now  func() time.Time
}

func NewAuditRunRepository(conn postgres.Queryer) AuditRunRepository {
	return &auditRunRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *auditRunRepository) Save(ctx context.Context, run *domain.AuditRun) error {
	excluded := run.ExcludedBlockValues
	if excluded == nil {
		excluded = []string{}
	}

	query, args, err := squirrel.
		Insert(auditRunsTable).
		Columns("id", "target_app_ids", "excluded_block_values", "recipient_email", "sender_email", "status", "error_message", "duration_ms", "created_at").
		Values(
			run.ID,
			pq.Array(run.TargetAppIDs),
			pq.Array(excluded),
			run.RecipientEmail,
			run.SenderEmail,
			string(run.Status),
			run.ErrorMessage,
			run.DurationMs,
			run.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

func (r *auditRunRepository) GetByID(ctx context.Context, id string) (*domain.AuditRun, error) {
	query, args, err := squirrel.
		Select(auditRunsColumns).
		From(auditRunsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	run, err := scanAuditRun(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning audit run: %w", err)
	}

	return run, nil
}

func (r *auditRunRepository) List(ctx context.Context, filters *domain.AuditRunFilters) ([]*domain.AuditRun, error) {
	builder := squirrel.
		Select(auditRunsColumns).
		From(auditRunsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.Since != nil {
			builder = builder.Where(squirrel.GtOrEq{"created_at": *filters.Since})
		}
		if filters.Limit > 0 {
			builder = builder.Limit(uint64(filters.Limit))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.AuditRun, 0)
	for rows.Next() {
		run, err := scanAuditRun(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning audit runs: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return runs, nil
}

func (r *auditRunRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete(auditRunsTable).
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuditRun(row rowScanner) (*domain.AuditRun, error) {
	run := &domain.AuditRun{}
	var status string
	var errorMessage sql.NullString

	err := row.Scan(
		&run.ID,
		pq.Array(&run.TargetAppIDs),
		pq.Array(&run.ExcludedBlockValues),
		&run.RecipientEmail,
		&run.SenderEmail,
		&status,
		&errorMessage,
		&run.DurationMs,
		&run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Status = domain.AuditRunStatus(status)
	if errorMessage.Valid {
		run.ErrorMessage = &errorMessage.String
	}

	return run, nil
}
