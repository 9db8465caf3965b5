package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/internal/repository"
	"fastfeet/internal/service/notification"

	"github.com/jackc/pgx/v5"
)

const columns = `id, key, payload, status, error, created_at, published_at, processed_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, task entities.QueuedTask) error {
	query := `INSERT INTO queued_tasks (id, key, payload, status)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(ctx, query, task.ID, task.Key.String(), task.Payload, task.Status.String())
	if err != nil {
		return fmt.Errorf("unexpected task repository create error: %w", err)
	}
	return nil
}

// FetchPending строки остаются заблокированными до конца транзакции,
// параллельный ретранслятор их пропустит.
func (r *Repository) FetchPending(ctx context.Context, limit int) ([]entities.QueuedTask, error) {
	query := `SELECT ` + columns + `
		FROM queued_tasks
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected task repository fetch pending error: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.QueuedTask, 0, limit)
	for rows.Next() {
		taskModel, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected task repository fetch pending error: %w", err)
		}
		tasks = append(tasks, *ToDomain(taskModel))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected task repository fetch pending error: %w", err)
	}

	return tasks, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []string, publishedAt time.Time) error {
	query := `UPDATE queued_tasks
		SET status = 'published', published_at = $2
		WHERE id = ANY($1) AND status = 'pending'`

	if _, err := r.querier.Exec(ctx, query, ids, publishedAt); err != nil {
		return fmt.Errorf("unexpected task repository mark published error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.QueuedTask, error) {
	query := `SELECT ` + columns + ` FROM queued_tasks WHERE id = $1`

	taskModel, err := scanTask(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notification.ErrTaskNotFound
		}
		return nil, fmt.Errorf("unexpected task repository getbyid error: %w", err)
	}

	return ToDomain(taskModel), nil
}

func (r *Repository) MarkProcessed(
	ctx context.Context,
	id string,
	status entities.TaskStatus,
	reason *string,
	processedAt time.Time,
) error {
	query := `UPDATE queued_tasks
		SET status = $2, error = $3, processed_at = $4
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, status.String(), reason, processedAt)
	if err != nil {
		return fmt.Errorf("unexpected task repository mark processed error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return notification.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (*TaskDB, error) {
	var taskModel TaskDB
	err := row.Scan(
		&taskModel.ID,
		&taskModel.Key,
		&taskModel.Payload,
		&taskModel.Status,
		&taskModel.Error,
		&taskModel.CreatedAt,
		&taskModel.PublishedAt,
		&taskModel.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &taskModel, nil
}
