package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fastfeet/internal/entities"

	"github.com/google/uuid"
)

// Queue outbox: задача пишется в транзакции вызывающего и публикуется
// в брокер отдельно, ретранслятором.
type Queue struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
}

func New(repository Repository, publisher Publisher, txManager TxManager) *Queue {
	return &Queue{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// Enqueue не ждёт доставки. Если в ctx есть транзакция, задача попадает в неё.
func (q *Queue) Enqueue(ctx context.Context, key entities.TaskKey, payload any) error {
	if strings.TrimSpace(key.String()) == "" {
		return ErrInvalidTaskKey
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	task := entities.QueuedTask{
		ID:      uuid.NewString(),
		Key:     key,
		Payload: raw,
		Status:  entities.TaskPending,
	}

	if err := q.repository.Create(ctx, task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}

	TasksEnqueuedTotal.WithLabelValues(key.String()).Inc()
	return nil
}

// RelayPending публикует до batch ожидающих задач по порядку и останавливается
// на первой ошибке, чтобы не нарушить порядок внутри ключа. Возвращает
// число опубликованных задач.
func (q *Queue) RelayPending(ctx context.Context, batch int) (int, error) {
	if batch <= 0 {
		return 0, ErrInvalidBatch
	}

	var published []entities.QueuedTask
	var publishErr error

	err := q.txManager.Do(ctx, func(ctx context.Context) error {
		tasks, err := q.repository.FetchPending(ctx, batch)
		if err != nil {
			return fmt.Errorf("fetch pending tasks: %w", err)
		}

		ids := make([]string, 0, len(tasks))
		for _, task := range tasks {
			if err := q.publisher.Publish(ctx, task); err != nil {
				publishErr = fmt.Errorf("publish task %s (%s): %w", task.ID, task.Key, err)
				break
			}
			ids = append(ids, task.ID)
			published = append(published, task)
		}

		if len(ids) == 0 {
			return nil
		}

		if err := q.repository.MarkPublished(ctx, ids, time.Now().UTC()); err != nil {
			return fmt.Errorf("mark tasks published: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, task := range published {
		TasksPublishedTotal.WithLabelValues(task.Key.String()).Inc()
	}

	if publishErr != nil {
		RelayPublishErrorsTotal.Inc()
		return len(published), publishErr
	}
	return len(published), nil
}
