package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/entities"
	"fastfeet/pkg/logger"
)

type Service struct {
	log        handlerLogger
	repository TaskRepository
	factory    HandlerFactory
	now        func() time.Time
}

func New(log handlerLogger, repository TaskRepository, factory HandlerFactory) *Service {
	return &Service{
		log:        log,
		repository: repository,
		factory:    factory,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// ProcessTask выполняет задачу и записывает результат в outbox-таблицу.
// Ошибка рассылки не возвращается: задача получает статус failed.
// Истёкший таймаут обработки тоже даёт failed, даже если задачу не успели прочитать.
// Ошибка возвращается, только если обработку прервали (context.Canceled)
// или результат не удалось сохранить; тогда сообщение будет доставлено повторно.
func (s *Service) ProcessTask(ctx context.Context, task entities.QueuedTask) (*entities.QueuedTask, error) {
	stored, err := s.repository.GetByID(ctx, task.ID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return s.record(ctx, task, fmt.Errorf("get task: %w", err))
		}
		return nil, fmt.Errorf("get task %s: %w", task.ID, err)
	}

	// повторная доставка сообщения
	if stored.Status == entities.TaskDone || stored.Status == entities.TaskFailed {
		TasksProcessedTotal.WithLabelValues(stored.Key.String(), resultSkipped).Inc()
		return stored, nil
	}

	execErr := s.execute(ctx, *stored)
	if errors.Is(execErr, context.Canceled) {
		return nil, fmt.Errorf("process task %s: %w", stored.ID, execErr)
	}

	return s.record(ctx, *stored, execErr)
}

func (s *Service) record(ctx context.Context, task entities.QueuedTask, execErr error) (*entities.QueuedTask, error) {
	status := entities.TaskDone
	var reason *string
	if execErr != nil {
		status = entities.TaskFailed
		msg := execErr.Error()
		reason = &msg
		s.onFailure(task, execErr)
	}

	processedAt := s.now()
	// таймаут обработки не должен мешать записи результата
	if err := s.repository.MarkProcessed(context.WithoutCancel(ctx), task.ID, status, reason, processedAt); err != nil {
		return nil, fmt.Errorf("mark task %s %s: %w", task.ID, status, err)
	}

	TasksProcessedTotal.WithLabelValues(task.Key.String(), status.String()).Inc()

	task.Status = status
	task.Error = reason
	task.ProcessedAt = &processedAt
	return &task, nil
}

func (s *Service) execute(ctx context.Context, task entities.QueuedTask) error {
	executeFn, err := s.factory.GetHandler(task.Key)
	if err != nil {
		return err
	}

	var payload entities.NotificationPayload
	if err := json.Unmarshal(task.Payload, &payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if err := executeFn(ctx, payload); err != nil {
		return fmt.Errorf("execute %s: %w", task.Key, err)
	}
	return nil
}

func (s *Service) onFailure(task entities.QueuedTask, err error) {
	s.log.Error("queue task failed",
		logger.NewField("task", task.Key.String()),
		logger.NewField("task_id", task.ID),
		logger.NewField("error", err),
	)
}
