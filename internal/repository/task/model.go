package task

import (
	"encoding/json"
	"time"

	"fastfeet/internal/entities"
)

type TaskDB struct {
	ID          string
	Key         string
	Payload     json.RawMessage
	Status      string
	Error       *string
	CreatedAt   time.Time
	PublishedAt *time.Time
	ProcessedAt *time.Time
}

func ToDomain(t *TaskDB) *entities.QueuedTask {
	if t == nil {
		return nil
	}

	return &entities.QueuedTask{
		ID:          t.ID,
		Key:         entities.TaskKey(t.Key),
		Payload:     t.Payload,
		Status:      entities.TaskStatus(t.Status),
		Error:       t.Error,
		CreatedAt:   t.CreatedAt,
		PublishedAt: t.PublishedAt,
		ProcessedAt: t.ProcessedAt,
	}
}
