package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fastfeet/internal/entities"

	"github.com/IBM/sarama"
)

const HeaderTaskID = "task-id"

var ErrBadMessage = errors.New("bad task message")

// TaskMessage значение сообщения в топике уведомлений.
type TaskMessage struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewTaskMessage(task entities.QueuedTask) TaskMessage {
	return TaskMessage{
		ID:        task.ID,
		Key:       task.Key.String(),
		Payload:   task.Payload,
		CreatedAt: task.CreatedAt,
	}
}

// DecodeTaskMessage id берётся из тела, заголовок task-id нужен только для сверки.
func DecodeTaskMessage(message *sarama.ConsumerMessage) (entities.QueuedTask, error) {
	var msg TaskMessage
	if err := json.Unmarshal(message.Value, &msg); err != nil {
		return entities.QueuedTask{}, fmt.Errorf("%w: %w", ErrBadMessage, err)
	}

	if msg.ID == "" || msg.Key == "" {
		return entities.QueuedTask{}, fmt.Errorf("%w: id and key are required", ErrBadMessage)
	}

	for _, header := range message.Headers {
		if header != nil && string(header.Key) == HeaderTaskID && string(header.Value) != msg.ID {
			return entities.QueuedTask{}, fmt.Errorf("%w: header %s=%s does not match id %s",
				ErrBadMessage, HeaderTaskID, header.Value, msg.ID)
		}
	}

	return entities.QueuedTask{
		ID:        msg.ID,
		Key:       entities.TaskKey(msg.Key),
		Payload:   msg.Payload,
		Status:    entities.TaskPublished,
		CreatedAt: msg.CreatedAt,
	}, nil
}
