package entities

import (
	"encoding/json"
	"time"
)

type TaskKey string

const (
	TaskNewOrderMail     TaskKey = "NewOrderMail"
	TaskCancellationMail TaskKey = "CancellationMail"
)

func (k TaskKey) String() string {
	return string(k)
}

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskPublished TaskStatus = "published"
	TaskDone      TaskStatus = "done"
	TaskFailed    TaskStatus = "failed"
)

func (s TaskStatus) String() string {
	return string(s)
}

// QueuedTask запись outbox-таблицы.
type QueuedTask struct {
	ID          string
	Key         TaskKey
	Payload     json.RawMessage
	Status      TaskStatus
	Error       *string
	CreatedAt   time.Time
	PublishedAt *time.Time
	ProcessedAt *time.Time
}

// NotificationPayload снимок данных курьера и получателя на момент постановки задачи.
type NotificationPayload struct {
	OrderID   int64             `json:"order_id"`
	Product   string            `json:"product"`
	Deliverer DelivererSnapshot `json:"deliverer"`
	Recipient RecipientSnapshot `json:"recipient"`
}

type DelivererSnapshot struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RecipientSnapshot struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	Number  string `json:"number"`
	Compl   string `json:"compl"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zipcode string `json:"zipcode"`
}

func NewNotificationPayload(order Order, courier Courier, recipient Recipient) NotificationPayload {
	return NotificationPayload{
		OrderID: order.ID,
		Product: order.Product,
		Deliverer: DelivererSnapshot{
			Name:  courier.Name,
			Email: courier.Email,
		},
		Recipient: RecipientSnapshot{
			Name:    recipient.Name,
			Street:  recipient.Street,
			Number:  recipient.Number,
			Compl:   recipient.Compl,
			City:    recipient.City,
			State:   recipient.State,
			Zipcode: recipient.Zipcode,
		},
	}
}

// MailMessage готовое к отправке письмо.
// Имя и адрес получателя хранятся раздельно: имя может содержать запятые.
type MailMessage struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}
