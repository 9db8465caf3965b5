package task_handle

import (
	"context"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/mail"
	"fastfeet/internal/service/notification"
)

const (
	subjectNewOrder     = "Nova encomenda disponível para retirada"
	subjectCancellation = "Encomenda cancelada"
)

type TaskHandlerFactory struct {
	mailer   Mailer
	renderer Renderer
}

func NewTaskHandlerFactory(mailer Mailer, renderer Renderer) *TaskHandlerFactory {
	return &TaskHandlerFactory{
		mailer:   mailer,
		renderer: renderer,
	}
}

func (f *TaskHandlerFactory) GetHandler(key entities.TaskKey) (notification.ExecuteFn, error) {
	switch key {
	case entities.TaskNewOrderMail:
		return f.newOrderHandler, nil
	case entities.TaskCancellationMail:
		return f.cancellationHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", notification.ErrUndefinedTask, key)
	}
}

func (f *TaskHandlerFactory) newOrderHandler(ctx context.Context, payload entities.NotificationPayload) error {
	if err := f.send(ctx, payload, mail.TemplateNewOrder, subjectNewOrder); err != nil {
		return fmt.Errorf("new order mail for order %d: %w", payload.OrderID, err)
	}
	return nil
}

func (f *TaskHandlerFactory) cancellationHandler(ctx context.Context, payload entities.NotificationPayload) error {
	if err := f.send(ctx, payload, mail.TemplateCancellation, subjectCancellation); err != nil {
		return fmt.Errorf("cancellation mail for order %d: %w", payload.OrderID, err)
	}
	return nil
}

func (f *TaskHandlerFactory) send(ctx context.Context, payload entities.NotificationPayload, tmpl mail.Template, subject string) error {
	body, err := f.renderer.Render(tmpl, mail.NewContext(payload))
	if err != nil {
		return err
	}

	return f.mailer.Send(ctx, entities.MailMessage{
		ToName:  payload.Deliverer.Name,
		ToEmail: payload.Deliverer.Email,
		Subject: subject,
		Body:    body,
	})
}
