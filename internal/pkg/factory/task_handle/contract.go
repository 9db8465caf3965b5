//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=task_handle_test
package task_handle

import (
	"context"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/mail"
)

type Mailer interface {
	Send(ctx context.Context, message entities.MailMessage) error
}

type Renderer interface {
	Render(name mail.Template, data mail.Context) (string, error)
}
