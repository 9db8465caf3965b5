package mail

import (
	"context"
	"fmt"

	"fastfeet/internal/entities"
	"fastfeet/internal/pkg/config"

	gomail "github.com/wneessen/go-mail"
)

type Client struct {
	client *gomail.Client
	from   string
}

// NewClient соединение не открывает: SMTP-сессия создаётся на каждую отправку.
func NewClient(cfg *config.Mail) (*Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.TLS {
		opts = append(opts, gomail.WithSSL())
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Client{
		client: client,
		from:   cfg.From,
	}, nil
}

func (c *Client) Send(ctx context.Context, message entities.MailMessage) error {
	msg, err := c.newMsg(message)
	if err != nil {
		return err
	}

	if err := c.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %q: %w", message.ToEmail, err)
	}
	return nil
}

func (c *Client) newMsg(message entities.MailMessage) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return nil, fmt.Errorf("set sender %q: %w", c.from, err)
	}
	if err := msg.AddToFormat(message.ToName, message.ToEmail); err != nil {
		return nil, fmt.Errorf("set recipient %q: %w", message.ToEmail, err)
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)

	return msg, nil
}
