package mail

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"fastfeet/internal/entities"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type Template string

const (
	TemplateNewOrder     Template = "neworder"
	TemplateCancellation Template = "cancellation"
)

// Context данные, доступные шаблонам писем.
type Context struct {
	OrderID   int64
	Product   string
	Deliverer string
	Name      string
	Street    string
	Number    string
	Compl     string
	City      string
	State     string
	Zipcode   string
}

func NewContext(payload entities.NotificationPayload) Context {
	return Context{
		OrderID:   payload.OrderID,
		Product:   payload.Product,
		Deliverer: payload.Deliverer.Name,
		Name:      payload.Recipient.Name,
		Street:    payload.Recipient.Street,
		Number:    payload.Recipient.Number,
		Compl:     payload.Recipient.Compl,
		City:      payload.Recipient.City,
		State:     payload.Recipient.State,
		Zipcode:   payload.Recipient.Zipcode,
	}
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.New("mail").
		Option("missingkey=error").
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(name Template, data Context) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(name)+".tmpl", data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
