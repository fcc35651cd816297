package sendgrid

import (
	"context"
	"fmt"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a single transactional e-mail. Dir is "rtl" for Arabic bodies
// and wraps the HTML part accordingly.
type Message struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
	Dir     string
}

type EmailService interface {
	Send(ctx context.Context, msg *Message) error
	GetSendGridClient() *sg.Client
}

type emailService struct {
	client    *sg.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string) EmailService {
	return &emailService{client: sg.NewSendClient(apiKey), fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) Send(ctx context.Context, msg *Message) error {

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(msg.ToName, msg.To))
	personalization.Subject = msg.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", msg.Text))

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}

	if msg.Dir != "" {
		html = fmt.Sprintf(`<div dir="%s">%s</div>`, msg.Dir, html)
	}

	message.AddContent(mail.NewContent("text/html", html))

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}

// GetSendGridClient exposes the client so tests can point it at a fake API.
func (e *emailService) GetSendGridClient() *sg.Client {
	return e.client
}
