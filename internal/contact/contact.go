// Package contact relays contact form submissions to the site owner.
package contact

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/resendlabs/resend-go"

	"github.com/Its-donkey/archambeau-site/internal/ui/forms"
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

// ErrNotConfigured is returned by Select when no delivery route is set up.
var ErrNotConfigured = errors.New("contact delivery is not configured")

// Deliverer hands a validated submission to its destination.
type Deliverer interface {
	Deliver(ctx context.Context, sub model.ContactSubmission) error
}

// Settings names the available delivery routes. Resend wins when both are set.
type Settings struct {
	FormspreeID  string
	ResendAPIKey string
	From         string
	To           string
}

// Select builds the deliverer described by s.
func Select(s Settings, client *http.Client) (Deliverer, error) {
	if key := strings.TrimSpace(s.ResendAPIKey); key != "" && strings.TrimSpace(s.To) != "" {
		return NewResendDeliverer(key, s.From, s.To), nil
	}
	if id := strings.TrimSpace(s.FormspreeID); id != "" {
		return &FormspreeDeliverer{Endpoint: "https://formspree.io/f/" + id, Client: client}, nil
	}
	return nil, ErrNotConfigured
}

// FormspreeDeliverer forwards the submission to a Formspree form.
type FormspreeDeliverer struct {
	Endpoint string
	Client   *http.Client
}

// Deliver posts sub to the form endpoint.
func (d *FormspreeDeliverer) Deliver(ctx context.Context, sub model.ContactSubmission) error {
	if err := forms.SubmitContact(ctx, d.Client, d.Endpoint, sub); err != nil {
		return fmt.Errorf("formspree: %w", err)
	}
	return nil
}

// ResendDeliverer emails the submission through Resend.
type ResendDeliverer struct {
	from string
	to   string
	send func(*resend.SendEmailRequest) error
}

// NewResendDeliverer returns a deliverer sending from from to to.
func NewResendDeliverer(apiKey, from, to string) *ResendDeliverer {
	client := resend.NewClient(apiKey)
	return &ResendDeliverer{
		from: defaultFrom(from),
		to:   strings.TrimSpace(to),
		send: func(req *resend.SendEmailRequest) error {
			_, err := client.Emails.Send(req)
			return err
		},
	}
}

func defaultFrom(from string) string {
	if from = strings.TrimSpace(from); from != "" {
		return from
	}
	return "Website Contact <onboarding@resend.dev>"
}

// Deliver sends one email per submission with Reply-To set to the sender.
func (d *ResendDeliverer) Deliver(_ context.Context, sub model.ContactSubmission) error {
	req := &resend.SendEmailRequest{
		From:    d.from,
		To:      []string{d.to},
		Subject: "Website contact: " + sub.Subject,
		Html:    messageHTML(sub),
		Text:    messageText(sub),
		ReplyTo: sub.Email,
	}
	if err := d.send(req); err != nil {
		return fmt.Errorf("failed to send contact email via Resend: %w", err)
	}
	return nil
}

func messageText(sub model.ContactSubmission) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s\n", sub.Name, sub.Email, sub.Subject, sub.Message)
}

func messageHTML(sub model.ContactSubmission) string {
	var b strings.Builder
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(sub.Name) + "<br>")
	b.WriteString("<strong>Email:</strong> " + html.EscapeString(sub.Email) + "<br>")
	b.WriteString("<strong>Subject:</strong> " + html.EscapeString(sub.Subject) + "</p>")
	for _, para := range strings.Split(sub.Message, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(para), "\n", "<br>") + "</p>")
	}
	return b.String()
}
