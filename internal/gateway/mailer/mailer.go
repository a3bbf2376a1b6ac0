package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"parcelservice/internal/entities"
)

// Mailer sends the owner-facing notification emails over SMTP.
type Mailer struct {
	client *mail.Client
	sender string
}

func New(host string, port int, username, password, sender string) (*Mailer, error) {
	client, err := mail.NewClient(
		host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &Mailer{
		client: client,
		sender: sender,
	}, nil
}

// SendParcelEvent renders and sends the email matching the event type.
func (m *Mailer) SendParcelEvent(ctx context.Context, event entities.ParcelEvent) error {
	subject, body := composeEmail(event)

	msg := mail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(event.OwnerEmail); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func composeEmail(event entities.ParcelEvent) (subject, body string) {
	switch event.Type {
	case entities.EventParcelBooked:
		subject = fmt.Sprintf("Parcel #%d booked", event.ParcelID)
		body = fmt.Sprintf(
			"Your parcel #%d from %q to %q has been booked and is awaiting assignment.\n",
			event.ParcelID, event.PickupAddress, event.DeliveryAddress,
		)
	default:
		subject = fmt.Sprintf("Parcel #%d is now %s", event.ParcelID, event.Status)
		body = fmt.Sprintf(
			"Your parcel #%d from %q to %q changed status to %s.\n",
			event.ParcelID, event.PickupAddress, event.DeliveryAddress, event.Status,
		)
	}
	return subject, body
}
