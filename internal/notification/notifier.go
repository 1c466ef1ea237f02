package notification

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"salon-booking/internal/data/entity"

	"go.uber.org/zap"
)

// BookingEmail is everything a booking email mentions.
type BookingEmail struct {
	Booking *entity.Booking
	Service *entity.Service
	Staff   *entity.Staff
}

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, msg BookingEmail) error
	SendBookingUpdate(ctx context.Context, msg BookingEmail) error
	SendTest(ctx context.Context, to string) error
}

type emailNotifier struct {
	sender   Sender
	business string
	log      *zap.Logger
}

func NewEmailNotifier(sender Sender, businessName string, log *zap.Logger) Notifier {
	return &emailNotifier{
		sender:   sender,
		business: businessName,
		log:      log.With(zap.String("notifier", "email")),
	}
}

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(
		`Hi {{.Booking.CustomerName}},

Your appointment request has been received.

Service: {{.ServiceName}}
Stylist: {{.StaffName}}
Date:    {{.Date}}
Time:    {{.Booking.Time}}
Price:   ${{printf "%.2f" .Booking.TotalPrice}}
Status:  {{.Booking.Status}}
{{if .Booking.Notes}}Notes:   {{.Booking.Notes}}
{{end}}
Booking reference: {{.Booking.ID}}

See you soon,
{{.Business}}
`))

	updateTmpl = template.Must(template.New("update").Parse(
		`Hi {{.Booking.CustomerName}},

{{if eq .Status "confirmed"}}Your appointment is confirmed.{{else if eq .Status "cancelled"}}Your appointment has been cancelled.{{else}}Your appointment has been updated.{{end}}

Service: {{.ServiceName}}
Stylist: {{.StaffName}}
Date:    {{.Date}}
Time:    {{.Booking.Time}}
Status:  {{.Booking.Status}}

Booking reference: {{.Booking.ID}}

{{.Business}}
`))
)

type templateData struct {
	BookingEmail
	ServiceName string
	StaffName   string
	Date        string
	Status      string
	Business    string
}

func (n *emailNotifier) data(msg BookingEmail) templateData {
	d := templateData{
		BookingEmail: msg,
		ServiceName:  msg.Booking.ServiceName,
		StaffName:    msg.Booking.StaffName,
		Date:         msg.Booking.Date.Format("Monday, January 2, 2006"),
		Status:       string(msg.Booking.Status),
		Business:     n.business,
	}
	if msg.Service != nil {
		d.ServiceName = msg.Service.Name
	}
	if msg.Staff != nil {
		d.StaffName = msg.Staff.Name
	}
	return d
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func (n *emailNotifier) SendBookingConfirmation(ctx context.Context, msg BookingEmail) error {
	body, err := render(confirmationTmpl, n.data(msg))
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Booking received - %s", n.data(msg).ServiceName)
	if err := n.sender.Send(ctx, msg.Booking.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("send confirmation for booking %s: %w", msg.Booking.ID, err)
	}

	n.log.Info("Confirmation email sent", zap.String("booking_id", msg.Booking.ID.String()))
	return nil
}

func (n *emailNotifier) SendBookingUpdate(ctx context.Context, msg BookingEmail) error {
	body, err := render(updateTmpl, n.data(msg))
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Booking %s - %s", msg.Booking.Status, n.data(msg).ServiceName)
	if err := n.sender.Send(ctx, msg.Booking.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("send update for booking %s: %w", msg.Booking.ID, err)
	}

	n.log.Info("Update email sent",
		zap.String("booking_id", msg.Booking.ID.String()),
		zap.String("status", string(msg.Booking.Status)),
	)
	return nil
}

func (n *emailNotifier) SendTest(ctx context.Context, to string) error {
	body := fmt.Sprintf("This is a test email from %s.\n", n.business)
	if err := n.sender.Send(ctx, to, "Test email", body); err != nil {
		return fmt.Errorf("send test email: %w", err)
	}
	return nil
}
