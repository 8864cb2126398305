package mail

import (
	"bytes"
	"fmt"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"github.com/driveease/rental-service/internal/config"
)

const confirmationSubject = "Your DriveEase Booking is Confirmed!"

// confirmationTemplate mirrors the booking-confirmation page customers see
// on the frontend.
const confirmationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
	<h2>Booking Confirmed</h2>
	<p>Hi {{.CustomerName}},</p>
	<p>Your rental is confirmed. Here are the details:</p>
	<table cellpadding="6">
		<tr><td><b>Vehicle</b></td><td>{{.Vehicle}}</td></tr>
		<tr><td><b>Pickup date</b></td><td>{{.PickupDate}}</td></tr>
		<tr><td><b>Total price</b></td><td>{{.Price}}</td></tr>
	</table>
	<p>Thank you for choosing DriveEase.</p>
</body>
</html>`

var confirmationBody = template.Must(template.New("booking-confirmation").Parse(confirmationTemplate))

// Mailer sends booking confirmations over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *Mailer) SendBookingConfirmation(toEmail, customerName, vehicle, pickupDate, price string) error {
	var body bytes.Buffer
	err := confirmationBody.Execute(&body, struct {
		CustomerName string
		Vehicle      string
		PickupDate   string
		Price        string
	}{
		CustomerName: customerName,
		Vehicle:      vehicle,
		PickupDate:   pickupDate,
		Price:        price,
	})
	if err != nil {
		return fmt.Errorf("render confirmation mail: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", confirmationSubject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}
