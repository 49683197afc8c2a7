package utils

import (
	"fmt"
	"log"
	"strings"

	"github.com/wneessen/go-mail"
)

// Mailer sends plain-text notification emails over SMTP. When no SMTP host
// or credentials are configured it logs the message instead of sending, so
// development environments work without a mail server.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string

	HotelName string
}

// Templates understood by Send. They mirror the notification set of the
// booking lifecycle: admin fan-out on create/update, and accept/reject
// notices to the booking's creator.
const (
	TemplateAdminBookingNotification = "room-bookings/admin-notification"
	TemplateAdminUpdateNotification  = "room-bookings/admin-update-notification"
	TemplateBookingAccepted          = "room-bookings/booking-accepted"
	TemplateBookingRejected          = "room-bookings/booking-rejected"
)

func str(data map[string]any, key string) string {
	if v, ok := data[key]; ok && v != nil {
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
	return ""
}

func (m *Mailer) render(template string, data map[string]any) (string, string, error) {
	room := str(data, "room_name")
	name := str(data, "recipient_name")
	checkIn := str(data, "check_in")
	checkOut := str(data, "check_out")
	client := str(data, "client_name")

	switch template {
	case TemplateAdminBookingNotification:
		subject := fmt.Sprintf("New Room Booking: %s - %s", room, m.HotelName)
		body := fmt.Sprintf(
			"Hello %s,\n\n"+
				"A new booking request was submitted by %s for room %s,\n"+
				"from %s to %s.\n\n"+
				"Please review it in the admin dashboard.\n",
			name, client, room, checkIn, checkOut,
		)
		return subject, body, nil

	case TemplateAdminUpdateNotification:
		subject := fmt.Sprintf("Room Booking Updated: %s - %s", room, m.HotelName)
		body := fmt.Sprintf(
			"Hello %s,\n\n"+
				"The booking for room %s (%s to %s) was updated by %s.\n\n"+
				"Current status: %s.\n",
			name, room, checkIn, checkOut, str(data, "updated_by"), str(data, "status"),
		)
		return subject, body, nil

	case TemplateBookingAccepted:
		subject := fmt.Sprintf("Booking Confirmed: %s - %s", room, m.HotelName)
		body := fmt.Sprintf(
			"Dear %s,\n\n"+
				"Good news! Your booking for room %s from %s to %s has been confirmed.\n\n"+
				"We look forward to welcoming you at %s.\n",
			name, room, checkIn, checkOut, m.HotelName,
		)
		return subject, body, nil

	case TemplateBookingRejected:
		subject := fmt.Sprintf("Booking Not Available: %s - %s", room, m.HotelName)
		body := fmt.Sprintf(
			"Dear %s,\n\n"+
				"Unfortunately your booking request for room %s from %s to %s could not\n"+
				"be accommodated. Please try different dates or another room.\n\n"+
				"We apologize for the inconvenience.\n",
			name, room, checkIn, checkOut,
		)
		return subject, body, nil
	}

	return "", "", fmt.Errorf("unknown email template %q", template)
}

// Send renders the named template and delivers it to recipient.
func (m *Mailer) Send(template, recipient string, data map[string]any) error {
	subject, body, err := m.render(template, data)
	if err != nil {
		return err
	}

	if m.Host == "" || m.Username == "" || m.Password == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.FromName, m.Username); err != nil {
		return err
	}
	if err := msg.To(recipient); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(m.Host,
		mail.WithPort(m.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.Username),
		mail.WithPassword(m.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client init failed: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", template, recipient, err)
	}
	return nil
}
