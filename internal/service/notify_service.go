package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"

	"luxeroyale/internal/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sender dispatches one email. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(fromName, fromAddr, to, subject, htmlBody string) error
}

// SMSSender dispatches one text message.
type SMSSender interface {
	SendSMS(to, body string) error
}

// NotifyService renders and sends the owner notification and the customer
// confirmation for a booking. Field values are interpolated through
// html/template, so customer-supplied text is escaped in the bodies.
type NotifyService struct {
	// SMS is optional. When set, customers with a phone number also get a
	// short confirmation text; an SMS failure is logged but never fails
	// the booking.
	SMS SMSSender

	sender     Sender
	fromAddr   string
	senderName string
	ownerEmail string
	templates  *template.Template
}

func NewNotifyService(sender Sender, fromAddr, senderName, ownerEmail string) *NotifyService {
	return &NotifyService{
		sender:     sender,
		fromAddr:   fromAddr,
		senderName: senderName,
		ownerEmail: ownerEmail,
		templates:  template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (s *NotifyService) SendOwnerNotification(req entities.BookingRequest) error {
	body, err := s.render("owner_email.html", s.emailData(req))
	if err != nil {
		return err
	}
	if err := s.sender.Send(s.senderName, s.fromAddr, s.ownerEmail, "New Booking Received", body); err != nil {
		return fmt.Errorf("owner notification to %s: %w", s.ownerEmail, err)
	}
	return nil
}

func (s *NotifyService) SendCustomerConfirmation(req entities.BookingRequest) error {
	body, err := s.render("customer_email.html", s.emailData(req))
	if err != nil {
		return err
	}
	subject := "Booking Confirmation - " + s.senderName
	if err := s.sender.Send(s.senderName, s.fromAddr, req.CustomerEmail, subject, body); err != nil {
		return fmt.Errorf("customer confirmation to %s: %w", req.CustomerEmail, err)
	}

	if s.SMS != nil && req.CustomerPhone != "" {
		msg := fmt.Sprintf("%s: your booking for %s on %s has been received. Details in your email.",
			s.senderName, req.ServiceName, req.AppointmentDate)
		if err := s.SMS.SendSMS(req.CustomerPhone, msg); err != nil {
			log.Printf("Booking confirmed but SMS to %s failed: %v", req.CustomerPhone, err)
		}
	}
	return nil
}

func (s *NotifyService) emailData(req entities.BookingRequest) entities.BookingEmailData {
	specialRequests := req.SpecialRequests
	if specialRequests == "" {
		specialRequests = "—"
	}
	return entities.BookingEmailData{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		ServiceCategory: req.ServiceCategory,
		ServiceName:     req.ServiceName,
		SpecialRequests: specialRequests,
		BookingTime:     req.BookingTime,
		BusinessName:    s.senderName,
	}
}

func (s *NotifyService) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("error executing email template %s: %w", name, err)
	}
	return buf.String(), nil
}
