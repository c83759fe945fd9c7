package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"luxeroyale/internal/db"
)

// DigestStore is the read slice of the repository the digest job needs.
type DigestStore interface {
	ListBookingsCreatedSince(ctx context.Context, since time.Time) ([]db.Booking, error)
}

// DigestService emails the owner a summary of the bookings received in the
// last 24 hours. It runs on the cron schedule wired in main; a failed run
// is logged and retried at the next tick, nothing more.
type DigestService struct {
	Store      DigestStore
	Sender     Sender
	fromAddr   string
	senderName string
	ownerEmail string
	tmpl       *template.Template
}

func NewDigestService(store DigestStore, sender Sender, fromAddr, senderName, ownerEmail string) *DigestService {
	return &DigestService{
		Store:      store,
		Sender:     sender,
		fromAddr:   fromAddr,
		senderName: senderName,
		ownerEmail: ownerEmail,
		tmpl:       template.Must(template.ParseFS(templateFS, "templates/digest_email.html")),
	}
}

func (s *DigestService) SendDailySummary(ctx context.Context) error {
	since := time.Now().UTC().Add(-24 * time.Hour)
	bookings, err := s.Store.ListBookingsCreatedSince(ctx, since)
	if err != nil {
		return fmt.Errorf("daily summary: failed to list bookings: %w", err)
	}
	if len(bookings) == 0 {
		log.Println("Daily summary: no bookings in the last 24 hours, skipping email")
		return nil
	}

	var buf bytes.Buffer
	data := struct{ Bookings []db.Booking }{Bookings: bookings}
	if err := s.tmpl.ExecuteTemplate(&buf, "digest_email.html", data); err != nil {
		return fmt.Errorf("daily summary: error executing template: %w", err)
	}

	subject := fmt.Sprintf("Daily Booking Summary - %s", time.Now().UTC().Format("02 Jan 2006"))
	if err := s.Sender.Send(s.senderName, s.fromAddr, s.ownerEmail, subject, buf.String()); err != nil {
		return fmt.Errorf("daily summary to %s: %w", s.ownerEmail, err)
	}

	log.Printf("Daily summary: sent %d booking(s) to %s", len(bookings), s.ownerEmail)
	return nil
}
