package service

import (
	"context"
	"fmt"
	"time"

	"luxeroyale/internal/db"
	"luxeroyale/internal/entities"
	apperrors "luxeroyale/internal/errors"

	"github.com/google/uuid"
)

// BookingStore is the slice of the repository the intake flow needs.
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *db.Booking) error
}

// Notifier sends the two booking emails.
type Notifier interface {
	SendOwnerNotification(req entities.BookingRequest) error
	SendCustomerConfirmation(req entities.BookingRequest) error
}

type BookingService struct {
	Store    BookingStore
	Notifier Notifier
}

func NewBookingService(store BookingStore, notifier Notifier) *BookingService {
	return &BookingService{Store: store, Notifier: notifier}
}

// CreateBooking runs the intake flow: validate, persist, notify owner,
// notify customer. Each step short-circuits the rest on failure. The
// persist-then-notify order means a delivery failure surfaces as an error
// even though the booking is already stored; there is no compensation and
// no retry.
func (s *BookingService) CreateBooking(ctx context.Context, req *entities.BookingRequest) error {
	if !req.Validate() {
		return apperrors.ErrMissingFields
	}

	now := time.Now().UTC()
	booking := &db.Booking{
		ID:              uuid.NewString(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		AppointmentDate: req.AppointmentDate,
		ServiceCategory: req.ServiceCategory,
		ServiceName:     req.ServiceName,
		SpecialRequests: req.SpecialRequests,
		BookingTime:     req.BookingTime,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Store.CreateBooking(ctx, booking); err != nil {
		return fmt.Errorf("could not persist booking: %w", err)
	}

	if err := s.Notifier.SendOwnerNotification(*req); err != nil {
		return fmt.Errorf("booking %s stored but owner notification failed: %w", booking.ID, err)
	}
	if err := s.Notifier.SendCustomerConfirmation(*req); err != nil {
		return fmt.Errorf("booking %s stored but customer confirmation failed: %w", booking.ID, err)
	}

	return nil
}
