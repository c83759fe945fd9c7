package service

import (
	"context"
	"errors"
	"testing"

	"luxeroyale/internal/db"
	"luxeroyale/internal/entities"
	apperrors "luxeroyale/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	bookings []*db.Booking
	err      error
}

func (f *fakeStore) CreateBooking(ctx context.Context, booking *db.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

type fakeNotifier struct {
	ownerErr    error
	customerErr error
	owner       []entities.BookingRequest
	customer    []entities.BookingRequest
}

func (f *fakeNotifier) SendOwnerNotification(req entities.BookingRequest) error {
	if f.ownerErr != nil {
		return f.ownerErr
	}
	f.owner = append(f.owner, req)
	return nil
}

func (f *fakeNotifier) SendCustomerConfirmation(req entities.BookingRequest) error {
	if f.customerErr != nil {
		return f.customerErr
	}
	f.customer = append(f.customer, req)
	return nil
}

func validRequest() entities.BookingRequest {
	return entities.BookingRequest{
		CustomerName:    "Ana",
		CustomerEmail:   "ana@x.com",
		AppointmentDate: "2024-05-01",
		ServiceName:     "Spa",
		ServiceCategory: "Wellness",
		BookingTime:     "2024-04-20T10:00:00Z",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	req := validRequest()
	err := svc.CreateBooking(context.Background(), &req)
	require.NoError(t, err)

	require.Len(t, store.bookings, 1)
	stored := store.bookings[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "Ana", stored.CustomerName)
	assert.Equal(t, "ana@x.com", stored.CustomerEmail)
	assert.Equal(t, "2024-05-01", stored.AppointmentDate)
	assert.Equal(t, "Spa", stored.ServiceName)
	assert.Equal(t, "Wellness", stored.ServiceCategory)
	assert.Equal(t, "2024-04-20T10:00:00Z", stored.BookingTime)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())

	assert.Len(t, notifier.owner, 1)
	assert.Len(t, notifier.customer, 1)
}

func TestCreateBookingMissingFields(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	req := validRequest()
	req.CustomerEmail = ""

	err := svc.CreateBooking(context.Background(), &req)
	var httpErr *apperrors.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "Missing required fields", httpErr.Message)

	// nothing persisted, nothing sent
	assert.Empty(t, store.bookings)
	assert.Empty(t, notifier.owner)
	assert.Empty(t, notifier.customer)
}

func TestCreateBookingStorageFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection reset")}
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	req := validRequest()
	err := svc.CreateBooking(context.Background(), &req)
	require.Error(t, err)

	// no email goes out when the write failed
	assert.Empty(t, notifier.owner)
	assert.Empty(t, notifier.customer)
}

func TestCreateBookingOwnerNotificationFailure(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{ownerErr: errors.New("smtp unreachable")}
	svc := NewBookingService(store, notifier)

	req := validRequest()
	err := svc.CreateBooking(context.Background(), &req)
	require.Error(t, err)

	// persist-then-notify: the booking exists even though the request failed
	assert.Len(t, store.bookings, 1)
	assert.Empty(t, notifier.customer)
}

func TestCreateBookingCustomerConfirmationFailure(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{customerErr: errors.New("smtp unreachable")}
	svc := NewBookingService(store, notifier)

	req := validRequest()
	err := svc.CreateBooking(context.Background(), &req)
	require.Error(t, err)

	assert.Len(t, store.bookings, 1)
	assert.Len(t, notifier.owner, 1)
}

func TestCreateBookingNoDeduplication(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewBookingService(store, notifier)

	req := validRequest()
	require.NoError(t, svc.CreateBooking(context.Background(), &req))
	req2 := validRequest()
	require.NoError(t, svc.CreateBooking(context.Background(), &req2))

	require.Len(t, store.bookings, 2)
	assert.NotEqual(t, store.bookings[0].ID, store.bookings[1].ID)
}
