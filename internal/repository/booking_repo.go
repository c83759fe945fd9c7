package repository

import (
	"context"
	"fmt"
	"time"

	"luxeroyale/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookingRepository persists bookings in the "bookings" collection. The
// intake API only ever inserts; ListBookingsCreatedSince exists for the
// daily digest job and is not reachable over HTTP.
type BookingRepository struct {
	Collection *mongo.Collection
}

func NewBookingRepository(database *mongo.Database) *BookingRepository {
	return &BookingRepository{Collection: database.Collection("bookings")}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *db.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.Collection.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) ListBookingsCreatedSince(ctx context.Context, since time.Time) ([]db.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"created_at": bson.M{"$gte": since}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings since %s: %w", since.Format(time.RFC3339), err)
	}
	defer cur.Close(ctx)

	var bookings []db.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
