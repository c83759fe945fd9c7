package db

import "time"

// Booking is the stored document. Dates and times submitted by the customer
// are kept as the strings they sent; only created_at/updated_at are
// system-assigned.
type Booking struct {
	ID              string    `bson:"_id" json:"id"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	AppointmentDate string    `bson:"appointment_date" json:"appointment_date"`
	ServiceCategory string    `bson:"service_category,omitempty" json:"service_category,omitempty"`
	ServiceName     string    `bson:"service_name,omitempty" json:"service_name,omitempty"`
	SpecialRequests string    `bson:"special_requests,omitempty" json:"special_requests,omitempty"`
	BookingTime     string    `bson:"booking_time,omitempty" json:"booking_time,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
