package entities

// BookingRequest is the JSON body POSTed by the booking form.
type BookingRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	AppointmentDate string `json:"appointment_date"`
	ServiceCategory string `json:"service_category"`
	ServiceName     string `json:"service_name"`
	SpecialRequests string `json:"special_requests"`
	BookingTime     string `json:"booking_time"`
}

// Validate checks the required fields. Nothing beyond presence is checked:
// the email is not verified as an address and the date is stored exactly as
// submitted.
func (r BookingRequest) Validate() bool {
	return r.CustomerName != "" && r.CustomerEmail != "" && r.AppointmentDate != ""
}
