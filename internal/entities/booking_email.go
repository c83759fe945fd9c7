package entities

// BookingEmailData is what the notification templates render. Optional
// fields are pre-substituted so the templates never see an empty token.
type BookingEmailData struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	AppointmentDate string
	ServiceCategory string
	ServiceName     string
	SpecialRequests string
	BookingTime     string
	BusinessName    string
}
