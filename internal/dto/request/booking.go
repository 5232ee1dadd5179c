package request

type FlightSearchRequest struct {
	Origin        string `json:"origin" validate:"required"`
	Destination   string `json:"destination" validate:"required"`
	DepartureDate string `json:"departure_date" validate:"required,mdydate"`
	Adults        int    `json:"adults" validate:"min=0,max=9"`
	Children      int    `json:"children" validate:"min=0,max=9"`
	Infants       int    `json:"infants" validate:"min=0,max=9"`
	FlexDays      *int   `json:"flex_days,omitempty" validate:"omitempty,min=0,max=7"`
}

type HotelSearchRequest struct {
	City         string `json:"city" validate:"required"`
	CheckInDate  string `json:"check_in_date,omitempty" validate:"omitempty,mdydate"`
	CheckOutDate string `json:"check_out_date,omitempty" validate:"omitempty,mdydate"`
	Adults       int    `json:"adults" validate:"min=0"`
	Children     int    `json:"children" validate:"min=0"`
	Infants      int    `json:"infants" validate:"min=0"`
}

// TravellerRequest describes one flight passenger or hotel guest.
type TravellerRequest struct {
	SSN         string `json:"ssn" validate:"required,ssn"`
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"required,mdydate"`
	Category    string `json:"category" validate:"required,oneof=adult child infant"`
}

type BookFlightRequest struct {
	FlightID   string             `json:"flight_id" validate:"required,max=20"`
	Passengers []TravellerRequest `json:"passengers" validate:"required,min=1,max=20,dive"`
	TotalPrice float64            `json:"total_price" validate:"min=0"`
}

type BookHotelRequest struct {
	HotelID       string             `json:"hotel_id" validate:"required,max=20"`
	CheckInDate   string             `json:"check_in_date" validate:"required,mdydate"`
	CheckOutDate  string             `json:"check_out_date" validate:"required,mdydate"`
	NumRooms      int                `json:"num_rooms" validate:"required,min=1"`
	PricePerNight float64            `json:"price_per_night" validate:"min=0"`
	TotalPrice    float64            `json:"total_price" validate:"min=0"`
	Guests        []TravellerRequest `json:"guests" validate:"required,min=1,dive"`
}

type ContactRequest struct {
	Comment string `json:"comment" validate:"required"`
}
