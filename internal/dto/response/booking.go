package response

import (
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

type PriceQuote struct {
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Infants  int     `json:"infants"`
	Total    float64 `json:"total"`
}

type FlightResponse struct {
	FlightID       string      `json:"flight_id"`
	Origin         string      `json:"origin"`
	Destination    string      `json:"destination"`
	DepartureDate  string      `json:"departure_date"`
	ArrivalDate    string      `json:"arrival_date"`
	DepartureTime  string      `json:"departure_time"`
	ArrivalTime    string      `json:"arrival_time"`
	AvailableSeats int         `json:"available_seats"`
	Price          float64     `json:"price"`
	Quote          *PriceQuote `json:"quote,omitempty"`
}

type HotelQuote struct {
	Rooms  int     `json:"rooms"`
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

type HotelResponse struct {
	HotelID        string      `json:"hotel_id"`
	HotelName      string      `json:"hotel_name"`
	City           string      `json:"city"`
	PricePerNight  float64     `json:"price_per_night"`
	AvailableRooms *int        `json:"available_rooms,omitempty"`
	AvailableDate  string      `json:"available_date,omitempty"`
	Quote          *HotelQuote `json:"quote,omitempty"`
}

type TicketResponse struct {
	TicketID    string  `json:"ticket_id"`
	SSN         string  `json:"ssn"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DateOfBirth string  `json:"date_of_birth"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

type FlightBookingResponse struct {
	BookingID  string           `json:"booking_id"`
	FlightID   string           `json:"flight_id"`
	TotalPrice float64          `json:"total_price"`
	Tickets    []TicketResponse `json:"tickets"`
}

type HotelBookingResponse struct {
	BookingID     string  `json:"booking_id"`
	HotelID       string  `json:"hotel_id"`
	CheckInDate   string  `json:"check_in_date"`
	CheckOutDate  string  `json:"check_out_date"`
	Nights        int     `json:"nights"`
	NumRooms      int     `json:"num_rooms"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
	Guests        int     `json:"guests"`
}

type FlightBookingSummaryResponse struct {
	BookingID     string    `json:"booking_id"`
	FlightID      string    `json:"flight_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	DepartureTime string    `json:"departure_time"`
	ArrivalDate   string    `json:"arrival_date"`
	ArrivalTime   string    `json:"arrival_time"`
	Passengers    int       `json:"passengers"`
	TotalPrice    float64   `json:"total_price"`
	BookingDate   time.Time `json:"booking_date"`
	TicketID      string    `json:"ticket_id,omitempty"`
}

type HotelBookingSummaryResponse struct {
	BookingID     string    `json:"booking_id"`
	HotelID       string    `json:"hotel_id"`
	HotelName     string    `json:"hotel_name"`
	City          string    `json:"city"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  string    `json:"check_out_date"`
	NumRooms      int       `json:"num_rooms"`
	Guests        int       `json:"guests"`
	PricePerNight float64   `json:"price_per_night"`
	TotalPrice    float64   `json:"total_price"`
	BookingDate   time.Time `json:"booking_date"`
}

type AccountBookingsResponse struct {
	Flights []FlightBookingSummaryResponse `json:"flights"`
	Hotels  []HotelBookingSummaryResponse  `json:"hotels"`
}

type ActivityResponse struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	ReferenceID string    `json:"reference_id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	TotalPrice  float64   `json:"total_price"`
	BookingDate time.Time `json:"booking_date"`
}

type ContactResponse struct {
	ContactID   string    `json:"contact_id"`
	Phone       string    `json:"phone"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth string    `json:"date_of_birth"`
	Email       string    `json:"email"`
	Gender      *string   `json:"gender,omitempty"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

type LoadResponse struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

// Helper converters
func FlightToResponse(f *entity.Flight) FlightResponse {
	return FlightResponse{
		FlightID:       f.FlightID,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureDate:  utils.FormatWireDate(f.DepartureDate),
		ArrivalDate:    utils.FormatWireDate(f.ArrivalDate),
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		AvailableSeats: f.AvailableSeats,
		Price:          f.Price,
	}
}

func HotelToResponse(h *entity.Hotel) HotelResponse {
	resp := HotelResponse{
		HotelID:        h.HotelID,
		HotelName:      h.HotelName,
		City:           h.City,
		PricePerNight:  h.PricePerNight,
		AvailableRooms: h.AvailableRooms,
	}
	if h.AvailableDate != nil {
		resp.AvailableDate = utils.FormatWireDate(*h.AvailableDate)
	}
	return resp
}

func TicketToResponse(t *entity.TicketDetail) TicketResponse {
	return TicketResponse{
		TicketID:    t.TicketID,
		SSN:         t.Ticket.SSN,
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		DateOfBirth: utils.FormatWireDate(t.DateOfBirth),
		Category:    string(t.Category),
		Price:       t.Price,
	}
}

func FlightSummaryToResponse(s *entity.FlightBookingSummary) FlightBookingSummaryResponse {
	return FlightBookingSummaryResponse{
		BookingID:     s.FlightBookingID,
		FlightID:      s.FlightID,
		Origin:        s.Origin,
		Destination:   s.Destination,
		DepartureDate: utils.FormatWireDate(s.DepartureDate),
		DepartureTime: s.DepartureTime,
		ArrivalDate:   utils.FormatWireDate(s.ArrivalDate),
		ArrivalTime:   s.ArrivalTime,
		Passengers:    s.Passengers,
		TotalPrice:    s.TotalPrice,
		BookingDate:   s.BookingDate,
	}
}

func HotelSummaryToResponse(s *entity.HotelBookingSummary) HotelBookingSummaryResponse {
	return HotelBookingSummaryResponse{
		BookingID:     s.HotelBookingID,
		HotelID:       s.HotelID,
		HotelName:     s.HotelName,
		City:          s.City,
		CheckInDate:   utils.FormatWireDate(s.CheckInDate),
		CheckOutDate:  utils.FormatWireDate(s.CheckOutDate),
		NumRooms:      s.NumRooms,
		Guests:        s.Guests,
		PricePerNight: s.PricePerNight,
		TotalPrice:    s.TotalPrice,
		BookingDate:   s.BookingDate,
	}
}

func ActivityToResponse(a *entity.BookingActivity) ActivityResponse {
	return ActivityResponse{
		Type:        string(a.Type),
		BookingID:   a.BookingID,
		ReferenceID: a.ReferenceID,
		Title:       a.Title,
		Location:    a.Location,
		Date:        utils.FormatWireDate(a.Date),
		TotalPrice:  a.TotalPrice,
		BookingDate: a.BookingDate,
	}
}

func ContactToResponse(c *entity.Contact) ContactResponse {
	return ContactResponse{
		ContactID:   c.ContactID,
		Phone:       c.UserPhone,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: utils.FormatWireDate(c.DateOfBirth),
		Email:       c.Email,
		Gender:      c.Gender,
		Comment:     c.Comment,
		CreatedAt:   c.CreatedAt,
	}
}
