package entity

import "time"

type FlightBooking struct {
	FlightBookingID string    `db:"flight_booking_id"`
	FlightID        string    `db:"flight_id"`
	UserPhone       string    `db:"user_phone"`
	TotalPrice      float64   `db:"total_price"`
	BookingDate     time.Time `db:"booking_date"`
}

type Passenger struct {
	SSN         string    `db:"ssn"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	DateOfBirth time.Time `db:"date_of_birth"`
	Category    Category  `db:"category"`
}

type Ticket struct {
	TicketID        string  `db:"ticket_id"`
	FlightBookingID string  `db:"flight_booking_id"`
	SSN             string  `db:"ssn"`
	Price           float64 `db:"price"`
}

// TicketDetail is a ticket joined with its passenger.
type TicketDetail struct {
	Ticket
	Passenger
}

// FlightBookingSummary is a booking joined with its flight leg.
type FlightBookingSummary struct {
	FlightBooking
	Origin        string    `db:"origin"`
	Destination   string    `db:"destination"`
	DepartureDate time.Time `db:"departure_date"`
	DepartureTime string    `db:"departure_time"`
	ArrivalDate   time.Time `db:"arrival_date"`
	ArrivalTime   string    `db:"arrival_time"`
	Passengers    int       `db:"passengers"`
}

type PassengerFlight struct {
	FlightBookingSummary
	TicketID string `db:"ticket_id"`
}

type HotelBooking struct {
	HotelBookingID string    `db:"hotel_booking_id"`
	HotelID        string    `db:"hotel_id"`
	UserPhone      string    `db:"user_phone"`
	CheckInDate    time.Time `db:"check_in_date"`
	CheckOutDate   time.Time `db:"check_out_date"`
	NumRooms       int       `db:"num_rooms"`
	PricePerNight  float64   `db:"price_per_night"`
	TotalPrice     float64   `db:"total_price"`
	BookingDate    time.Time `db:"booking_date"`
}

type Guest struct {
	ID             int64     `db:"id"`
	HotelBookingID string    `db:"hotel_booking_id"`
	SSN            string    `db:"ssn"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	DateOfBirth    time.Time `db:"date_of_birth"`
	Category       Category  `db:"category"`
}

type HotelBookingSummary struct {
	HotelBooking
	HotelName string `db:"hotel_name"`
	City      string `db:"city"`
	Guests    int    `db:"guests"`
}

type ActivityType string

const (
	ActivityFlight ActivityType = "flight"
	ActivityHotel  ActivityType = "hotel"
)

// BookingActivity is one flight or hotel booking on a shared date axis.
// For flights Date is the departure date, for hotels the check-in date.
type BookingActivity struct {
	Type        ActivityType `db:"type"`
	BookingID   string       `db:"booking_id"`
	ReferenceID string       `db:"reference_id"`
	Title       string       `db:"title"`
	Location    string       `db:"location"`
	Date        time.Time    `db:"activity_date"`
	TotalPrice  float64      `db:"total_price"`
	BookingDate time.Time    `db:"booking_date"`
}
