package entity

import "time"

type Flight struct {
	FlightID       string    `db:"flight_id"`
	Origin         string    `db:"origin"`
	Destination    string    `db:"destination"`
	DepartureDate  time.Time `db:"departure_date"`
	ArrivalDate    time.Time `db:"arrival_date"`
	DepartureTime  string    `db:"departure_time"` // HH:MM
	ArrivalTime    string    `db:"arrival_time"`   // HH:MM
	AvailableSeats int       `db:"available_seats"`
	Price          float64   `db:"price"`
	UpdatedAt      time.Time `db:"updated_at"`
}
