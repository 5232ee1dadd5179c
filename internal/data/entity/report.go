package entity

import "time"

type FlightReportRow struct {
	FlightID        string    `db:"flight_id"`
	Origin          string    `db:"origin"`
	Destination     string    `db:"destination"`
	DepartureDate   time.Time `db:"departure_date"`
	DepartureTime   string    `db:"departure_time"`
	FlightBookingID string    `db:"flight_booking_id"`
	TotalPrice      float64   `db:"total_price"`
	BookingDate     time.Time `db:"booking_date"`
	InfantCount     int       `db:"infant_count"`
	ChildCount      int       `db:"child_count"`
}

type HotelReportRow struct {
	HotelID        string    `db:"hotel_id"`
	HotelName      string    `db:"hotel_name"`
	City           string    `db:"city"`
	HotelBookingID string    `db:"hotel_booking_id"`
	CheckInDate    time.Time `db:"check_in_date"`
	CheckOutDate   time.Time `db:"check_out_date"`
	NumRooms       int       `db:"num_rooms"`
	TotalPrice     float64   `db:"total_price"`
	BookingDate    time.Time `db:"booking_date"`
}

type StoreStats struct {
	Flights        int64 `db:"flights"`
	Hotels         int64 `db:"hotels"`
	FlightBookings int64 `db:"flight_bookings"`
	HotelBookings  int64 `db:"hotel_bookings"`
	Contacts       int64 `db:"contacts"`
}
