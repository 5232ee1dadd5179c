package entity

import "time"

type Hotel struct {
	HotelID       string  `db:"hotel_id"`
	HotelName     string  `db:"hotel_name"`
	City          string  `db:"city"`
	PricePerNight float64 `db:"price_per_night"`
	// rooms open on AvailableDate, as published by the feed; both optional
	AvailableRooms *int       `db:"available_rooms"`
	AvailableDate  *time.Time `db:"available_date"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
