package response

import (
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

type FlightReportResponse struct {
	FlightID      string    `json:"flight_id"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	DepartureDate string    `json:"departure_date"`
	DepartureTime string    `json:"departure_time"`
	BookingID     string    `json:"booking_id"`
	TotalPrice    float64   `json:"total_price"`
	BookingDate   time.Time `json:"booking_date"`
	InfantCount   int       `json:"infant_count"`
	ChildCount    int       `json:"child_count"`
}

type HotelReportResponse struct {
	HotelID      string    `json:"hotel_id"`
	HotelName    string    `json:"hotel_name"`
	City         string    `json:"city"`
	BookingID    string    `json:"booking_id"`
	CheckInDate  string    `json:"check_in_date"`
	CheckOutDate string    `json:"check_out_date"`
	NumRooms     int       `json:"num_rooms"`
	TotalPrice   float64   `json:"total_price"`
	BookingDate  time.Time `json:"booking_date"`
}

// ReportResponse holds either rows or a count.
type ReportResponse struct {
	Name  string `json:"name"`
	Rows  any    `json:"rows,omitempty"`
	Count *int64 `json:"count,omitempty"`
}

type StatsResponse struct {
	Flights        int64 `json:"flights"`
	Hotels         int64 `json:"hotels"`
	FlightBookings int64 `json:"flight_bookings"`
	HotelBookings  int64 `json:"hotel_bookings"`
	Contacts       int64 `json:"contacts"`
}

func FlightReportToResponse(rows []entity.FlightReportRow) []FlightReportResponse {
	out := make([]FlightReportResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FlightReportResponse{
			FlightID:      r.FlightID,
			Origin:        r.Origin,
			Destination:   r.Destination,
			DepartureDate: utils.FormatWireDate(r.DepartureDate),
			DepartureTime: r.DepartureTime,
			BookingID:     r.FlightBookingID,
			TotalPrice:    r.TotalPrice,
			BookingDate:   r.BookingDate,
			InfantCount:   r.InfantCount,
			ChildCount:    r.ChildCount,
		})
	}
	return out
}

func HotelReportToResponse(rows []entity.HotelReportRow) []HotelReportResponse {
	out := make([]HotelReportResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, HotelReportResponse{
			HotelID:      r.HotelID,
			HotelName:    r.HotelName,
			City:         r.City,
			BookingID:    r.HotelBookingID,
			CheckInDate:  utils.FormatWireDate(r.CheckInDate),
			CheckOutDate: utils.FormatWireDate(r.CheckOutDate),
			NumRooms:     r.NumRooms,
			TotalPrice:   r.TotalPrice,
			BookingDate:  r.BookingDate,
		})
	}
	return out
}

func StatsToResponse(s *entity.StoreStats) StatsResponse {
	return StatsResponse{
		Flights:        s.Flights,
		Hotels:         s.Hotels,
		FlightBookings: s.FlightBookings,
		HotelBookings:  s.HotelBookings,
		Contacts:       s.Contacts,
	}
}
