// Package feed reads and writes the bulk catalog feeds: flights as JSON and
// hotels as XML. Dates travel as MM-DD-YYYY and times as HH:MM.
package feed

import (
	"encoding/json"
	"fmt"
	"io"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

type FlightRecord struct {
	FlightID       string   `json:"flightId" validate:"required,max=20"`
	Origin         string   `json:"origin" validate:"required,max=100"`
	Destination    string   `json:"destination" validate:"required,max=100"`
	DepartureDate  string   `json:"departureDate" validate:"required,mdydate"`
	ArrivalDate    string   `json:"arrivalDate" validate:"required,mdydate"`
	DepartureTime  string   `json:"departureTime" validate:"required,hhmm"`
	ArrivalTime    string   `json:"arrivalTime" validate:"required,hhmm"`
	AvailableSeats *int     `json:"availableSeats" validate:"required,min=0"`
	Price          *float64 `json:"price" validate:"required,min=0"`
}

type FlightFeed struct {
	Flights []FlightRecord `json:"flights" validate:"required,min=1,dive"`
}

func DecodeFlights(r io.Reader) (*FlightFeed, error) {
	var f FlightFeed
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode flights feed: %w", err)
	}
	return &f, nil
}

func EncodeFlights(w io.Writer, f *FlightFeed) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode flights feed: %w", err)
	}
	return nil
}

// ToEntity converts a validated record to its stored form.
func (r FlightRecord) ToEntity() (*entity.Flight, error) {
	dep, err := utils.ParseWireDate(r.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", r.FlightID, err)
	}
	arr, err := utils.ParseWireDate(r.ArrivalDate)
	if err != nil {
		return nil, fmt.Errorf("flight %s: %w", r.FlightID, err)
	}
	if r.AvailableSeats == nil || r.Price == nil {
		return nil, fmt.Errorf("flight %s: seats and price are required", r.FlightID)
	}

	return &entity.Flight{
		FlightID:       r.FlightID,
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureDate:  dep,
		ArrivalDate:    arr,
		DepartureTime:  r.DepartureTime,
		ArrivalTime:    r.ArrivalTime,
		AvailableSeats: *r.AvailableSeats,
		Price:          *r.Price,
	}, nil
}

func FlightFromEntity(f *entity.Flight) FlightRecord {
	seats := f.AvailableSeats
	price := f.Price
	return FlightRecord{
		FlightID:       f.FlightID,
		Origin:         f.Origin,
		Destination:    f.Destination,
		DepartureDate:  utils.FormatWireDate(f.DepartureDate),
		ArrivalDate:    utils.FormatWireDate(f.ArrivalDate),
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		AvailableSeats: &seats,
		Price:          &price,
	}
}
