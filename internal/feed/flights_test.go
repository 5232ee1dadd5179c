package feed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"travel-booking/pkg/utils"
)

const flightsJSON = `{
  "flights": [
    {
      "flightId": "AA100",
      "origin": "Dallas",
      "destination": "Los Angeles",
      "departureDate": "09-14-2024",
      "arrivalDate": "09-14-2024",
      "departureTime": "08:30",
      "arrivalTime": "10:05",
      "availableSeats": 120,
      "price": 249.99
    },
    {
      "flightId": "AA101",
      "origin": "Los Angeles",
      "destination": "Dallas",
      "departureDate": "09-20-2024",
      "arrivalDate": "09-21-2024",
      "departureTime": "23:10",
      "arrivalTime": "04:15",
      "availableSeats": 80,
      "price": 199
    }
  ]
}`

func TestDecodeFlights(t *testing.T) {
	f, err := DecodeFlights(strings.NewReader(flightsJSON))
	if err != nil {
		t.Fatalf("DecodeFlights returned error: %v", err)
	}
	if errs := utils.ValidateStruct(f); len(errs) > 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if len(f.Flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(f.Flights))
	}

	flight, err := f.Flights[0].ToEntity()
	if err != nil {
		t.Fatalf("ToEntity returned error: %v", err)
	}
	if flight.FlightID != "AA100" || flight.Origin != "Dallas" || flight.Destination != "Los Angeles" {
		t.Errorf("unexpected flight %+v", flight)
	}
	if want := time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC); !flight.DepartureDate.Equal(want) {
		t.Errorf("departure date = %v, want %v", flight.DepartureDate, want)
	}
	if flight.DepartureTime != "08:30" || flight.AvailableSeats != 120 || flight.Price != 249.99 {
		t.Errorf("unexpected flight %+v", flight)
	}
}

func TestDecodeFlightsValidation(t *testing.T) {
	body := `{"flights":[{"flightId":"AA100","origin":"Dallas","destination":"Austin",
		"departureDate":"2024-09-14","arrivalDate":"09-14-2024",
		"departureTime":"08:30","arrivalTime":"9:05","availableSeats":10}]}`

	f, err := DecodeFlights(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeFlights returned error: %v", err)
	}

	errs := utils.ValidateStruct(f)
	for _, field := range []string{"flights[0].departureDate", "flights[0].arrivalTime", "flights[0].price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
}

func TestDecodeFlightsEmpty(t *testing.T) {
	f, err := DecodeFlights(strings.NewReader(`{"flights":[]}`))
	if err != nil {
		t.Fatalf("DecodeFlights returned error: %v", err)
	}
	if errs := utils.ValidateStruct(f); errs["flights"] == "" {
		t.Fatalf("expected empty feed to be rejected, got %v", errs)
	}

	if _, err := DecodeFlights(strings.NewReader(`{"flights":`)); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
}

func TestEncodeFlightsUsesFeedFormat(t *testing.T) {
	f, err := DecodeFlights(strings.NewReader(flightsJSON))
	if err != nil {
		t.Fatalf("DecodeFlights returned error: %v", err)
	}
	flight, err := f.Flights[1].ToEntity()
	if err != nil {
		t.Fatalf("ToEntity returned error: %v", err)
	}

	var buf bytes.Buffer
	out := &FlightFeed{Flights: []FlightRecord{FlightFromEntity(flight)}}
	if err := EncodeFlights(&buf, out); err != nil {
		t.Fatalf("EncodeFlights returned error: %v", err)
	}

	for _, want := range []string{`"flightId": "AA101"`, `"departureDate": "09-20-2024"`, `"arrivalDate": "09-21-2024"`, `"availableSeats": 80`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("encoded feed missing %s:\n%s", want, buf.String())
		}
	}
}
