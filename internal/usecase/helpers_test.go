package usecase

import (
	"errors"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, time.September, 1, 12, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock, repository.NewRepository(mock, nil, zap.NewNop())
}

func expectationsMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// fieldErrors unwraps a *ValidationError or fails the test.
func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return ve.Fields
}

// anyArgs matches a statement with n bound arguments of any value.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func flightRows(flights ...*entity.Flight) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"flight_id", "origin", "destination", "departure_date", "arrival_date",
		"departure_time", "arrival_time", "available_seats", "price", "updated_at",
	})
	for _, f := range flights {
		rows.AddRow(f.FlightID, f.Origin, f.Destination, f.DepartureDate, f.ArrivalDate,
			f.DepartureTime, f.ArrivalTime, f.AvailableSeats, f.Price, f.UpdatedAt)
	}
	return rows
}

func hotelRows(hotels ...*entity.Hotel) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"hotel_id", "hotel_name", "city", "price_per_night", "available_rooms", "available_date", "updated_at",
	})
	for _, h := range hotels {
		rows.AddRow(h.HotelID, h.HotelName, h.City, h.PricePerNight, h.AvailableRooms, h.AvailableDate, h.UpdatedAt)
	}
	return rows
}

func userRows(u *entity.User) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"phone", "password", "first_name", "last_name", "date_of_birth",
		"email", "gender", "role", "created_at", "updated_at",
	}).AddRow(u.Phone, u.PasswordHash, u.FirstName, u.LastName, u.DateOfBirth,
		u.Email, u.Gender, u.Role, u.CreatedAt, u.UpdatedAt)
}

func testFlight() *entity.Flight {
	return &entity.Flight{
		FlightID:       "AA100",
		Origin:         "Dallas",
		Destination:    "Los Angeles",
		DepartureDate:  date(2024, time.September, 14),
		ArrivalDate:    date(2024, time.September, 14),
		DepartureTime:  "08:30",
		ArrivalTime:    "10:05",
		AvailableSeats: 120,
		Price:          100,
		UpdatedAt:      fixedNow,
	}
}

func adult(ssn string) request.TravellerRequest {
	return request.TravellerRequest{
		SSN:         ssn,
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "12-10-1985",
		Category:    string(entity.CategoryAdult),
	}
}

func child(ssn string) request.TravellerRequest {
	return request.TravellerRequest{
		SSN:         ssn,
		FirstName:   "Byron",
		LastName:    "Lovelace",
		DateOfBirth: "05-16-2016",
		Category:    string(entity.CategoryChild),
	}
}
