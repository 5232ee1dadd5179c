package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"travel-booking/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func newSQLMockReportRepo(t *testing.T) (sqlmock.Sqlmock, ReportRepository) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	readDB := database.NewReadDB(sqlx.NewDb(db, "pgx"))
	return mock, NewReportRepository(readDB, zap.NewNop())
}

var (
	windowFrom = time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	windowTo   = time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC)
	texas      = ReportWindow{From: windowFrom, To: windowTo, Cities: []string{"Dallas", "Houston"}, StateCode: "TX"}
)

var flightReportColumns = []string{
	"flight_id", "origin", "destination", "departure_date", "departure_time",
	"flight_booking_id", "total_price", "booking_date", "infant_count", "child_count",
}

func TestFlightsDepartingFromGroupsCityMatch(t *testing.T) {
	mock, repo := newSQLMockReportRepo(t)

	// the state-code match must not escape the date window
	mock.ExpectQuery(regexp.QuoteMeta("WHERE (f.origin IN ($1,$2) OR f.origin LIKE $3) AND f.departure_date BETWEEN $4 AND $5")).
		WithArgs("Dallas", "Houston", "%TX%", windowFrom, windowTo).
		WillReturnRows(sqlmock.NewRows(flightReportColumns).
			AddRow("AA100", "Dallas", "Los Angeles", time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC), "08:30",
				"FB0000000000AA", 170.0, windowFrom, int64(0), int64(1)))

	rows, err := repo.FlightsDepartingFrom(context.Background(), texas)
	if err != nil {
		t.Fatalf("FlightsDepartingFrom returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].FlightID != "AA100" || rows[0].DepartureTime != "08:30" || rows[0].ChildCount != 1 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlightsWithInfantsAndChildrenThresholds(t *testing.T) {
	mock, repo := newSQLMockReportRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(p.ssn) FILTER (WHERE p.category = 'infant') >= $1 AND COUNT(p.ssn) FILTER (WHERE p.category = 'child') >= $2")).
		WithArgs(int64(1), int64(5)).
		WillReturnRows(sqlmock.NewRows(flightReportColumns))

	rows, err := repo.FlightsWithInfantsAndChildren(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("FlightsWithInfantsAndChildren returned error: %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected an empty, non-nil result, got %#v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMostExpensiveHotelsLimit(t *testing.T) {
	mock, repo := newSQLMockReportRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY hb.total_price DESC LIMIT 10")).
		WillReturnRows(sqlmock.NewRows([]string{
			"hotel_id", "hotel_name", "city", "hotel_booking_id", "check_in_date",
			"check_out_date", "num_rooms", "total_price", "booking_date",
		}).AddRow("H002", "Bay View", "San Francisco", "HB0000000000AA", windowFrom, windowTo, int64(2), 1240.0, windowFrom))

	rows, err := repo.MostExpensiveHotels(context.Background(), 10)
	if err != nil {
		t.Fatalf("MostExpensiveHotels returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].NumRooms != 2 || rows[0].TotalPrice != 1240 {
		t.Fatalf("unexpected rows %+v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountFlightsArrivingIn(t *testing.T) {
	mock, repo := newSQLMockReportRepo(t)
	california := ReportWindow{From: windowFrom, To: windowTo, Cities: []string{"Los Angeles"}, StateCode: "CA"}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT fb.flight_booking_id)")).
		WithArgs("Los Angeles", "%CA%", windowFrom, windowTo).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountFlightsArrivingIn(context.Background(), california)
	if err != nil {
		t.Fatalf("CountFlightsArrivingIn returned error: %v", err)
	}
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStats(t *testing.T) {
	mock, repo := newSQLMockReportRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"flights", "hotels", "flight_bookings", "hotel_bookings", "contacts"}).
			AddRow(int64(10), int64(5), int64(3), int64(2), int64(1)))

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Flights != 10 || stats.Contacts != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
