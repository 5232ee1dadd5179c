package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"go.uber.org/zap"
)

// ReportWindow bounds a report by date and by a list of city names.
// A city also matches when it carries the state code, e.g. "Dallas, TX".
type ReportWindow struct {
	From      time.Time
	To        time.Time
	Cities    []string
	StateCode string
}

type ReportRepository interface {
	FlightsDepartingFrom(ctx context.Context, window ReportWindow) ([]entity.FlightReportRow, error)
	HotelsIn(ctx context.Context, window ReportWindow) ([]entity.HotelReportRow, error)
	MostExpensiveHotels(ctx context.Context, limit uint64) ([]entity.HotelReportRow, error)
	FlightsWithInfants(ctx context.Context) ([]entity.FlightReportRow, error)
	FlightsWithInfantsAndChildren(ctx context.Context, minInfants, minChildren int) ([]entity.FlightReportRow, error)
	MostExpensiveFlights(ctx context.Context, limit uint64) ([]entity.FlightReportRow, error)
	FlightsDepartingFromWithoutInfants(ctx context.Context, window ReportWindow) ([]entity.FlightReportRow, error)
	CountFlightsArrivingIn(ctx context.Context, window ReportWindow) (int64, error)
	Stats(ctx context.Context) (*entity.StoreStats, error)
}

type reportRepository struct {
	db  *database.ReadDB
	log *zap.Logger
}

func NewReportRepository(db *database.ReadDB, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func cityMatch(column string, window ReportWindow) squirrel.Sqlizer {
	match := squirrel.Or{squirrel.Eq{column: window.Cities}}
	if window.StateCode != "" {
		match = append(match, squirrel.Like{column: "%" + window.StateCode + "%"})
	}
	return match
}

func (r *reportRepository) flightRows() squirrel.SelectBuilder {
	return r.db.Builder.
		Select(
			"f.flight_id",
			"f.origin",
			"f.destination",
			"f.departure_date",
			"to_char(f.departure_time, 'HH24:MI') AS departure_time",
			"fb.flight_booking_id",
			"fb.total_price",
			"fb.booking_date",
			"COUNT(p.ssn) FILTER (WHERE p.category = 'infant') AS infant_count",
			"COUNT(p.ssn) FILTER (WHERE p.category = 'child') AS child_count",
		).
		From("flight_bookings fb").
		Join("flights f ON f.flight_id = fb.flight_id").
		LeftJoin("tickets t ON t.flight_booking_id = fb.flight_booking_id").
		LeftJoin("passengers p ON p.ssn = t.ssn").
		GroupBy("fb.flight_booking_id", "f.flight_id")
}

func (r *reportRepository) hotelRows() squirrel.SelectBuilder {
	return r.db.Builder.
		Select(
			"h.hotel_id",
			"h.hotel_name",
			"h.city",
			"hb.hotel_booking_id",
			"hb.check_in_date",
			"hb.check_out_date",
			"hb.num_rooms",
			"hb.total_price",
			"hb.booking_date",
		).
		From("hotel_bookings hb").
		Join("hotels h ON h.hotel_id = hb.hotel_id")
}

func (r *reportRepository) selectFlights(ctx context.Context, name string, q squirrel.SelectBuilder) ([]entity.FlightReportRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s report: %w", name, err)
	}

	rows := []entity.FlightReportRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.Error("Failed to run flight report", zap.Error(err), zap.String("report", name))
		return nil, fmt.Errorf("run %s report: %w", name, err)
	}

	return rows, nil
}

func (r *reportRepository) selectHotels(ctx context.Context, name string, q squirrel.SelectBuilder) ([]entity.HotelReportRow, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s report: %w", name, err)
	}

	rows := []entity.HotelReportRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.Error("Failed to run hotel report", zap.Error(err), zap.String("report", name))
		return nil, fmt.Errorf("run %s report: %w", name, err)
	}

	return rows, nil
}

func (r *reportRepository) FlightsDepartingFrom(ctx context.Context, window ReportWindow) ([]entity.FlightReportRow, error) {
	q := r.flightRows().
		Where(cityMatch("f.origin", window)).
		Where("f.departure_date BETWEEN ? AND ?", window.From, window.To).
		OrderBy("f.departure_date", "f.departure_time")

	return r.selectFlights(ctx, "flights departing", q)
}

func (r *reportRepository) HotelsIn(ctx context.Context, window ReportWindow) ([]entity.HotelReportRow, error) {
	q := r.hotelRows().
		Where(cityMatch("h.city", window)).
		Where("hb.check_in_date BETWEEN ? AND ?", window.From, window.To).
		OrderBy("hb.check_in_date")

	return r.selectHotels(ctx, "hotels in cities", q)
}

func (r *reportRepository) MostExpensiveHotels(ctx context.Context, limit uint64) ([]entity.HotelReportRow, error) {
	q := r.hotelRows().
		OrderBy("hb.total_price DESC").
		Limit(limit)

	return r.selectHotels(ctx, "expensive hotels", q)
}

func (r *reportRepository) FlightsWithInfants(ctx context.Context) ([]entity.FlightReportRow, error) {
	q := r.flightRows().
		Having("COUNT(p.ssn) FILTER (WHERE p.category = 'infant') >= 1").
		OrderBy("f.departure_date")

	return r.selectFlights(ctx, "flights with infants", q)
}

func (r *reportRepository) FlightsWithInfantsAndChildren(ctx context.Context, minInfants, minChildren int) ([]entity.FlightReportRow, error) {
	q := r.flightRows().
		Having("COUNT(p.ssn) FILTER (WHERE p.category = 'infant') >= ?", minInfants).
		Having("COUNT(p.ssn) FILTER (WHERE p.category = 'child') >= ?", minChildren).
		OrderBy("f.departure_date")

	return r.selectFlights(ctx, "flights with infants and children", q)
}

func (r *reportRepository) MostExpensiveFlights(ctx context.Context, limit uint64) ([]entity.FlightReportRow, error) {
	q := r.flightRows().
		OrderBy("fb.total_price DESC").
		Limit(limit)

	return r.selectFlights(ctx, "expensive flights", q)
}

func (r *reportRepository) FlightsDepartingFromWithoutInfants(ctx context.Context, window ReportWindow) ([]entity.FlightReportRow, error) {
	q := r.flightRows().
		Where(cityMatch("f.origin", window)).
		Having("COUNT(p.ssn) FILTER (WHERE p.category = 'infant') = 0").
		OrderBy("f.departure_date")

	return r.selectFlights(ctx, "flights without infants", q)
}

func (r *reportRepository) CountFlightsArrivingIn(ctx context.Context, window ReportWindow) (int64, error) {
	query, args, err := r.db.Builder.
		Select("COUNT(DISTINCT fb.flight_booking_id)").
		From("flight_bookings fb").
		Join("flights f ON f.flight_id = fb.flight_id").
		Where(cityMatch("f.destination", window)).
		Where("f.arrival_date BETWEEN ? AND ?", window.From, window.To).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build arrivals count: %w", err)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		r.log.Error("Failed to count arrivals", zap.Error(err))
		return 0, fmt.Errorf("count arrivals: %w", err)
	}

	return count, nil
}

func (r *reportRepository) Stats(ctx context.Context) (*entity.StoreStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM flights)         AS flights,
			(SELECT COUNT(*) FROM hotels)          AS hotels,
			(SELECT COUNT(*) FROM flight_bookings) AS flight_bookings,
			(SELECT COUNT(*) FROM hotel_bookings)  AS hotel_bookings,
			(SELECT COUNT(*) FROM contacts)        AS contacts
	`

	var stats entity.StoreStats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		r.log.Error("Failed to load store stats", zap.Error(err))
		return nil, fmt.Errorf("load store stats: %w", err)
	}

	return &stats, nil
}
