package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FlightFilter selects flights on one route departing inside [From, To]
// with at least MinSeats seats left.
type FlightFilter struct {
	Origin      string
	Destination string
	From        time.Time
	To          time.Time
	MinSeats    int
}

type FlightRepository interface {
	FindByID(ctx context.Context, flightID string) (*entity.Flight, error)
	Search(ctx context.Context, filter FlightFilter) ([]*entity.Flight, error)
	FindAll(ctx context.Context) ([]*entity.Flight, error)
	Upsert(ctx context.Context, flight *entity.Flight) (bool, error)
	DecrementSeats(ctx context.Context, flightID string, count int, guard bool) (int64, error)
}

type flightRepository struct {
	db      database.Querier
	builder squirrel.StatementBuilderType
	log     *zap.Logger
}

func NewFlightRepository(db database.Querier, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:     log.With(zap.String("repository", "flight")),
	}
}

var flightColumns = []string{
	"flight_id",
	"origin",
	"destination",
	"departure_date",
	"arrival_date",
	"to_char(departure_time, 'HH24:MI')",
	"to_char(arrival_time, 'HH24:MI')",
	"available_seats",
	"price",
	"updated_at",
}

func scanFlight(row pgx.Row) (*entity.Flight, error) {
	var f entity.Flight
	err := row.Scan(
		&f.FlightID,
		&f.Origin,
		&f.Destination,
		&f.DepartureDate,
		&f.ArrivalDate,
		&f.DepartureTime,
		&f.ArrivalTime,
		&f.AvailableSeats,
		&f.Price,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *flightRepository) FindByID(ctx context.Context, flightID string) (*entity.Flight, error) {
	query, args, err := r.builder.
		Select(flightColumns...).
		From("flights").
		Where(squirrel.Eq{"flight_id": flightID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flight query: %w", err)
	}

	flight, err := scanFlight(r.db.QueryRow(ctx, query, args...))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", flightID),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", flightID, err)
	}

	return flight, nil
}

func (r *flightRepository) Search(ctx context.Context, filter FlightFilter) ([]*entity.Flight, error) {
	query, args, err := r.builder.
		Select(flightColumns...).
		From("flights").
		Where(squirrel.Eq{"origin": filter.Origin, "destination": filter.Destination}).
		Where("departure_date BETWEEN ? AND ?", filter.From, filter.To).
		Where(squirrel.GtOrEq{"available_seats": filter.MinSeats}).
		OrderBy("departure_date", "departure_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flight search: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *flightRepository) FindAll(ctx context.Context) ([]*entity.Flight, error) {
	query, args, err := r.builder.
		Select(flightColumns...).
		From("flights").
		OrderBy("flight_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build flight list: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *flightRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Flight, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query flights", zap.Error(err))
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	var flights []*entity.Flight
	for rows.Next() {
		flight, err := scanFlight(rows)
		if err != nil {
			r.log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, flight)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

// Upsert inserts or replaces a flight by id and reports whether the row was new.
func (r *flightRepository) Upsert(ctx context.Context, flight *entity.Flight) (bool, error) {
	query := `
		INSERT INTO flights (flight_id, origin, destination, departure_date, arrival_date,
		                     departure_time, arrival_time, available_seats, price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (flight_id) DO UPDATE
		SET origin = EXCLUDED.origin,
		    destination = EXCLUDED.destination,
		    departure_date = EXCLUDED.departure_date,
		    arrival_date = EXCLUDED.arrival_date,
		    departure_time = EXCLUDED.departure_time,
		    arrival_time = EXCLUDED.arrival_time,
		    available_seats = EXCLUDED.available_seats,
		    price = EXCLUDED.price,
		    updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		flight.FlightID,
		flight.Origin,
		flight.Destination,
		flight.DepartureDate,
		flight.ArrivalDate,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.AvailableSeats,
		flight.Price,
	).Scan(&inserted)
	if err != nil {
		r.log.Error("Failed to upsert flight",
			zap.Error(err),
			zap.String("flight_id", flight.FlightID),
		)
		return false, fmt.Errorf("upsert flight %s: %w", flight.FlightID, err)
	}

	return inserted, nil
}

// DecrementSeats removes count seats from a flight. With guard set the
// update only applies while enough seats remain; the caller checks the
// returned row count.
func (r *flightRepository) DecrementSeats(ctx context.Context, flightID string, count int, guard bool) (int64, error) {
	query := `
		UPDATE flights
		SET available_seats = available_seats - $1, updated_at = NOW()
		WHERE flight_id = $2
	`
	if guard {
		query += ` AND available_seats >= $1`
	}

	result, err := r.db.Exec(ctx, query, count, flightID)
	if err != nil {
		r.log.Error("Failed to decrement seats",
			zap.Error(err),
			zap.String("flight_id", flightID),
			zap.Int("count", count),
		)
		return 0, fmt.Errorf("decrement seats on %s: %w", flightID, err)
	}

	return result.RowsAffected(), nil
}
