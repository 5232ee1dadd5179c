package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FlightBookingRepository interface {
	Create(ctx context.Context, booking *entity.FlightBooking) error
	UpsertPassenger(ctx context.Context, passenger *entity.Passenger) error
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	FindByIDForUser(ctx context.Context, bookingID, userPhone string) (*entity.FlightBookingSummary, error)
	FindByUser(ctx context.Context, userPhone string) ([]*entity.FlightBookingSummary, error)
	FindTickets(ctx context.Context, bookingID string) ([]*entity.TicketDetail, error)
	FindByUserAndSSN(ctx context.Context, userPhone, ssn string) ([]*entity.PassengerFlight, error)
}

type flightBookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFlightBookingRepository(db database.Querier, log *zap.Logger) FlightBookingRepository {
	return &flightBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight_booking")),
	}
}

func (r *flightBookingRepository) Create(ctx context.Context, booking *entity.FlightBooking) error {
	query := `
		INSERT INTO flight_bookings (flight_booking_id, flight_id, user_phone, total_price, booking_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		booking.FlightBookingID,
		booking.FlightID,
		booking.UserPhone,
		booking.TotalPrice,
		booking.BookingDate,
	)
	if err != nil {
		r.log.Error("Failed to create flight booking",
			zap.Error(err),
			zap.String("flight_booking_id", booking.FlightBookingID),
			zap.String("flight_id", booking.FlightID),
		)
		return fmt.Errorf("create flight booking %s: %w", booking.FlightBookingID, err)
	}

	return nil
}

// UpsertPassenger keeps one row per SSN; later bookings refresh the details.
func (r *flightBookingRepository) UpsertPassenger(ctx context.Context, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (ssn, first_name, last_name, date_of_birth, category)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (ssn) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name = EXCLUDED.last_name,
		    date_of_birth = EXCLUDED.date_of_birth,
		    category = EXCLUDED.category
	`

	_, err := r.db.Exec(ctx, query,
		passenger.SSN,
		passenger.FirstName,
		passenger.LastName,
		passenger.DateOfBirth,
		passenger.Category,
	)
	if err != nil {
		r.log.Error("Failed to upsert passenger", zap.Error(err))
		return fmt.Errorf("upsert passenger: %w", err)
	}

	return nil
}

func (r *flightBookingRepository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (ticket_id, flight_booking_id, ssn, price)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.TicketID,
		ticket.FlightBookingID,
		ticket.SSN,
		ticket.Price,
	)
	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.TicketID),
		)
		return fmt.Errorf("create ticket %s: %w", ticket.TicketID, err)
	}

	return nil
}

const flightSummarySelect = `
	SELECT fb.flight_booking_id, fb.flight_id, fb.user_phone, fb.total_price, fb.booking_date,
	       f.origin, f.destination,
	       f.departure_date, to_char(f.departure_time, 'HH24:MI'),
	       f.arrival_date, to_char(f.arrival_time, 'HH24:MI'),
	       (SELECT COUNT(*) FROM tickets t WHERE t.flight_booking_id = fb.flight_booking_id)
	FROM flight_bookings fb
	JOIN flights f ON f.flight_id = fb.flight_id
`

func scanFlightSummary(row pgx.Row, extra ...any) (*entity.FlightBookingSummary, error) {
	var s entity.FlightBookingSummary
	dest := []any{
		&s.FlightBookingID,
		&s.FlightID,
		&s.UserPhone,
		&s.TotalPrice,
		&s.BookingDate,
		&s.Origin,
		&s.Destination,
		&s.DepartureDate,
		&s.DepartureTime,
		&s.ArrivalDate,
		&s.ArrivalTime,
		&s.Passengers,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *flightBookingRepository) FindByIDForUser(ctx context.Context, bookingID, userPhone string) (*entity.FlightBookingSummary, error) {
	query := flightSummarySelect + `
	WHERE fb.flight_booking_id = $1 AND fb.user_phone = $2
	`

	summary, err := scanFlightSummary(r.db.QueryRow(ctx, query, bookingID, userPhone))
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flight booking",
			zap.Error(err),
			zap.String("flight_booking_id", bookingID),
		)
		return nil, fmt.Errorf("find flight booking %s: %w", bookingID, err)
	}

	return summary, nil
}

func (r *flightBookingRepository) FindByUser(ctx context.Context, userPhone string) ([]*entity.FlightBookingSummary, error) {
	query := flightSummarySelect + `
	WHERE fb.user_phone = $1
	ORDER BY f.departure_date DESC, fb.booking_date DESC
	`

	rows, err := r.db.Query(ctx, query, userPhone)
	if err != nil {
		r.log.Error("Failed to list flight bookings", zap.Error(err), zap.String("user_phone", userPhone))
		return nil, fmt.Errorf("find flight bookings for %s: %w", userPhone, err)
	}
	defer rows.Close()

	var bookings []*entity.FlightBookingSummary
	for rows.Next() {
		summary, err := scanFlightSummary(rows)
		if err != nil {
			r.log.Error("Failed to scan flight booking row", zap.Error(err))
			return nil, fmt.Errorf("scan flight booking row: %w", err)
		}
		bookings = append(bookings, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flight booking rows: %w", err)
	}

	return bookings, nil
}

func (r *flightBookingRepository) FindTickets(ctx context.Context, bookingID string) ([]*entity.TicketDetail, error) {
	query := `
		SELECT t.ticket_id, t.flight_booking_id, t.ssn, t.price,
		       p.first_name, p.last_name, p.date_of_birth, p.category
		FROM tickets t
		JOIN passengers p ON p.ssn = t.ssn
		WHERE t.flight_booking_id = $1
		ORDER BY t.ticket_id
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to list tickets", zap.Error(err), zap.String("flight_booking_id", bookingID))
		return nil, fmt.Errorf("find tickets for %s: %w", bookingID, err)
	}
	defer rows.Close()

	var tickets []*entity.TicketDetail
	for rows.Next() {
		var t entity.TicketDetail
		err := rows.Scan(
			&t.TicketID,
			&t.FlightBookingID,
			&t.Ticket.SSN,
			&t.Price,
			&t.FirstName,
			&t.LastName,
			&t.DateOfBirth,
			&t.Category,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		t.Passenger.SSN = t.Ticket.SSN
		tickets = append(tickets, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticket rows: %w", err)
	}

	return tickets, nil
}

// FindByUserAndSSN lists the flights a passenger holds tickets on, limited
// to bookings made by userPhone.
func (r *flightBookingRepository) FindByUserAndSSN(ctx context.Context, userPhone, ssn string) ([]*entity.PassengerFlight, error) {
	query := `
		SELECT fb.flight_booking_id, fb.flight_id, fb.user_phone, fb.total_price, fb.booking_date,
		       f.origin, f.destination,
		       f.departure_date, to_char(f.departure_time, 'HH24:MI'),
		       f.arrival_date, to_char(f.arrival_time, 'HH24:MI'),
		       (SELECT COUNT(*) FROM tickets c WHERE c.flight_booking_id = fb.flight_booking_id),
		       t.ticket_id
		FROM tickets t
		JOIN flight_bookings fb ON fb.flight_booking_id = t.flight_booking_id
		JOIN flights f ON f.flight_id = fb.flight_id
		WHERE t.ssn = $1 AND fb.user_phone = $2
		ORDER BY f.departure_date DESC
	`

	rows, err := r.db.Query(ctx, query, ssn, userPhone)
	if err != nil {
		r.log.Error("Failed to list flights by SSN", zap.Error(err), zap.String("user_phone", userPhone))
		return nil, fmt.Errorf("find flights by ssn for %s: %w", userPhone, err)
	}
	defer rows.Close()

	var flights []*entity.PassengerFlight
	for rows.Next() {
		var ticketID string
		summary, err := scanFlightSummary(rows, &ticketID)
		if err != nil {
			r.log.Error("Failed to scan passenger flight row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger flight row: %w", err)
		}
		flights = append(flights, &entity.PassengerFlight{FlightBookingSummary: *summary, TicketID: ticketID})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passenger flight rows: %w", err)
	}

	return flights, nil
}
