package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type HotelBookingRepository interface {
	Create(ctx context.Context, booking *entity.HotelBooking) error
	CreateGuest(ctx context.Context, guest *entity.Guest) error
	FindByUser(ctx context.Context, userPhone string) ([]*entity.HotelBookingSummary, error)
}

type hotelBookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewHotelBookingRepository(db database.Querier, log *zap.Logger) HotelBookingRepository {
	return &hotelBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel_booking")),
	}
}

func (r *hotelBookingRepository) Create(ctx context.Context, booking *entity.HotelBooking) error {
	query := `
		INSERT INTO hotel_bookings (hotel_booking_id, hotel_id, user_phone, check_in_date,
		                            check_out_date, num_rooms, price_per_night, total_price, booking_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.HotelBookingID,
		booking.HotelID,
		booking.UserPhone,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.NumRooms,
		booking.PricePerNight,
		booking.TotalPrice,
		booking.BookingDate,
	)
	if err != nil {
		r.log.Error("Failed to create hotel booking",
			zap.Error(err),
			zap.String("hotel_booking_id", booking.HotelBookingID),
			zap.String("hotel_id", booking.HotelID),
		)
		return fmt.Errorf("create hotel booking %s: %w", booking.HotelBookingID, err)
	}

	return nil
}

func (r *hotelBookingRepository) CreateGuest(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (hotel_booking_id, ssn, first_name, last_name, date_of_birth, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		guest.HotelBookingID,
		guest.SSN,
		guest.FirstName,
		guest.LastName,
		guest.DateOfBirth,
		guest.Category,
	).Scan(&guest.ID)
	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("hotel_booking_id", guest.HotelBookingID),
		)
		return fmt.Errorf("create guest for %s: %w", guest.HotelBookingID, err)
	}

	return nil
}

func (r *hotelBookingRepository) FindByUser(ctx context.Context, userPhone string) ([]*entity.HotelBookingSummary, error) {
	query := `
		SELECT hb.hotel_booking_id, hb.hotel_id, hb.user_phone, hb.check_in_date, hb.check_out_date,
		       hb.num_rooms, hb.price_per_night, hb.total_price, hb.booking_date,
		       h.hotel_name, h.city,
		       (SELECT COUNT(*) FROM guests g WHERE g.hotel_booking_id = hb.hotel_booking_id)
		FROM hotel_bookings hb
		JOIN hotels h ON h.hotel_id = hb.hotel_id
		WHERE hb.user_phone = $1
		ORDER BY hb.check_in_date DESC, hb.booking_date DESC
	`

	rows, err := r.db.Query(ctx, query, userPhone)
	if err != nil {
		r.log.Error("Failed to list hotel bookings", zap.Error(err), zap.String("user_phone", userPhone))
		return nil, fmt.Errorf("find hotel bookings for %s: %w", userPhone, err)
	}
	defer rows.Close()

	var bookings []*entity.HotelBookingSummary
	for rows.Next() {
		var s entity.HotelBookingSummary
		err := rows.Scan(
			&s.HotelBookingID,
			&s.HotelID,
			&s.UserPhone,
			&s.CheckInDate,
			&s.CheckOutDate,
			&s.NumRooms,
			&s.PricePerNight,
			&s.TotalPrice,
			&s.BookingDate,
			&s.HotelName,
			&s.City,
			&s.Guests,
		)
		if err != nil {
			r.log.Error("Failed to scan hotel booking row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel booking row: %w", err)
		}
		bookings = append(bookings, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hotel booking rows: %w", err)
	}

	return bookings, nil
}
