package repository

import (
	"context"
	"fmt"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

// ActivityRepository merges a user's flight and hotel bookings on one date axis.
type ActivityRepository interface {
	FindByUserInRange(ctx context.Context, userPhone string, from, to time.Time) ([]*entity.BookingActivity, error)
}

type activityRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewActivityRepository(db database.Querier, log *zap.Logger) ActivityRepository {
	return &activityRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity")),
	}
}

func (r *activityRepository) FindByUserInRange(ctx context.Context, userPhone string, from, to time.Time) ([]*entity.BookingActivity, error) {
	query := `
		SELECT 'flight' AS type, fb.flight_booking_id AS booking_id, f.flight_id AS reference_id,
		       f.origin AS title, f.destination AS location, f.departure_date AS activity_date,
		       fb.total_price, fb.booking_date
		FROM flight_bookings fb
		JOIN flights f ON f.flight_id = fb.flight_id
		WHERE fb.user_phone = $1 AND f.departure_date BETWEEN $2 AND $3
		UNION ALL
		SELECT 'hotel' AS type, hb.hotel_booking_id, h.hotel_id,
		       h.hotel_name, h.city, hb.check_in_date,
		       hb.total_price, hb.booking_date
		FROM hotel_bookings hb
		JOIN hotels h ON h.hotel_id = hb.hotel_id
		WHERE hb.user_phone = $1 AND hb.check_in_date BETWEEN $2 AND $3
		ORDER BY activity_date DESC
	`

	rows, err := r.db.Query(ctx, query, userPhone, from, to)
	if err != nil {
		r.log.Error("Failed to list booking activity",
			zap.Error(err),
			zap.String("user_phone", userPhone),
		)
		return nil, fmt.Errorf("find bookings in range for %s: %w", userPhone, err)
	}
	defer rows.Close()

	var activity []*entity.BookingActivity
	for rows.Next() {
		var a entity.BookingActivity
		err := rows.Scan(
			&a.Type,
			&a.BookingID,
			&a.ReferenceID,
			&a.Title,
			&a.Location,
			&a.Date,
			&a.TotalPrice,
			&a.BookingDate,
		)
		if err != nil {
			r.log.Error("Failed to scan activity row", zap.Error(err))
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		activity = append(activity, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity rows: %w", err)
	}

	return activity, nil
}
