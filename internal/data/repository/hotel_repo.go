package repository

import (
	"context"
	"fmt"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type HotelRepository interface {
	FindByID(ctx context.Context, hotelID string) (*entity.Hotel, error)
	FindByCity(ctx context.Context, city string) ([]*entity.Hotel, error)
	FindAll(ctx context.Context) ([]*entity.Hotel, error)
	Upsert(ctx context.Context, hotel *entity.Hotel) (bool, error)
}

type hotelRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewHotelRepository(db database.Querier, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

func (r *hotelRepository) FindByID(ctx context.Context, hotelID string) (*entity.Hotel, error) {
	query := `
		SELECT hotel_id, hotel_name, city, price_per_night, available_rooms, available_date, updated_at
		FROM hotels
		WHERE hotel_id = $1
	`

	var hotel entity.Hotel
	err := r.db.QueryRow(ctx, query, hotelID).Scan(
		&hotel.HotelID,
		&hotel.HotelName,
		&hotel.City,
		&hotel.PricePerNight,
		&hotel.AvailableRooms,
		&hotel.AvailableDate,
		&hotel.UpdatedAt,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", hotelID, err)
	}

	return &hotel, nil
}

func (r *hotelRepository) FindByCity(ctx context.Context, city string) ([]*entity.Hotel, error) {
	query := `
		SELECT hotel_id, hotel_name, city, price_per_night, available_rooms, available_date, updated_at
		FROM hotels
		WHERE city = $1
		ORDER BY price_per_night, hotel_id
	`

	return r.query(ctx, query, city)
}

func (r *hotelRepository) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	query := `
		SELECT hotel_id, hotel_name, city, price_per_night, available_rooms, available_date, updated_at
		FROM hotels
		ORDER BY hotel_id
	`

	return r.query(ctx, query)
}

func (r *hotelRepository) query(ctx context.Context, query string, args ...any) ([]*entity.Hotel, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query hotels", zap.Error(err))
		return nil, fmt.Errorf("query hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		var hotel entity.Hotel
		err := rows.Scan(
			&hotel.HotelID,
			&hotel.HotelName,
			&hotel.City,
			&hotel.PricePerNight,
			&hotel.AvailableRooms,
			&hotel.AvailableDate,
			&hotel.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, &hotel)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate hotel rows: %w", err)
	}

	return hotels, nil
}

// Upsert inserts or replaces a hotel by id and reports whether the row was new.
func (r *hotelRepository) Upsert(ctx context.Context, hotel *entity.Hotel) (bool, error) {
	query := `
		INSERT INTO hotels (hotel_id, hotel_name, city, price_per_night, available_rooms, available_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (hotel_id) DO UPDATE
		SET hotel_name = EXCLUDED.hotel_name,
		    city = EXCLUDED.city,
		    price_per_night = EXCLUDED.price_per_night,
		    available_rooms = EXCLUDED.available_rooms,
		    available_date = EXCLUDED.available_date,
		    updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`

	var inserted bool
	err := r.db.QueryRow(ctx, query,
		hotel.HotelID,
		hotel.HotelName,
		hotel.City,
		hotel.PricePerNight,
		hotel.AvailableRooms,
		hotel.AvailableDate,
	).Scan(&inserted)
	if err != nil {
		r.log.Error("Failed to upsert hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.HotelID),
		)
		return false, fmt.Errorf("upsert hotel %s: %w", hotel.HotelID, err)
	}

	return inserted, nil
}
