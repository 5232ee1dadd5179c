package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/response"
	"travel-booking/internal/feed"

	"go.uber.org/zap"
)

// CatalogService bulk loads and exports the flight and hotel catalogs.
type CatalogService interface {
	LoadFlights(ctx context.Context, body io.Reader) (*response.LoadResponse, error)
	LoadHotels(ctx context.Context, body io.Reader) (*response.LoadResponse, error)
	ExportFlights(ctx context.Context) ([]byte, error)
	ExportHotels(ctx context.Context) ([]byte, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// LoadFlights validates every record before writing any; the upsert runs in
// one transaction.
func (s *catalogService) LoadFlights(ctx context.Context, body io.Reader) (*response.LoadResponse, error) {
	f, err := feed.DecodeFlights(body)
	if err != nil {
		return nil, invalidField("flights", err.Error())
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	flights := make([]*entity.Flight, 0, len(f.Flights))
	seen := make(map[string]bool, len(f.Flights))
	for i, rec := range f.Flights {
		if seen[rec.FlightID] {
			return nil, invalidField(fmt.Sprintf("flights[%d].flightId", i), "Duplicate flight id in feed")
		}
		seen[rec.FlightID] = true

		flight, err := rec.ToEntity()
		if err != nil {
			return nil, invalidField(fmt.Sprintf("flights[%d]", i), err.Error())
		}
		if flight.ArrivalDate.Before(flight.DepartureDate) {
			return nil, invalidField(fmt.Sprintf("flights[%d].arrivalDate", i), "Arrival date is before departure date")
		}
		flights = append(flights, flight)
	}

	result := &response.LoadResponse{Total: len(flights)}
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		for _, flight := range flights {
			inserted, err := tx.Flight.Upsert(ctx, flight)
			if err != nil {
				return err
			}
			countUpsert(result, inserted)
		}
		return nil
	})
	if err != nil {
		s.log.Error("Flight load rolled back", zap.Error(err), zap.Int("records", len(flights)))
		return nil, fmt.Errorf("load flights: %w", err)
	}

	s.log.Info("Flights loaded",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (s *catalogService) LoadHotels(ctx context.Context, body io.Reader) (*response.LoadResponse, error) {
	f, err := feed.DecodeHotels(body)
	if err != nil {
		return nil, invalidField("hotels", err.Error())
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	hotels := make([]*entity.Hotel, 0, len(f.Hotels))
	seen := make(map[string]bool, len(f.Hotels))
	for i, rec := range f.Hotels {
		if seen[rec.HotelID] {
			return nil, invalidField(fmt.Sprintf("hotel[%d].hotel-id", i), "Duplicate hotel id in feed")
		}
		seen[rec.HotelID] = true

		hotel, err := rec.ToEntity()
		if err != nil {
			return nil, invalidField(fmt.Sprintf("hotel[%d]", i), err.Error())
		}
		hotels = append(hotels, hotel)
	}

	result := &response.LoadResponse{Total: len(hotels)}
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		for _, hotel := range hotels {
			inserted, err := tx.Hotel.Upsert(ctx, hotel)
			if err != nil {
				return err
			}
			countUpsert(result, inserted)
		}
		return nil
	})
	if err != nil {
		s.log.Error("Hotel load rolled back", zap.Error(err), zap.Int("records", len(hotels)))
		return nil, fmt.Errorf("load hotels: %w", err)
	}

	s.log.Info("Hotels loaded",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (s *catalogService) ExportFlights(ctx context.Context) ([]byte, error) {
	flights, err := s.repo.Flight.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	f := &feed.FlightFeed{Flights: make([]feed.FlightRecord, 0, len(flights))}
	for _, flight := range flights {
		f.Flights = append(f.Flights, feed.FlightFromEntity(flight))
	}

	var buf bytes.Buffer
	if err := feed.EncodeFlights(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *catalogService) ExportHotels(ctx context.Context) ([]byte, error) {
	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	f := &feed.HotelFeed{Hotels: make([]feed.HotelRecord, 0, len(hotels))}
	for _, hotel := range hotels {
		f.Hotels = append(f.Hotels, feed.HotelFromEntity(hotel))
	}

	var buf bytes.Buffer
	if err := feed.EncodeHotels(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func countUpsert(result *response.LoadResponse, inserted bool) {
	if inserted {
		result.Inserted++
	} else {
		result.Updated++
	}
}

