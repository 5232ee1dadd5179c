package repository

import (
	"context"
	"errors"
	"fmt"

	"travel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	Flight        FlightRepository
	Hotel         HotelRepository
	FlightBooking FlightBookingRepository
	HotelBooking  HotelBookingRepository
	Activity      ActivityRepository
	Contact       ContactRepository
	Report        ReportRepository

	db  database.PgxIface
	log *zap.Logger
}

var ErrNestedTx = errors.New("nested transaction")

func NewRepository(db database.PgxIface, readDB *database.ReadDB, log *zap.Logger) *Repository {
	repo := newRepositories(db, log)
	repo.db = db
	repo.Report = NewReportRepository(readDB, log)
	return repo
}

func newRepositories(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(q, log),
		Session:       NewSessionRepository(q, log),
		Flight:        NewFlightRepository(q, log),
		Hotel:         NewHotelRepository(q, log),
		FlightBooking: NewFlightBookingRepository(q, log),
		HotelBooking:  NewHotelBookingRepository(q, log),
		Activity:      NewActivityRepository(q, log),
		Contact:       NewContactRepository(q, log),
		log:           log,
	}
}

// WithTx runs fn against repositories bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise,
// including when fn panics.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return ErrNestedTx
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
	}()

	txRepo := newRepositories(tx, r.log)
	txRepo.Report = r.Report

	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true

	return nil
}
