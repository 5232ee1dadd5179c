package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newMockRepository(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock init error: %v", err)
	}
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock, nil, zap.NewNop())
}

func TestWithTxCommits(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE flights").
		WithArgs(2, "AA100").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.WithTx(context.Background(), func(tx *Repository) error {
		_, err := tx.Flight.DecrementSeats(context.Background(), "AA100", 2, true)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	mock, repo := newMockRepository(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.WithTx(context.Background(), func(tx *Repository) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to be returned, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic to propagate")
			}
		}()
		repo.WithTx(context.Background(), func(tx *Repository) error {
			panic("unexpected")
		})
	}()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRejectsNesting(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.WithTx(context.Background(), func(tx *Repository) error {
		return tx.WithTx(context.Background(), func(*Repository) error { return nil })
	})
	if !errors.Is(err, ErrNestedTx) {
		t.Fatalf("expected ErrNestedTx, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecrementSeatsGuard(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("AND available_seats >= $1")).
		WithArgs(3, "AA100").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	affected, err := repo.Flight.DecrementSeats(context.Background(), "AA100", 3, true)
	if err != nil {
		t.Fatalf("DecrementSeats returned error: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected = %d, want 0", affected)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindByIDMissingIsNil(t *testing.T) {
	mock, repo := newMockRepository(t)

	mock.ExpectQuery("FROM flights WHERE flight_id").
		WithArgs("ZZ999").
		WillReturnRows(pgxmock.NewRows([]string{"flight_id"}))

	flight, err := repo.Flight.FindByID(context.Background(), "ZZ999")
	if err != nil || flight != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", flight, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
