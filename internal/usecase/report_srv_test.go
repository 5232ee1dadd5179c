package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// fakeReportRepo records the arguments each report query receives.
type fakeReportRepo struct {
	window      repository.ReportWindow
	limit       uint64
	minInfants  int
	minChildren int
	arrivals    int64
	err         error
}

func (f *fakeReportRepo) FlightsDepartingFrom(_ context.Context, w repository.ReportWindow) ([]entity.FlightReportRow, error) {
	f.window = w
	return []entity.FlightReportRow{{FlightID: "AA100", Origin: "Dallas", DepartureDate: date(2024, time.September, 14)}}, f.err
}

func (f *fakeReportRepo) HotelsIn(_ context.Context, w repository.ReportWindow) ([]entity.HotelReportRow, error) {
	f.window = w
	return []entity.HotelReportRow{{HotelID: "H001", City: "Austin"}}, f.err
}

func (f *fakeReportRepo) MostExpensiveHotels(_ context.Context, limit uint64) ([]entity.HotelReportRow, error) {
	f.limit = limit
	return nil, f.err
}

func (f *fakeReportRepo) FlightsWithInfants(context.Context) ([]entity.FlightReportRow, error) {
	return nil, f.err
}

func (f *fakeReportRepo) FlightsWithInfantsAndChildren(_ context.Context, minInfants, minChildren int) ([]entity.FlightReportRow, error) {
	f.minInfants, f.minChildren = minInfants, minChildren
	return nil, f.err
}

func (f *fakeReportRepo) MostExpensiveFlights(_ context.Context, limit uint64) ([]entity.FlightReportRow, error) {
	f.limit = limit
	return nil, f.err
}

func (f *fakeReportRepo) FlightsDepartingFromWithoutInfants(_ context.Context, w repository.ReportWindow) ([]entity.FlightReportRow, error) {
	f.window = w
	return nil, f.err
}

func (f *fakeReportRepo) CountFlightsArrivingIn(_ context.Context, w repository.ReportWindow) (int64, error) {
	f.window = w
	return f.arrivals, f.err
}

func (f *fakeReportRepo) Stats(context.Context) (*entity.StoreStats, error) {
	return &entity.StoreStats{Flights: 4, Hotels: 3, FlightBookings: 2, HotelBookings: 1}, f.err
}

func newTestReportService(fake *fakeReportRepo) ReportService {
	return NewReportService(&repository.Repository{Report: fake}, utils.ReportConfig{
		WindowStart:      "2024-09-01",
		WindowEnd:        "2024-10-31",
		TexasCities:      []string{"Dallas", "Houston"},
		CaliforniaCities: []string{"Los Angeles"},
	}, zap.NewNop())
}

func TestReportNames(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{})

	want := []string{
		ReportCaliforniaArrivals,
		ReportExpensiveFlights,
		ReportExpensiveHotels,
		ReportInfantsAndChildren,
		ReportFlightsWithInfants,
		ReportTexasFlights,
		ReportTexasFlightsNoInfants,
		ReportTexasHotels,
	}
	if got := svc.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

func TestTexasFlightsReportUsesWindow(t *testing.T) {
	fake := &fakeReportRepo{}
	svc := newTestReportService(fake)

	report, err := svc.Run(context.Background(), ReportTexasFlights, DefaultReportParams())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if fake.window.StateCode != "TX" || !reflect.DeepEqual(fake.window.Cities, []string{"Dallas", "Houston"}) {
		t.Errorf("unexpected window %+v", fake.window)
	}
	if !fake.window.From.Equal(date(2024, time.September, 1)) || !fake.window.To.Equal(date(2024, time.October, 31)) {
		t.Errorf("unexpected window dates %v..%v", fake.window.From, fake.window.To)
	}

	rows, ok := report.Rows.([]response.FlightReportResponse)
	if !ok || len(rows) != 1 || rows[0].DepartureDate != "09-14-2024" {
		t.Fatalf("unexpected rows %#v", report.Rows)
	}
}

func TestInfantsAndChildrenReportThresholds(t *testing.T) {
	fake := &fakeReportRepo{}
	svc := newTestReportService(fake)

	if _, err := svc.Run(context.Background(), ReportInfantsAndChildren, ReportParams{MinInfants: 2, MinChildren: 3}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if fake.minInfants != 2 || fake.minChildren != 3 {
		t.Fatalf("thresholds = %d/%d, want 2/3", fake.minInfants, fake.minChildren)
	}

	_, err := svc.Run(context.Background(), ReportInfantsAndChildren, ReportParams{MinInfants: -1})
	fieldErrors(t, err)
}

func TestTopReportsAreLimited(t *testing.T) {
	fake := &fakeReportRepo{}
	svc := newTestReportService(fake)

	if _, err := svc.Run(context.Background(), ReportExpensiveHotels, DefaultReportParams()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if fake.limit != topReportLimit {
		t.Fatalf("limit = %d, want %d", fake.limit, topReportLimit)
	}
}

func TestCaliforniaArrivalsReportCount(t *testing.T) {
	fake := &fakeReportRepo{arrivals: 7}
	svc := newTestReportService(fake)

	report, err := svc.Run(context.Background(), ReportCaliforniaArrivals, DefaultReportParams())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if report.Count == nil || *report.Count != 7 {
		t.Fatalf("unexpected count %v", report.Count)
	}
	if fake.window.StateCode != "CA" {
		t.Fatalf("expected CA window, got %+v", fake.window)
	}
}

func TestRunUnknownReport(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{})

	if _, err := svc.Run(context.Background(), "no-such-report", DefaultReportParams()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunWrapsRepositoryError(t *testing.T) {
	boom := errors.New("boom")
	svc := newTestReportService(&fakeReportRepo{err: boom})

	if _, err := svc.Run(context.Background(), ReportFlightsWithInfants, DefaultReportParams()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestStats(t *testing.T) {
	svc := newTestReportService(&fakeReportRepo{})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Flights != 4 || stats.Hotels != 3 || stats.FlightBookings != 2 || stats.HotelBookings != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
