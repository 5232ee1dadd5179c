package usecase

import (
	"context"
	"fmt"
	"sort"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

const topReportLimit = 10

const (
	ReportTexasFlights          = "texas-flights"
	ReportTexasHotels           = "texas-hotels"
	ReportExpensiveHotels       = "expensive-hotels"
	ReportFlightsWithInfants    = "flights-with-infants"
	ReportInfantsAndChildren    = "flights-infants-children"
	ReportExpensiveFlights      = "expensive-flights"
	ReportTexasFlightsNoInfants = "texas-flights-no-infants"
	ReportCaliforniaArrivals    = "california-arrivals"
)

// ReportParams tunes the thresholds of the passenger mix report.
type ReportParams struct {
	MinInfants  int
	MinChildren int
}

func DefaultReportParams() ReportParams {
	return ReportParams{MinInfants: 1, MinChildren: 5}
}

type ReportService interface {
	Names() []string
	Run(ctx context.Context, name string, params ReportParams) (*response.ReportResponse, error)
	Stats(ctx context.Context) (*response.StatsResponse, error)
}

type reportService struct {
	repo    repository.ReportRepository
	texas   repository.ReportWindow
	calif   repository.ReportWindow
	log     *zap.Logger
	reports map[string]reportFunc
}

type reportFunc func(ctx context.Context, params ReportParams) (*response.ReportResponse, error)

func NewReportService(repo *repository.Repository, config utils.ReportConfig, log *zap.Logger) ReportService {
	from, _ := utils.ParseISODate(config.WindowStart)
	to, _ := utils.ParseISODate(config.WindowEnd)

	s := &reportService{
		repo: repo.Report,
		texas: repository.ReportWindow{
			From: from, To: to, Cities: config.TexasCities, StateCode: "TX",
		},
		calif: repository.ReportWindow{
			From: from, To: to, Cities: config.CaliforniaCities, StateCode: "CA",
		},
		log: log.With(zap.String("service", "report")),
	}

	s.reports = map[string]reportFunc{
		ReportTexasFlights: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.FlightsDepartingFrom(ctx, s.texas)
			return flightReport(ReportTexasFlights, rows, err)
		},
		ReportTexasHotels: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.HotelsIn(ctx, s.texas)
			if err != nil {
				return nil, err
			}
			return &response.ReportResponse{Name: ReportTexasHotels, Rows: response.HotelReportToResponse(rows)}, nil
		},
		ReportExpensiveHotels: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.MostExpensiveHotels(ctx, topReportLimit)
			if err != nil {
				return nil, err
			}
			return &response.ReportResponse{Name: ReportExpensiveHotels, Rows: response.HotelReportToResponse(rows)}, nil
		},
		ReportFlightsWithInfants: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.FlightsWithInfants(ctx)
			return flightReport(ReportFlightsWithInfants, rows, err)
		},
		ReportInfantsAndChildren: func(ctx context.Context, p ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.FlightsWithInfantsAndChildren(ctx, p.MinInfants, p.MinChildren)
			return flightReport(ReportInfantsAndChildren, rows, err)
		},
		ReportExpensiveFlights: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.MostExpensiveFlights(ctx, topReportLimit)
			return flightReport(ReportExpensiveFlights, rows, err)
		},
		ReportTexasFlightsNoInfants: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			rows, err := s.repo.FlightsDepartingFromWithoutInfants(ctx, s.texas)
			return flightReport(ReportTexasFlightsNoInfants, rows, err)
		},
		ReportCaliforniaArrivals: func(ctx context.Context, _ ReportParams) (*response.ReportResponse, error) {
			count, err := s.repo.CountFlightsArrivingIn(ctx, s.calif)
			if err != nil {
				return nil, err
			}
			return &response.ReportResponse{Name: ReportCaliforniaArrivals, Count: &count}, nil
		},
	}

	return s
}

func (s *reportService) Names() []string {
	names := make([]string, 0, len(s.reports))
	for name := range s.reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *reportService) Run(ctx context.Context, name string, params ReportParams) (*response.ReportResponse, error) {
	run, ok := s.reports[name]
	if !ok {
		return nil, notFound("report", name)
	}
	if params.MinInfants < 0 || params.MinChildren < 0 {
		return nil, invalidField("min", "Thresholds must not be negative")
	}

	resp, err := run(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("report %s: %w", name, err)
	}

	s.log.Info("Report generated", zap.String("report", name))
	return resp, nil
}

func (s *reportService) Stats(ctx context.Context) (*response.StatsResponse, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	resp := response.StatsToResponse(stats)
	return &resp, nil
}

func flightReport(name string, rows []entity.FlightReportRow, err error) (*response.ReportResponse, error) {
	if err != nil {
		return nil, err
	}
	return &response.ReportResponse{Name: name, Rows: response.FlightReportToResponse(rows)}, nil
}
