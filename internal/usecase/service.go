package usecase

import (
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Flight    FlightService
	Hotel     HotelService
	Contact   ContactService
	Account   AccountService
	Report    ReportService
	Catalog   CatalogService
	Itinerary ItineraryService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	pricer := NewPricer(config.Booking)

	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Flight:    NewFlightService(repo, pricer, config.Booking, log),
		Hotel:     NewHotelService(repo, pricer, log),
		Contact:   NewContactService(repo.Contact, log),
		Account:   NewAccountService(repo, log),
		Report:    NewReportService(repo, config.Report, log),
		Catalog:   NewCatalogService(repo, log),
		Itinerary: NewItineraryService(repo.FlightBooking, log),
	}
}
