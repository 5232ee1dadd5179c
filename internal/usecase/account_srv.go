package usecase

import (
	"context"

	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

// AccountService answers questions about the signed-in user's own bookings.
type AccountService interface {
	Bookings(ctx context.Context, user utils.SessionUser) (*response.AccountBookingsResponse, error)
	Passengers(ctx context.Context, user utils.SessionUser, bookingID string) ([]response.TicketResponse, error)
	BookingsInRange(ctx context.Context, user utils.SessionUser, from, to string) ([]response.ActivityResponse, error)
	FlightsBySSN(ctx context.Context, user utils.SessionUser, ssn string) ([]response.FlightBookingSummaryResponse, error)
}

type accountService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccountService(repo *repository.Repository, log *zap.Logger) AccountService {
	return &accountService{
		repo: repo,
		log:  log.With(zap.String("service", "account")),
	}
}

func (s *accountService) Bookings(ctx context.Context, user utils.SessionUser) (*response.AccountBookingsResponse, error) {
	flights, err := s.repo.FlightBooking.FindByUser(ctx, user.Phone)
	if err != nil {
		return nil, err
	}
	hotels, err := s.repo.HotelBooking.FindByUser(ctx, user.Phone)
	if err != nil {
		return nil, err
	}

	resp := &response.AccountBookingsResponse{
		Flights: make([]response.FlightBookingSummaryResponse, 0, len(flights)),
		Hotels:  make([]response.HotelBookingSummaryResponse, 0, len(hotels)),
	}
	for _, f := range flights {
		resp.Flights = append(resp.Flights, response.FlightSummaryToResponse(f))
	}
	for _, h := range hotels {
		resp.Hotels = append(resp.Hotels, response.HotelSummaryToResponse(h))
	}

	return resp, nil
}

// Passengers lists the tickets of one booking owned by user.
func (s *accountService) Passengers(ctx context.Context, user utils.SessionUser, bookingID string) ([]response.TicketResponse, error) {
	booking, err := s.repo.FlightBooking.FindByIDForUser(ctx, bookingID, user.Phone)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("flight booking", bookingID)
	}

	tickets, err := s.repo.FlightBooking.FindTickets(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	out := make([]response.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, response.TicketToResponse(t))
	}
	return out, nil
}

func (s *accountService) BookingsInRange(ctx context.Context, user utils.SessionUser, from, to string) ([]response.ActivityResponse, error) {
	if !utils.IsValidWireDate(from) {
		return nil, invalidField("from", "Invalid date. Use MM-DD-YYYY")
	}
	if !utils.IsValidWireDate(to) {
		return nil, invalidField("to", "Invalid date. Use MM-DD-YYYY")
	}
	fromDate, _ := utils.ParseWireDate(from)
	toDate, _ := utils.ParseWireDate(to)
	if toDate.Before(fromDate) {
		return nil, invalidField("to", "End date must not be before start date")
	}

	activity, err := s.repo.Activity.FindByUserInRange(ctx, user.Phone, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	out := make([]response.ActivityResponse, 0, len(activity))
	for _, a := range activity {
		out = append(out, response.ActivityToResponse(a))
	}
	return out, nil
}

func (s *accountService) FlightsBySSN(ctx context.Context, user utils.SessionUser, ssn string) ([]response.FlightBookingSummaryResponse, error) {
	if errs := utils.ValidateVar(ssn, "required,ssn"); errs != "" {
		return nil, invalidField("ssn", errs)
	}

	flights, err := s.repo.FlightBooking.FindByUserAndSSN(ctx, user.Phone, normalizeSSN(ssn))
	if err != nil {
		return nil, err
	}

	out := make([]response.FlightBookingSummaryResponse, 0, len(flights))
	for _, f := range flights {
		item := response.FlightSummaryToResponse(&f.FlightBookingSummary)
		item.TicketID = f.TicketID
		out = append(out, item)
	}
	return out, nil
}
