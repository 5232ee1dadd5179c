package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/database"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type FlightService interface {
	SearchFlights(ctx context.Context, req *request.FlightSearchRequest) ([]response.FlightResponse, error)
	BookFlight(ctx context.Context, user utils.SessionUser, req *request.BookFlightRequest) (*response.FlightBookingResponse, error)
}

type flightService struct {
	repo      *repository.Repository
	pricer    Pricer
	flexDays  int
	seatGuard bool
	log       *zap.Logger
	now       func() time.Time
}

func NewFlightService(repo *repository.Repository, pricer Pricer, config utils.BookingConfig, log *zap.Logger) FlightService {
	return &flightService{
		repo:      repo,
		pricer:    pricer,
		flexDays:  config.FlexDays,
		seatGuard: config.SeatGuard,
		log:       log.With(zap.String("service", "flight")),
		now:       time.Now,
	}
}

func (s *flightService) SearchFlights(ctx context.Context, req *request.FlightSearchRequest) ([]response.FlightResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	passengers := req.Adults + req.Children + req.Infants
	if passengers < 1 {
		return nil, invalidField("adults", "At least one passenger is required")
	}

	date, err := utils.ParseWireDate(req.DepartureDate)
	if err != nil {
		return nil, invalidField("departure_date", err.Error())
	}

	flex := s.flexDays
	if req.FlexDays != nil {
		flex = *req.FlexDays
	}
	from, to := utils.DateWindow(date, flex)

	flights, err := s.repo.Flight.Search(ctx, repository.FlightFilter{
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		From:        from,
		To:          to,
		MinSeats:    passengers,
	})
	if err != nil {
		return nil, err
	}

	results := make([]response.FlightResponse, 0, len(flights))
	for _, f := range flights {
		item := response.FlightToResponse(f)
		item.Quote = &response.PriceQuote{
			Adults:   req.Adults,
			Children: req.Children,
			Infants:  req.Infants,
			Total:    s.pricer.PartyTotal(f.Price, req.Adults, req.Children, req.Infants),
		}
		results = append(results, item)
	}

	s.log.Debug("Flight search",
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.Int("flex_days", flex),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// BookFlight prices the party from the stored fare and writes the booking,
// its passengers and tickets and the seat decrement as one unit.
func (s *flightService) BookFlight(ctx context.Context, user utils.SessionUser, req *request.BookFlightRequest) (*response.FlightBookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Book flight validation failed", zap.Error(err))
		return nil, err
	}

	passengers, err := parseTravellers(req.Passengers, "passengers")
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.Flight.FindByID(ctx, req.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, notFound("flight", req.FlightID)
	}

	booking := &entity.FlightBooking{
		FlightBookingID: utils.GenerateID(utils.PrefixFlightBooking),
		FlightID:        flight.FlightID,
		UserPhone:       user.Phone,
		BookingDate:     s.now(),
	}

	tickets := make([]*entity.TicketDetail, 0, len(passengers))
	var total float64
	for _, p := range passengers {
		fare := s.pricer.Fare(flight.Price, p.Category)
		total += fare
		tickets = append(tickets, &entity.TicketDetail{
			Ticket: entity.Ticket{
				TicketID:        utils.GenerateID(utils.PrefixTicket),
				FlightBookingID: booking.FlightBookingID,
				SSN:             p.SSN,
				Price:           fare,
			},
			Passenger: *p,
		})
	}
	booking.TotalPrice = round2(total)

	if req.TotalPrice != 0 && !pricesMatch(req.TotalPrice, booking.TotalPrice) {
		return nil, invalidField("total_price",
			fmt.Sprintf("Submitted total %.2f does not match %.2f", req.TotalPrice, booking.TotalPrice))
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.FlightBooking.Create(ctx, booking); err != nil {
			return err
		}

		for _, t := range tickets {
			if err := tx.FlightBooking.UpsertPassenger(ctx, &t.Passenger); err != nil {
				return err
			}
			if err := tx.FlightBooking.CreateTicket(ctx, &t.Ticket); err != nil {
				return err
			}
		}

		// without the guard the schema CHECK still stops seats going negative
		affected, err := tx.Flight.DecrementSeats(ctx, flight.FlightID, len(tickets), s.seatGuard)
		if database.IsCheckViolation(err) {
			return ErrInsufficientSeats
		}
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInsufficientSeats
		}

		return nil
	})
	if err != nil {
		s.log.Error("Flight booking rolled back",
			zap.Error(err),
			zap.String("flight_id", flight.FlightID),
			zap.String("user_phone", user.Phone),
		)
		if errors.Is(err, ErrInsufficientSeats) {
			return nil, fmt.Errorf("%w: %w", ErrBookingFailed, ErrInsufficientSeats)
		}
		return nil, fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	s.log.Info("Flight booked",
		zap.String("flight_booking_id", booking.FlightBookingID),
		zap.String("flight_id", flight.FlightID),
		zap.Int("passengers", len(tickets)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := &response.FlightBookingResponse{
		BookingID:  booking.FlightBookingID,
		FlightID:   booking.FlightID,
		TotalPrice: booking.TotalPrice,
		Tickets:    make([]response.TicketResponse, 0, len(tickets)),
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, response.TicketToResponse(t))
	}

	return resp, nil
}

// parseTravellers converts request travellers and applies the party rules:
// unique SSNs and an adult whenever a child or infant travels.
func parseTravellers(in []request.TravellerRequest, field string) ([]*entity.Passenger, error) {
	seen := make(map[string]bool, len(in))
	out := make([]*entity.Passenger, 0, len(in))
	hasAdult, hasMinor := false, false

	for i, t := range in {
		ssn := normalizeSSN(t.SSN)
		if seen[ssn] {
			return nil, invalidField(fmt.Sprintf("%s[%d].ssn", field, i), "Duplicate SSN in request")
		}
		seen[ssn] = true

		dob, err := utils.ParseWireDate(t.DateOfBirth)
		if err != nil {
			return nil, invalidField(fmt.Sprintf("%s[%d].date_of_birth", field, i), err.Error())
		}

		category := entity.Category(t.Category)
		if category == entity.CategoryAdult {
			hasAdult = true
		} else {
			hasMinor = true
		}

		out = append(out, &entity.Passenger{
			SSN:         ssn,
			FirstName:   strings.TrimSpace(t.FirstName),
			LastName:    strings.TrimSpace(t.LastName),
			DateOfBirth: dob,
			Category:    category,
		})
	}

	if hasMinor && !hasAdult {
		return nil, invalidField(field, "At least one adult must travel with children or infants")
	}

	return out, nil
}

// normalizeSSN stores nine-digit SSNs as ddd-dd-dddd.
func normalizeSSN(ssn string) string {
	if len(ssn) == 9 && !strings.Contains(ssn, "-") {
		return ssn[:3] + "-" + ssn[3:5] + "-" + ssn[5:]
	}
	return ssn
}
