package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

type HotelService interface {
	SearchHotels(ctx context.Context, req *request.HotelSearchRequest) ([]response.HotelResponse, error)
	BookHotel(ctx context.Context, user utils.SessionUser, req *request.BookHotelRequest) (*response.HotelBookingResponse, error)
}

type hotelService struct {
	repo   *repository.Repository
	pricer Pricer
	log    *zap.Logger
	now    func() time.Time
}

func NewHotelService(repo *repository.Repository, pricer Pricer, log *zap.Logger) HotelService {
	return &hotelService{
		repo:   repo,
		pricer: pricer,
		log:    log.With(zap.String("service", "hotel")),
		now:    time.Now,
	}
}

func (s *hotelService) SearchHotels(ctx context.Context, req *request.HotelSearchRequest) ([]response.HotelResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var nights, rooms int
	if req.CheckInDate != "" || req.CheckOutDate != "" {
		if req.CheckInDate == "" || req.CheckOutDate == "" {
			return nil, invalidField("check_out_date", "Check-in and check-out dates go together")
		}
		_, _, n, err := parseStay(req.CheckInDate, req.CheckOutDate)
		if err != nil {
			return nil, err
		}
		nights = n
		rooms = s.pricer.RoomsNeeded(req.Adults, req.Children)
	}

	hotels, err := s.repo.Hotel.FindByCity(ctx, strings.TrimSpace(req.City))
	if err != nil {
		return nil, err
	}

	results := make([]response.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		item := response.HotelToResponse(h)
		if nights > 0 {
			item.Quote = &response.HotelQuote{
				Rooms:  rooms,
				Nights: nights,
				Total:  s.pricer.HotelTotal(h.PricePerNight, rooms, nights),
			}
		}
		results = append(results, item)
	}

	return results, nil
}

// BookHotel charges rooms × nightly price × nights from the stored rate and
// writes the booking with its guests as one unit. Hotels carry no inventory.
func (s *hotelService) BookHotel(ctx context.Context, user utils.SessionUser, req *request.BookHotelRequest) (*response.HotelBookingResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Book hotel validation failed", zap.Error(err))
		return nil, err
	}

	checkIn, checkOut, nights, err := parseStay(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}

	guests, err := parseTravellers(req.Guests, "guests")
	if err != nil {
		return nil, err
	}

	var adults, children int
	for _, g := range guests {
		switch g.Category {
		case entity.CategoryAdult:
			adults++
		case entity.CategoryChild:
			children++
		}
	}
	if needed := s.pricer.RoomsNeeded(adults, children); req.NumRooms < needed {
		return nil, invalidField("num_rooms", fmt.Sprintf("At least %d rooms are required", needed))
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, req.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, notFound("hotel", req.HotelID)
	}

	if req.PricePerNight != 0 && !pricesMatch(req.PricePerNight, hotel.PricePerNight) {
		return nil, invalidField("price_per_night", "Nightly price has changed")
	}

	total := s.pricer.HotelTotal(hotel.PricePerNight, req.NumRooms, nights)
	if req.TotalPrice != 0 && !pricesMatch(req.TotalPrice, total) {
		return nil, invalidField("total_price",
			fmt.Sprintf("Submitted total %.2f does not match %.2f", req.TotalPrice, total))
	}

	booking := &entity.HotelBooking{
		HotelBookingID: utils.GenerateID(utils.PrefixHotelBooking),
		HotelID:        hotel.HotelID,
		UserPhone:      user.Phone,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumRooms:       req.NumRooms,
		PricePerNight:  hotel.PricePerNight,
		TotalPrice:     total,
		BookingDate:    s.now(),
	}

	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.HotelBooking.Create(ctx, booking); err != nil {
			return err
		}
		for _, g := range guests {
			guest := &entity.Guest{
				HotelBookingID: booking.HotelBookingID,
				SSN:            g.SSN,
				FirstName:      g.FirstName,
				LastName:       g.LastName,
				DateOfBirth:    g.DateOfBirth,
				Category:       g.Category,
			}
			if err := tx.HotelBooking.CreateGuest(ctx, guest); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("Hotel booking rolled back",
			zap.Error(err),
			zap.String("hotel_id", hotel.HotelID),
			zap.String("user_phone", user.Phone),
		)
		return nil, fmt.Errorf("%w: %w", ErrBookingFailed, err)
	}

	s.log.Info("Hotel booked",
		zap.String("hotel_booking_id", booking.HotelBookingID),
		zap.String("hotel_id", hotel.HotelID),
		zap.Int("nights", nights),
		zap.Float64("total_price", total),
	)

	return &response.HotelBookingResponse{
		BookingID:     booking.HotelBookingID,
		HotelID:       booking.HotelID,
		CheckInDate:   utils.FormatWireDate(checkIn),
		CheckOutDate:  utils.FormatWireDate(checkOut),
		Nights:        nights,
		NumRooms:      booking.NumRooms,
		PricePerNight: booking.PricePerNight,
		TotalPrice:    booking.TotalPrice,
		Guests:        len(guests),
	}, nil
}

func parseStay(checkInDate, checkOutDate string) (time.Time, time.Time, int, error) {
	checkIn, err := utils.ParseWireDate(checkInDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, invalidField("check_in_date", err.Error())
	}
	checkOut, err := utils.ParseWireDate(checkOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, 0, invalidField("check_out_date", err.Error())
	}
	nights := utils.NightsBetween(checkIn, checkOut)
	if nights < 1 {
		return time.Time{}, time.Time{}, 0, invalidField("check_out_date", "Check-out must be at least one night after check-in")
	}
	return checkIn, checkOut, nights, nil
}
