package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// ItineraryService renders printable documents for a user's bookings.
type ItineraryService interface {
	FlightItinerary(ctx context.Context, user utils.SessionUser, bookingID string) ([]byte, error)
}

type itineraryService struct {
	bookingRepo repository.FlightBookingRepository
	log         *zap.Logger
}

func NewItineraryService(bookingRepo repository.FlightBookingRepository, log *zap.Logger) ItineraryService {
	return &itineraryService{
		bookingRepo: bookingRepo,
		log:         log.With(zap.String("service", "itinerary")),
	}
}

func (s *itineraryService) FlightItinerary(ctx context.Context, user utils.SessionUser, bookingID string) ([]byte, error) {
	booking, err := s.bookingRepo.FindByIDForUser(ctx, bookingID, user.Phone)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, notFound("flight booking", bookingID)
	}

	tickets, err := s.bookingRepo.FindTickets(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	pdf, err := buildFlightItineraryPDF(user, booking, tickets)
	if err != nil {
		s.log.Error("Failed to render itinerary", zap.Error(err), zap.String("flight_booking_id", bookingID))
		return nil, err
	}
	return pdf, nil
}

func buildFlightItineraryPDF(user utils.SessionUser, b *entity.FlightBookingSummary, tickets []*entity.TicketDetail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Flight Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FLIGHT ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Booking      : " + b.FlightBookingID,
		"Booked by    : " + strings.TrimSpace(user.FirstName+" "+user.LastName) + " (" + user.Phone + ")",
		"Flight       : " + b.FlightID,
		"Route        : " + b.Origin + " -> " + b.Destination,
		"Departure    : " + utils.FormatWireDate(b.DepartureDate) + " " + b.DepartureTime,
		"Arrival      : " + utils.FormatWireDate(b.ArrivalDate) + " " + b.ArrivalTime,
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	widths := []float64{40, 60, 35, 25, 25}
	for i, h := range []string{"Ticket", "Passenger", "Date of birth", "Category", "Price"} {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, t := range tickets {
		cells := []string{
			t.TicketID,
			t.FirstName + " " + t.LastName,
			utils.FormatWireDate(t.DateOfBirth),
			string(t.Category),
			fmt.Sprintf("%.2f", t.Price),
		}
		for i, c := range cells {
			align := "L"
			if i == len(cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 7, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %.2f", b.TotalPrice))
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}
