package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

func newTestHotelService(t *testing.T) (pgxmock.PgxPoolIface, *hotelService) {
	mock, repo := newMockRepo(t)
	svc := NewHotelService(repo, testPricer(), zap.NewNop()).(*hotelService)
	svc.now = func() time.Time { return fixedNow }
	return mock, svc
}

func testHotel() *entity.Hotel {
	return &entity.Hotel{
		HotelID:       "H001",
		HotelName:     "Lone Star Inn",
		City:          "Austin",
		PricePerNight: 129.50,
		UpdatedAt:     fixedNow,
	}
}

func TestSearchHotelsWithStay(t *testing.T) {
	mock, svc := newTestHotelService(t)

	mock.ExpectQuery("FROM hotels").
		WithArgs("Austin").
		WillReturnRows(hotelRows(testHotel()))

	hotels, err := svc.SearchHotels(context.Background(), &request.HotelSearchRequest{
		City:         " Austin ",
		CheckInDate:  "10-01-2024",
		CheckOutDate: "10-04-2024",
		Adults:       2,
		Children:     1,
		Infants:      1,
	})
	if err != nil {
		t.Fatalf("SearchHotels returned error: %v", err)
	}
	if len(hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(hotels))
	}

	q := hotels[0].Quote
	if q == nil {
		t.Fatalf("expected a quote when dates are given")
	}
	if q.Rooms != 2 || q.Nights != 3 || q.Total != 777 {
		t.Errorf("unexpected quote %+v", q)
	}

	expectationsMet(t, mock)
}

func TestSearchHotelsWithoutStay(t *testing.T) {
	mock, svc := newTestHotelService(t)

	mock.ExpectQuery("FROM hotels").
		WithArgs("Austin").
		WillReturnRows(hotelRows(testHotel()))

	hotels, err := svc.SearchHotels(context.Background(), &request.HotelSearchRequest{City: "Austin", Adults: 1})
	if err != nil {
		t.Fatalf("SearchHotels returned error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].Quote != nil {
		t.Fatalf("expected one unquoted hotel, got %+v", hotels)
	}

	expectationsMet(t, mock)
}

func TestSearchHotelsRejectsHalfStay(t *testing.T) {
	mock, svc := newTestHotelService(t)

	_, err := svc.SearchHotels(context.Background(), &request.HotelSearchRequest{
		City:        "Austin",
		CheckInDate: "10-01-2024",
	})
	fieldErrors(t, err)

	expectationsMet(t, mock)
}

func TestBookHotelCommits(t *testing.T) {
	mock, svc := newTestHotelService(t)

	mock.ExpectQuery("FROM hotels").
		WithArgs("H001").
		WillReturnRows(hotelRows(testHotel()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO hotel_bookings").
		WithArgs(pgxmock.AnyArg(), "H001", testUser.Phone,
			date(2024, time.October, 1), date(2024, time.October, 4),
			1, 129.50, 388.50, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("INSERT INTO guests").
		WithArgs(pgxmock.AnyArg(), "123-45-6789", "Ada", "Lovelace", pgxmock.AnyArg(), entity.CategoryAdult).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery("INSERT INTO guests").
		WithArgs(pgxmock.AnyArg(), "987-65-4321", "Byron", "Lovelace", pgxmock.AnyArg(), entity.CategoryChild).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
	mock.ExpectCommit()

	booking, err := svc.BookHotel(context.Background(), testUser, &request.BookHotelRequest{
		HotelID:       "H001",
		CheckInDate:   "10-01-2024",
		CheckOutDate:  "10-04-2024",
		NumRooms:      1,
		PricePerNight: 129.50,
		TotalPrice:    388.50,
		Guests:        []request.TravellerRequest{adult("123-45-6789"), child("987-65-4321")},
	})
	if err != nil {
		t.Fatalf("BookHotel returned error: %v", err)
	}

	if !strings.HasPrefix(booking.BookingID, utils.PrefixHotelBooking) {
		t.Errorf("unexpected booking id %q", booking.BookingID)
	}
	if booking.Nights != 3 || booking.TotalPrice != 388.50 || booking.Guests != 2 {
		t.Errorf("unexpected booking %+v", booking)
	}

	expectationsMet(t, mock)
}

func TestBookHotelRollsBackOnGuestError(t *testing.T) {
	mock, svc := newTestHotelService(t)

	mock.ExpectQuery("FROM hotels").
		WithArgs("H001").
		WillReturnRows(hotelRows(testHotel()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO hotel_bookings").WithArgs(anyArgs(9)...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("INSERT INTO guests").WithArgs(anyArgs(6)...).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := svc.BookHotel(context.Background(), testUser, &request.BookHotelRequest{
		HotelID:      "H001",
		CheckInDate:  "10-01-2024",
		CheckOutDate: "10-02-2024",
		NumRooms:     1,
		Guests:       []request.TravellerRequest{adult("123-45-6789")},
	})
	if !errors.Is(err, ErrBookingFailed) {
		t.Fatalf("expected ErrBookingFailed, got %v", err)
	}

	expectationsMet(t, mock)
}

func TestBookHotelValidation(t *testing.T) {
	three := []request.TravellerRequest{adult("111-11-1111"), adult("222-22-2222"), adult("333-33-3333")}

	tests := map[string]struct {
		req   request.BookHotelRequest
		field string
	}{
		"too few rooms": {
			req: request.BookHotelRequest{
				HotelID: "H001", CheckInDate: "10-01-2024", CheckOutDate: "10-03-2024",
				NumRooms: 1, Guests: three,
			},
			field: "num_rooms",
		},
		"check-out before check-in": {
			req: request.BookHotelRequest{
				HotelID: "H001", CheckInDate: "10-03-2024", CheckOutDate: "10-03-2024",
				NumRooms: 1, Guests: three[:1],
			},
			field: "check_out_date",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mock, svc := newTestHotelService(t)

			_, err := svc.BookHotel(context.Background(), testUser, &tt.req)
			if fields := fieldErrors(t, err); fields[tt.field] == "" {
				t.Fatalf("expected %s error, got %v", tt.field, fields)
			}

			expectationsMet(t, mock)
		})
	}
}

func TestBookHotelRejectsChangedRate(t *testing.T) {
	mock, svc := newTestHotelService(t)

	mock.ExpectQuery("FROM hotels").
		WithArgs("H001").
		WillReturnRows(hotelRows(testHotel()))

	_, err := svc.BookHotel(context.Background(), testUser, &request.BookHotelRequest{
		HotelID:       "H001",
		CheckInDate:   "10-01-2024",
		CheckOutDate:  "10-02-2024",
		NumRooms:      1,
		PricePerNight: 99,
		Guests:        []request.TravellerRequest{adult("123-45-6789")},
	})
	if fields := fieldErrors(t, err); fields["price_per_night"] == "" {
		t.Fatalf("expected price_per_night error, got %v", fields)
	}

	expectationsMet(t, mock)
}
