package feed

import (
	"encoding/xml"
	"fmt"
	"io"

	"travel-booking/internal/data/entity"
	"travel-booking/pkg/utils"
)

type HotelRecord struct {
	HotelID        string   `xml:"hotel-id" json:"hotel-id" validate:"required,max=20"`
	HotelName      string   `xml:"hotel-name" json:"hotel-name" validate:"required,max=200"`
	City           string   `xml:"city" json:"city" validate:"required,max=100"`
	AvailableRooms *int     `xml:"available-rooms,omitempty" json:"available-rooms,omitempty" validate:"omitempty,min=0"`
	Date           string   `xml:"date,omitempty" json:"date,omitempty" validate:"omitempty,mdydate"`
	PricePerNight  *float64 `xml:"price-per-night" json:"price-per-night" validate:"required,min=0"`
}

type HotelFeed struct {
	XMLName xml.Name      `xml:"hotels" json:"-"`
	Hotels  []HotelRecord `xml:"hotel" json:"hotel" validate:"required,min=1,dive"`
}

func DecodeHotels(r io.Reader) (*HotelFeed, error) {
	var f HotelFeed
	if err := xml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode hotels feed: %w", err)
	}
	return &f, nil
}

func EncodeHotels(w io.Writer, f *HotelFeed) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("encode hotels feed: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode hotels feed: %w", err)
	}
	return enc.Flush()
}

func (r HotelRecord) ToEntity() (*entity.Hotel, error) {
	if r.PricePerNight == nil {
		return nil, fmt.Errorf("hotel %s: price-per-night is required", r.HotelID)
	}
	hotel := &entity.Hotel{
		HotelID:        r.HotelID,
		HotelName:      r.HotelName,
		City:           r.City,
		PricePerNight:  *r.PricePerNight,
		AvailableRooms: r.AvailableRooms,
	}
	if r.Date != "" {
		date, err := utils.ParseWireDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("hotel %s: %w", r.HotelID, err)
		}
		hotel.AvailableDate = &date
	}
	return hotel, nil
}

func HotelFromEntity(h *entity.Hotel) HotelRecord {
	price := h.PricePerNight
	rec := HotelRecord{
		HotelID:       h.HotelID,
		HotelName:     h.HotelName,
		City:          h.City,
		PricePerNight: &price,
	}
	if h.AvailableRooms != nil {
		rooms := *h.AvailableRooms
		rec.AvailableRooms = &rooms
	}
	if h.AvailableDate != nil {
		rec.Date = utils.FormatWireDate(*h.AvailableDate)
	}
	return rec
}
