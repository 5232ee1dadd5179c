package feed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"travel-booking/pkg/utils"
)

const hotelsXML = `<?xml version="1.0" encoding="UTF-8"?>
<hotels>
  <hotel>
    <hotel-id>H001</hotel-id>
    <hotel-name>Lone Star Inn</hotel-name>
    <city>Austin</city>
    <price-per-night>129.50</price-per-night>
  </hotel>
  <hotel>
    <hotel-id>H002</hotel-id>
    <hotel-name>Bay View</hotel-name>
    <city>San Francisco</city>
    <price-per-night>310</price-per-night>
  </hotel>
</hotels>`

func TestDecodeHotels(t *testing.T) {
	f, err := DecodeHotels(strings.NewReader(hotelsXML))
	if err != nil {
		t.Fatalf("DecodeHotels returned error: %v", err)
	}
	if errs := utils.ValidateStruct(f); len(errs) > 0 {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if len(f.Hotels) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(f.Hotels))
	}

	hotel, err := f.Hotels[0].ToEntity()
	if err != nil {
		t.Fatalf("ToEntity returned error: %v", err)
	}
	if hotel.HotelID != "H001" || hotel.HotelName != "Lone Star Inn" || hotel.City != "Austin" || hotel.PricePerNight != 129.50 {
		t.Errorf("unexpected hotel %+v", hotel)
	}
}

func TestDecodeHotelsMissingPrice(t *testing.T) {
	body := `<hotels><hotel><hotel-id>H9</hotel-id><hotel-name>No Price</hotel-name><city>Dallas</city></hotel></hotels>`

	f, err := DecodeHotels(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeHotels returned error: %v", err)
	}
	if errs := utils.ValidateStruct(f); errs["hotel[0].price-per-night"] == "" {
		t.Fatalf("expected missing price error, got %v", errs)
	}
	if _, err := f.Hotels[0].ToEntity(); err == nil {
		t.Fatalf("expected ToEntity to reject a missing price")
	}
}

func TestEncodeHotels(t *testing.T) {
	f, err := DecodeHotels(strings.NewReader(hotelsXML))
	if err != nil {
		t.Fatalf("DecodeHotels returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeHotels(&buf, f); err != nil {
		t.Fatalf("EncodeHotels returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Errorf("expected XML header, got %q", out[:20])
	}
	for _, want := range []string{"<hotels>", "<hotel-id>H002</hotel-id>", "<price-per-night>310</price-per-night>"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded feed missing %s:\n%s", want, out)
		}
	}

	again, err := DecodeHotels(&buf)
	if err != nil {
		t.Fatalf("re-decoding export failed: %v", err)
	}
	if len(again.Hotels) != 2 || again.Hotels[1].City != "San Francisco" {
		t.Fatalf("unexpected re-decoded feed %+v", again.Hotels)
	}
}

func TestHotelAvailabilityRoundTrip(t *testing.T) {
	body := `<hotels><hotel><hotel-id>H003</hotel-id><hotel-name>Riverwalk Suites</hotel-name><city>San Antonio</city>` +
		`<available-rooms>12</available-rooms><date>09-15-2024</date><price-per-night>149.99</price-per-night></hotel></hotels>`

	f, err := DecodeHotels(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeHotels returned error: %v", err)
	}
	if errs := utils.ValidateStruct(f); len(errs) > 0 {
		t.Fatalf("unexpected validation errors %v", errs)
	}

	hotel, err := f.Hotels[0].ToEntity()
	if err != nil {
		t.Fatalf("ToEntity returned error: %v", err)
	}
	if hotel.AvailableRooms == nil || *hotel.AvailableRooms != 12 {
		t.Fatalf("rooms = %v, want 12", hotel.AvailableRooms)
	}
	if hotel.AvailableDate == nil || !hotel.AvailableDate.Equal(time.Date(2024, time.September, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date = %v, want 2024-09-15", hotel.AvailableDate)
	}

	var buf bytes.Buffer
	if err := EncodeHotels(&buf, &HotelFeed{Hotels: []HotelRecord{HotelFromEntity(hotel)}}); err != nil {
		t.Fatalf("EncodeHotels returned error: %v", err)
	}

	out := buf.String()
	want := "<city>San Antonio</city>\n    <available-rooms>12</available-rooms>\n    <date>09-15-2024</date>\n    <price-per-night>149.99</price-per-night>"
	if !strings.Contains(out, want) {
		t.Fatalf("encoded feed lost availability:\n%s", out)
	}
}

func TestHotelAvailabilityOptional(t *testing.T) {
	f, err := DecodeHotels(strings.NewReader(hotelsXML))
	if err != nil {
		t.Fatalf("DecodeHotels returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeHotels(&buf, f); err != nil {
		t.Fatalf("EncodeHotels returned error: %v", err)
	}
	if out := buf.String(); strings.Contains(out, "<available-rooms>") || strings.Contains(out, "<date>") {
		t.Fatalf("absent availability must stay absent:\n%s", out)
	}
}

func TestHotelAvailabilityBadDate(t *testing.T) {
	body := `<hotels><hotel><hotel-id>H004</hotel-id><hotel-name>Late Inn</hotel-name><city>Dallas</city>` +
		`<available-rooms>-1</available-rooms><date>2024-09-15</date><price-per-night>80</price-per-night></hotel></hotels>`

	f, err := DecodeHotels(strings.NewReader(body))
	if err != nil {
		t.Fatalf("DecodeHotels returned error: %v", err)
	}

	errs := utils.ValidateStruct(f)
	for _, key := range []string{"hotel[0].date", "hotel[0].available-rooms"} {
		if errs[key] == "" {
			t.Errorf("expected error for %s, got %v", key, errs)
		}
	}
}
