package utils

import (
	"testing"
)

type travellerFixture struct {
	SSN         string `json:"ssn" validate:"required,ssn"`
	DateOfBirth string `json:"date_of_birth" validate:"required,mdydate"`
}

type bookingFixture struct {
	Phone      string             `json:"phone" validate:"required,usphone"`
	Departs    string             `json:"departs" validate:"omitempty,hhmm"`
	Travellers []travellerFixture `json:"travellers" validate:"required,min=1,dive"`
}

func TestValidateStruct(t *testing.T) {
	valid := bookingFixture{
		Phone:   "555-123-4567",
		Departs: "07:45",
		Travellers: []travellerFixture{
			{SSN: "123-45-6789", DateOfBirth: "01-31-1990"},
			{SSN: "987654321", DateOfBirth: "02-29-2020"},
		},
	}
	if errs := ValidateStruct(valid); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	invalid := bookingFixture{
		Phone:   "5551234567",
		Departs: "25:00",
		Travellers: []travellerFixture{
			{SSN: "123-45-6789", DateOfBirth: "01-31-1990"},
			{SSN: "12-345-6789", DateOfBirth: "02-30-2021"},
		},
	}
	errs := ValidateStruct(invalid)

	want := map[string]string{
		"phone":                       "Invalid phone format. Use ddd-ddd-dddd",
		"departs":                     "Invalid time. Use HH:MM",
		"travellers[1].ssn":           "Invalid SSN format. Use ddd-dd-dddd",
		"travellers[1].date_of_birth": "Invalid date. Use MM-DD-YYYY",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %v", len(want), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("errs[%q] = %q, want %q", field, errs[field], msg)
		}
	}
}

func TestValidateStructRequiresTravellers(t *testing.T) {
	errs := ValidateStruct(bookingFixture{Phone: "555-123-4567"})
	if errs["travellers"] != "This field is required" {
		t.Fatalf("expected travellers required, got %v", errs)
	}
}

func TestValidateVar(t *testing.T) {
	if msg := ValidateVar("123-45-6789", "required,ssn"); msg != "" {
		t.Fatalf("expected valid ssn, got %q", msg)
	}
	if msg := ValidateVar("12345", "required,ssn"); msg != "Invalid SSN format. Use ddd-dd-dddd" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := ValidateVar("", "required,ssn"); msg != "This field is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	got := FormatValidationErrors(map[string]string{
		"phone": "bad",
		"email": "worse",
	})
	if got != "email: worse; phone: bad" {
		t.Fatalf("FormatValidationErrors = %q", got)
	}
}
