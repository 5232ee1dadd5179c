package utils

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Admin.Phone != "222-222-2222" {
		t.Errorf("admin phone = %q", config.Admin.Phone)
	}
	if config.Booking.FlexDays != 3 {
		t.Errorf("flex days = %d, want 3", config.Booking.FlexDays)
	}
	if config.Booking.ChildMultiplier != 0.70 || config.Booking.InfantMultiplier != 0.10 {
		t.Errorf("multipliers = %v/%v", config.Booking.ChildMultiplier, config.Booking.InfantMultiplier)
	}
	if !config.Booking.SeatGuard {
		t.Errorf("seat guard should default to on")
	}
	if config.Report.WindowStart != "2024-09-01" || config.Report.WindowEnd != "2024-10-31" {
		t.Errorf("report window = %s..%s", config.Report.WindowStart, config.Report.WindowEnd)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SEARCH_FLEX_DAYS", "5")
	t.Setenv("GUESTS_PER_ROOM", "4")
	t.Setenv("REPORT_TEXAS_CITIES", " Dallas , Houston,,")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if config.Booking.FlexDays != 5 {
		t.Errorf("flex days = %d, want 5", config.Booking.FlexDays)
	}
	if config.Booking.GuestsPerRoom != 4 {
		t.Errorf("guests per room = %d, want 4", config.Booking.GuestsPerRoom)
	}
	if want := []string{"Dallas", "Houston"}; !reflect.DeepEqual(config.Report.TexasCities, want) {
		t.Errorf("texas cities = %v, want %v", config.Report.TexasCities, want)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"GUESTS_PER_ROOM":     "0",
		"SEARCH_FLEX_DAYS":    "-1",
		"SESSION_TTL_HOURS":   "0",
		"REPORT_WINDOW_START": "09-01-2024",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadConfig(""); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db",
		Port:     "5433",
		Name:     "travel_deals",
		User:     "postgres",
		Password: "secret",
	}

	want := "postgres://postgres:secret@db:5433/travel_deals?sslmode=disable"
	if got := c.DSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
