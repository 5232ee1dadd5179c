package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Admin    AdminConfig
	Booking  BookingConfig
	Report   ReportConfig
}

type AppConfig struct {
	Name           string
	Port           string
	Debug          bool
	LogPath        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

// DSN builds the postgres URL shared by the pool, the read handle and the migrator.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type SessionConfig struct {
	TTLHours int
}

type AdminConfig struct {
	Phone    string
	Password string
}

type BookingConfig struct {
	FlexDays         int
	ChildMultiplier  float64
	InfantMultiplier float64
	SeatGuard        bool
	GuestsPerRoom    int
}

type ReportConfig struct {
	WindowStart      string
	WindowEnd        string
	TexasCities      []string
	CaliforniaCities []string
}

// LoadConfig reads envFile (when present) into the process environment and
// resolves every setting through viper with defaults.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			Port:           v.GetString("PORT"),
			Debug:          v.GetBool("DEBUG"),
			LogPath:        v.GetString("LOG_PATH"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			Name:        v.GetString("DB_NAME"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			MaxConns:    v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: v.GetBool("DB_AUTOMIGRATE"),
		},
		Session: SessionConfig{
			TTLHours: v.GetInt("SESSION_TTL_HOURS"),
		},
		Admin: AdminConfig{
			Phone:    v.GetString("ADMIN_PHONE"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
		Booking: BookingConfig{
			FlexDays:         v.GetInt("SEARCH_FLEX_DAYS"),
			ChildMultiplier:  v.GetFloat64("CHILD_MULTIPLIER"),
			InfantMultiplier: v.GetFloat64("INFANT_MULTIPLIER"),
			SeatGuard:        v.GetBool("BOOKING_SEAT_GUARD"),
			GuestsPerRoom:    v.GetInt("GUESTS_PER_ROOM"),
		},
		Report: ReportConfig{
			WindowStart:      v.GetString("REPORT_WINDOW_START"),
			WindowEnd:        v.GetString("REPORT_WINDOW_END"),
			TexasCities:      splitList(v.GetString("REPORT_TEXAS_CITIES")),
			CaliforniaCities: splitList(v.GetString("REPORT_CALIFORNIA_CITIES")),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "travel-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "travel_deals")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTOMIGRATE", true)

	v.SetDefault("SESSION_TTL_HOURS", 24)

	v.SetDefault("ADMIN_PHONE", "222-222-2222")
	v.SetDefault("ADMIN_PASSWORD", "")

	v.SetDefault("SEARCH_FLEX_DAYS", 3)
	v.SetDefault("CHILD_MULTIPLIER", 0.70)
	v.SetDefault("INFANT_MULTIPLIER", 0.10)
	v.SetDefault("BOOKING_SEAT_GUARD", true)
	v.SetDefault("GUESTS_PER_ROOM", 2)

	v.SetDefault("REPORT_WINDOW_START", "2024-09-01")
	v.SetDefault("REPORT_WINDOW_END", "2024-10-31")
	v.SetDefault("REPORT_TEXAS_CITIES",
		"Dallas,Houston,Austin,San Antonio,Fort Worth,El Paso,Corpus Christi,Lubbock,Plano,Irving,Laredo")
	v.SetDefault("REPORT_CALIFORNIA_CITIES",
		"Los Angeles,San Francisco,San Diego,Sacramento,San Jose,Fresno,Oakland,Long Beach,Anaheim,Riverside,Irvine,Santa Ana,Stockton,Bakersfield")
}

func (c *Config) validate() error {
	if c.Booking.FlexDays < 0 {
		return fmt.Errorf("SEARCH_FLEX_DAYS must not be negative")
	}
	if c.Booking.ChildMultiplier < 0 || c.Booking.InfantMultiplier < 0 {
		return fmt.Errorf("price multipliers must not be negative")
	}
	if c.Booking.GuestsPerRoom < 1 {
		return fmt.Errorf("GUESTS_PER_ROOM must be at least 1")
	}
	if c.Session.TTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1")
	}
	if _, err := ParseISODate(c.Report.WindowStart); err != nil {
		return fmt.Errorf("REPORT_WINDOW_START: %w", err)
	}
	if _, err := ParseISODate(c.Report.WindowEnd); err != nil {
		return fmt.Errorf("REPORT_WINDOW_END: %w", err)
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
