package config

import (
	"fmt"
	"strconv"
	"time"
)

// ClientConfig holds the settings of the terminal booking client
type ClientConfig struct {
	APIURL      string
	Token       string
	DToken      string
	Environment string
	Timeout     time.Duration
	Location    *time.Location
}

// LoadClientConfig loads the client configuration from environment variables
func LoadClientConfig() (*ClientConfig, error) {
	seconds, err := strconv.Atoi(getEnv("BOOKING_TIMEOUT_SECONDS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEOUT_SECONDS: %w", err)
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("invalid BOOKING_TIMEOUT_SECONDS: must be positive, got %d", seconds)
	}

	// must match the server's TIMEZONE for date keys to agree
	loc, err := time.LoadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	return &ClientConfig{
		APIURL:      getEnv("BOOKING_API_URL", "http://localhost:4000"),
		Token:       getEnv("BOOKING_TOKEN", ""),
		DToken:      getEnv("BOOKING_DTOKEN", ""),
		Environment: getEnv("APP_ENV", "development"),
		Timeout:     time.Duration(seconds) * time.Second,
		Location:    loc,
	}, nil
}
