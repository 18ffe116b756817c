package configs

import (
	"net/url"
	"time"
)

// AdServer configures the ad server API gateway and the values stamped onto
// every line item. RateLimit is in requests per second; zero disables
// client-side throttling. TraffickerID is the ad server user that owns
// orders created by this service.
type AdServer struct {
	BaseURL        url.URL `env:"BASE_URL" envDefault:"http://localhost:8081/api/v1"`
	Network        string  `env:"NETWORK"`
	Token          string  `env:"TOKEN"`
	TimeoutSeconds int     `env:"TIMEOUT_SECONDS" envDefault:"30"`
	RateLimit      float64 `env:"RATE_LIMIT" envDefault:"5"`
	Burst          int     `env:"BURST" envDefault:"5"`

	TimeZone     string `env:"TIME_ZONE" envDefault:"America/New_York"`
	Currency     string `env:"CURRENCY" envDefault:"USD"`
	TraffickerID int64  `env:"TRAFFICKER_ID"`
	AdUnitID     string `env:"AD_UNIT_ID" envDefault:"mw_card_test_1"`
}

// Timeout returns the HTTP timeout, defaulting to 30 seconds.
func (c AdServer) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Location loads the time zone schedules are expressed in.
func (c AdServer) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}
