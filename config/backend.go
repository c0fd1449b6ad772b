package config

import "time"

// BackendConfig contains connection settings for the hosted data service.
// All application data (cars, profiles, favorites, test drive requests)
// lives behind this service; the app keeps no local database.
type BackendConfig struct {
	// URL is the REST root of the data service.
	URL string `env:"URL,required"`

	// AnonKey is the anonymous API key sent with every request.
	AnonKey string `env:"ANON_KEY,required"`

	// Timeout bounds each individual backend request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
}
