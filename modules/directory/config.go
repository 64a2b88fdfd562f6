package directory

import "time"

// Config holds the environment-driven directory settings.
type Config struct {
	Title          string        `env:"DIRECTORY_TITLE" envDefault:"User directory"`
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE" envDefault:"180ms"`
	QRSize         int           `env:"QR_SIZE" envDefault:"256"`
}
