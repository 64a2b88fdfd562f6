package main

import (
	"github.com/dmitrymomot/userdir/modules/directory"
	"github.com/dmitrymomot/userdir/pkg/httpserver"
	"github.com/dmitrymomot/userdir/pkg/validator"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"userdir"`
	LogFile     string `env:"LOG_FILE"`

	HTTP       httpserver.Config
	RandomUser RandomUserConfig
	Directory  directory.Config
}

// RandomUserConfig configures the upstream profile API.
type RandomUserConfig struct {
	URL           string   `env:"RANDOMUSER_URL" envDefault:"https://randomuser.me/api/"`
	Results       int      `env:"RANDOMUSER_RESULTS" envDefault:"24"`
	Nationalities []string `env:"RANDOMUSER_NAT" envSeparator:"," envDefault:"us,gb,ca,au,nl,fr,de,es,br,dk,ie,fi,nz,ch,be,tr"`
}

func (c Config) Validate() error {
	return validator.Apply(
		validator.RequiredString("SERVICE_NAME", c.ServiceName),
		validator.RequiredString("HTTP_ADDR", c.HTTP.Addr),
		validator.ValidURL("RANDOMUSER_URL", c.RandomUser.URL),
		validator.MinNum("RANDOMUSER_RESULTS", c.RandomUser.Results, 1),
		validator.MinNum("QR_SIZE", c.Directory.QRSize, 21),
	)
}
