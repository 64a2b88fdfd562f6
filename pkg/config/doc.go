// Package config loads environment variables into typed structs.
//
// Load reads a .env file from the working directory once per process (a
// missing file is fine) and then parses the environment into the target with
// github.com/caarlos0/env/v11, honoring `env`, `envDefault` and `envPrefix`
// tags and nested structs:
//
//	type Config struct {
//		Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
