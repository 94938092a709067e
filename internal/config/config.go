package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-lens/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional PostgreSQL store. Campaigns are kept in
	// memory when it is disabled.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	AMQP configs.AMQP `envPrefix:"AMQP_"`

	Trace configs.Trace `envPrefix:"TRACE_"`

	Ingest configs.Ingest `envPrefix:"INGEST_"`
}

// Load reads configuration from environment variables into a Config. All
// fields take their defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
