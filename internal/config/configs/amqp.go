package configs

// AMQP configures the campaign event publisher. Events are dropped when URL
// is empty.
type AMQP struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"campaign-lens.events"`
}

// Enabled reports whether a broker is configured.
func (c AMQP) Enabled() bool {
	return c.URL != ""
}
