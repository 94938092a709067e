package configs

// Trace configures OpenTelemetry tracing.
type Trace struct {
	// Stdout exports spans to standard output. Tracing is a no-op otherwise.
	Stdout      bool    `env:"STDOUT" envDefault:"false"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"campaign-lens"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}
