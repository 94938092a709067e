package configs

// Ingest bounds upload processing.
type Ingest struct {
	// Concurrency is the number of files parsed at once.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
	// UploadRate and UploadBurst limit upload requests per second across
	// all clients. A zero rate disables the limit.
	UploadRate  float64 `env:"UPLOAD_RATE" envDefault:"5"`
	UploadBurst int     `env:"UPLOAD_BURST" envDefault:"10"`
}
