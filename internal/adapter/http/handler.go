package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"campaign-lens/internal/core/port"
)

// defaultMaxUploadBytes bounds one multipart upload request.
const defaultMaxUploadBytes = 32 << 20

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes and validates requests, calls the use case and renders
// JSON through go-chi/render.
type Handler struct {
	svc      port.CampaignUseCase
	logger   *slog.Logger
	router   chi.Router
	validate *validator.Validate

	maxUploadBytes int64
}

// Options tunes optional parts of the handler.
type Options struct {
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// UploadLimiter throttles POST /campaigns when set.
	UploadLimiter *rate.Limiter
	// MaxUploadBytes caps an upload request body. Zero uses 32 MiB.
	MaxUploadBytes int64
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		svc:            svc,
		logger:         logger,
		validate:       validator.New(),
		maxUploadBytes: opts.MaxUploadBytes,
	}
	if h.maxUploadBytes <= 0 {
		h.maxUploadBytes = defaultMaxUploadBytes
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.With(rateLimit(opts.UploadLimiter)).Post("/", h.handleUpload)
			r.Get("/", h.handleList)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGet)
				r.Delete("/", h.handleDelete)
				r.Get("/pacing", h.handlePacing)
				r.Get("/spend-curve", h.handleSpendCurve)
				r.Get("/promo", h.handlePromo)
				r.Get("/conversion", h.handleConversion)
				r.Get("/summary", h.handleSummary)
				r.Get("/snapshot", h.handleSnapshot)
				r.Get("/export.xlsx", h.handleExport)
			})
		})
		r.Get("/portfolio", h.handlePortfolio)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// unavailable is returned with 200 when a campaign lacks the data a view
// needs.
type unavailable struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// respond renders v, or the unavailable marker when v is a nil pointer.
func respond[T any](w http.ResponseWriter, r *http.Request, v *T, reason string) {
	if v == nil {
		render.JSON(w, r, unavailable{Reason: reason})
		return
	}
	render.JSON(w, r, v)
}
