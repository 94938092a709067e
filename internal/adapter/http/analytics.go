package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func (h *Handler) handlePacing(w http.ResponseWriter, r *http.Request) {
	req, err := parsePacing(h.validate, r.URL.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	m, err := h.svc.Pacing(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	respond(w, r, m, "campaign summary has no usable start or end date")
}

func (h *Handler) handleSpendCurve(w http.ResponseWriter, r *http.Request) {
	points, err := h.svc.SpendCurve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if points == nil {
		render.JSON(w, r, unavailable{Reason: "campaign summary has no usable start or end date"})
		return
	}
	render.JSON(w, r, points)
}

func (h *Handler) handlePromo(w http.ResponseWriter, r *http.Request) {
	req, err := parsePromo(h.validate, r.URL.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	a, err := h.svc.Promo(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	respond(w, r, a, "promo window ends before it starts")
}

func (h *Handler) handleConversion(w http.ResponseWriter, r *http.Request) {
	cm, err := h.svc.Conversion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	respond(w, r, cm, "campaign has no offers")
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	req, err := parseSummary(h.validate, r.URL.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	rep, err := h.svc.Summary(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, rep)
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	req, err := parseSnapshot(h.validate, r.URL.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	s, err := h.svc.Snapshot(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, s)
}

func (h *Handler) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	req, err := parsePortfolio(h.validate, r.URL.Query())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	p, err := h.svc.Portfolio(r.Context(), req)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	render.JSON(w, r, p)
}
