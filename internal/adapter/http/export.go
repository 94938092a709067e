package httpadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"campaign-lens/internal/adapter/xlsx"
	"campaign-lens/internal/core/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExport streams the campaign workbook.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ctx := r.Context()

	c, err := h.svc.Get(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	pacing, err := h.svc.Pacing(ctx, id, port.PacingReq{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	conversion, err := h.svc.Conversion(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	f, err := xlsx.Build(xlsx.Report{Campaign: *c, Pacing: pacing, Conversion: conversion})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	defer f.Close()

	name := strings.TrimSuffix(c.SourceID, ".csv") + ".xlsx"
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err = f.WriteTo(w); err != nil {
		h.log(r).Error("write workbook", "error", err)
	}
}
