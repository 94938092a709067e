package httpadapter

import (
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"campaign-lens/internal/core/analytics"
	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/port"
	"campaign-lens/internal/core/report"
)

// Query DTOs. Dates are ISO calendar dates.

type pacingQuery struct {
	EndDate string `validate:"omitempty,datetime=2006-01-02"`
	Extend  int    `validate:"gte=0,lte=3650"`
	Unit    string `validate:"omitempty,oneof=days weeks months"`
}

type promoQuery struct {
	Start string `validate:"required,datetime=2006-01-02"`
	End   string `validate:"required,datetime=2006-01-02"`
	Type  string `validate:"max=64"`
}

type summaryQuery struct {
	From        string `validate:"omitempty,datetime=2006-01-02"`
	To          string `validate:"omitempty,datetime=2006-01-02"`
	CompareFrom string `validate:"omitempty,datetime=2006-01-02"`
	CompareTo   string `validate:"omitempty,datetime=2006-01-02"`
}

type snapshotQuery struct {
	Type       string `validate:"omitempty,oneof=overview pacing conversion promo chat recap report"`
	PromoStart string `validate:"omitempty,datetime=2006-01-02"`
	PromoEnd   string `validate:"omitempty,datetime=2006-01-02"`
	PromoType  string `validate:"max=64"`
	Question   string `validate:"max=2000"`
}

type portfolioQuery struct {
	Sort string `validate:"omitempty,oneof=name pacing_status days_variance roas sales spend budget budget_pct days_remaining offer_count"`
	Dir  string `validate:"omitempty,oneof=asc desc"`
}

func parsePacing(v *validator.Validate, q url.Values) (port.PacingReq, error) {
	dto := pacingQuery{EndDate: q.Get("end_date"), Unit: q.Get("unit")}
	if s := q.Get("extend"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return port.PacingReq{}, errInvalidParam("extend", err)
		}
		dto.Extend = n
	}
	if err := v.Struct(dto); err != nil {
		return port.PacingReq{}, errValidation(err)
	}

	req := port.PacingReq{EndDate: isoDate(dto.EndDate)}
	if dto.Extend > 0 {
		unit, err := domain.ParseExtensionUnit(dto.Unit)
		if err != nil {
			return port.PacingReq{}, errInvalidParam("unit", err)
		}
		req.Extension = &domain.Extension{Amount: dto.Extend, Unit: unit}
	}
	return req, nil
}

func parsePromo(v *validator.Validate, q url.Values) (port.PromoReq, error) {
	dto := promoQuery{Start: q.Get("start"), End: q.Get("end"), Type: q.Get("type")}
	if err := v.Struct(dto); err != nil {
		return port.PromoReq{}, errValidation(err)
	}
	return port.PromoReq{Start: isoDate(dto.Start), End: isoDate(dto.End), Type: dto.Type}, nil
}

func parseSummary(v *validator.Validate, q url.Values) (port.SummaryReq, error) {
	dto := summaryQuery{
		From:        q.Get("from"),
		To:          q.Get("to"),
		CompareFrom: q.Get("compare_from"),
		CompareTo:   q.Get("compare_to"),
	}
	if err := v.Struct(dto); err != nil {
		return port.SummaryReq{}, errValidation(err)
	}
	return port.SummaryReq(dto), nil
}

func parseSnapshot(v *validator.Validate, q url.Values) (port.SnapshotReq, error) {
	dto := snapshotQuery{
		Type:       q.Get("type"),
		PromoStart: q.Get("promo_start"),
		PromoEnd:   q.Get("promo_end"),
		PromoType:  q.Get("promo_type"),
		Question:   q.Get("question"),
	}
	if err := v.Struct(dto); err != nil {
		return port.SnapshotReq{}, errValidation(err)
	}
	t, err := report.ParseAnalysisType(dto.Type)
	if err != nil {
		return port.SnapshotReq{}, errInvalidParam("type", err)
	}
	return port.SnapshotReq{
		Type:       t,
		PromoStart: isoDate(dto.PromoStart),
		PromoEnd:   isoDate(dto.PromoEnd),
		PromoType:  dto.PromoType,
		Question:   dto.Question,
	}, nil
}

func parsePortfolio(v *validator.Validate, q url.Values) (port.PortfolioReq, error) {
	dto := portfolioQuery{Sort: q.Get("sort"), Dir: q.Get("dir")}
	if err := v.Struct(dto); err != nil {
		return port.PortfolioReq{}, errValidation(err)
	}
	key, err := analytics.ParseSortKey(dto.Sort)
	if err != nil {
		return port.PortfolioReq{}, errInvalidParam("sort", err)
	}
	return port.PortfolioReq{Sort: key, Desc: dto.Dir == "desc"}, nil
}

// isoDate parses an already validated date; empty yields the zero time.
func isoDate(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}
