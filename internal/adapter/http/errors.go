package httpadapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"campaign-lens/internal/core/port"
)

// APIError is the JSON body of every error response.
type APIError struct {
	StatusCode int    `json:"status_code"`
	ErrorCode  string `json:"error_code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Render implements render.Renderer.
func (e *APIError) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// FieldError describes one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func newAPIError(status int, code, msg string, details any) *APIError {
	return &APIError{StatusCode: status, ErrorCode: code, Message: msg, Details: details}
}

func errInvalidParam(field string, err error) *APIError {
	return newAPIError(http.StatusBadRequest, "INVALID_PARAMETER", "invalid query parameter",
		[]FieldError{{Field: field, Message: err.Error()}})
}

func errValidation(err error) *APIError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return newAPIError(http.StatusBadRequest, "VALIDATION_FAILED", err.Error(), nil)
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
	}
	return newAPIError(http.StatusBadRequest, "VALIDATION_FAILED", "request validation failed", fields)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fe.Field() + " must be a YYYY-MM-DD date"
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

// renderError maps a usecase error to a response. Unknown errors are
// logged and hidden behind a 500.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
	case errors.Is(err, port.ErrCampaignNotFound):
		apiErr = newAPIError(http.StatusNotFound, "NOT_FOUND", "campaign not found", nil)
	case errors.Is(err, port.ErrEmptyUpload):
		apiErr = newAPIError(http.StatusBadRequest, "EMPTY_UPLOAD", err.Error(), nil)
	default:
		h.log(r).Error("request failed", "error", err)
		apiErr = newAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal error", nil)
	}
	if err := render.Render(w, r, apiErr); err != nil {
		h.log(r).Error("render error", "error", err)
	}
}
