package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/internal/sora"
	"github.com/chrmchris-a11y/SKYWORKS-AI-SUITE.V5-sub001/pkg/logger"
)

// Error types carried in ErrorResponse.Type
const (
	ErrorTypeValidation  = "validation"
	ErrorTypeGreyCell    = "grey_cell"
	ErrorTypeSchema      = "schema"
	ErrorTypeBadRequest  = "bad_request"
	ErrorTypeTooLarge    = "payload_too_large"
	ErrorTypeRateLimited = "rate_limited"
	ErrorTypeInternal    = "internal"
)

// FieldError names one rejected payload field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// GreyCellDetail locates the undefined table cell a request landed on
type GreyCellDetail struct {
	Version string `json:"version"`
	Table   string `json:"table"`
	Row     string `json:"row"`
	Column  string `json:"column"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Fields    []FieldError    `json:"fields,omitempty"`
	GreyCell  *GreyCellDetail `json:"grey_cell,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	resp.RequestID = middleware.GetReqID(r.Context())
	writeJSON(w, status, resp)
}

// statusFor maps an error from the builders or the service to a status code
// and response body
func statusFor(err error) (int, ErrorResponse) {
	var grey *sora.GreyCellError
	var schemaErr *SchemaError
	var tooLarge *http.MaxBytesError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &grey):
		return http.StatusUnprocessableEntity, ErrorResponse{
			Type:    ErrorTypeGreyCell,
			Message: err.Error(),
			GreyCell: &GreyCellDetail{
				Version: string(grey.Version),
				Table:   grey.Table,
				Row:     grey.Row,
				Column:  grey.Column,
			},
		}

	case errors.Is(err, sora.ErrValidation):
		resp := ErrorResponse{Type: ErrorTypeValidation, Message: "request failed validation"}
		for _, fe := range sora.FieldErrors(err) {
			resp.Fields = append(resp.Fields, FieldError{Field: fe.Field, Message: fe.Message, Value: fe.Value})
		}
		if len(resp.Fields) == 1 {
			resp.Message = err.Error()
		}
		return http.StatusBadRequest, resp

	case errors.As(err, &schemaErr):
		return http.StatusBadRequest, ErrorResponse{
			Type:    ErrorTypeSchema,
			Message: schemaErr.Error(),
			Fields:  schemaErr.Fields,
		}

	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, ErrorResponse{
			Type:    ErrorTypeTooLarge,
			Message: "request body is too large",
		}

	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, errEmptyBody):
		return http.StatusBadRequest, ErrorResponse{
			Type:    ErrorTypeBadRequest,
			Message: "malformed JSON: " + err.Error(),
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Type:    ErrorTypeInternal,
		Message: "internal error",
	}
}

// writeError translates err and logs server-side failures
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			logger.String("request_id", middleware.GetReqID(r.Context())),
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
	}
	writeErrorResponse(w, r, status, resp)
}
