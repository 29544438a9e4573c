package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/srgjo27/seat_selection/internal/core/domain"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
	ErrorID   string `json:"error_id,omitempty"`
}

func (h *SeatingHandler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "method", r.Method, "uri", r.URL.RequestURI(), "error", err)
	}
}

func (h *SeatingHandler) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, status, ErrorResponse{
		Error:     message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// serverErrorResponse hides err from the client and returns an id that can be
// matched against the log line.
func (h *SeatingHandler) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorID := uuid.NewString()
	h.logger.Error(err.Error(), "method", r.Method, "uri", r.URL.RequestURI(), "error_id", errorID)

	h.writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		RequestID: middleware.GetReqID(r.Context()),
		ErrorID:   errorID,
	})
}

func (h *SeatingHandler) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSeatNotFound), errors.Is(err, domain.ErrVenueNotFound):
		h.errorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrSeatUnavailable), errors.Is(err, domain.ErrCapacityExceeded):
		h.errorResponse(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidSeatCount):
		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		h.serverErrorResponse(w, r, err)
	}
}

func (h *SeatingHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			h.errorResponse(w, r, http.StatusBadRequest, "invalid field "+verrs[0].Field()+": "+verrs[0].Tag())
			return false
		}

		h.errorResponse(w, r, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}
