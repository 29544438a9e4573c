package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/srgjo27/seat_selection/internal/core/domain"
	"github.com/srgjo27/seat_selection/internal/core/services"
)

type ToggleSeatRequest struct {
	SeatID string `json:"seat_id" validate:"required"`
}

type SelectSeatsRequest struct {
	SeatIDs []string `json:"seat_ids" validate:"required,min=1,dive,required"`
}

type AdjacentResponse struct {
	Count   int                          `json:"count"`
	Results []domain.AdjacentSeatsResult `json:"results"`
}

type SeatingHandler struct {
	svc       *services.SeatingService
	validator *validator.Validate
	logger    *slog.Logger
}

func NewSeatingHandler(svc *services.SeatingService, logger *slog.Logger) *SeatingHandler {
	return &SeatingHandler{
		svc:       svc,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (h *SeatingHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venue, err := h.svc.Venue()
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, venue)
}

func (h *SeatingHandler) GetSeat(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.SeatDetails(chi.URLParam(r, "seatID"))
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, details)
}

func (h *SeatingHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Summary())
}

func (h *SeatingHandler) ToggleSeat(w http.ResponseWriter, r *http.Request) {
	var req ToggleSeatRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	summary, err := h.svc.ToggleSeat(r.Context(), req.SeatID)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, summary)
}

func (h *SeatingHandler) SelectSeats(w http.ResponseWriter, r *http.Request) {
	var req SelectSeatsRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	summary, err := h.svc.CommitRun(r.Context(), req.SeatIDs)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, summary)
}

func (h *SeatingHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Clear(r.Context()))
}

func (h *SeatingHandler) FindAdjacent(w http.ResponseWriter, r *http.Request) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "count must be an integer")
		return
	}

	results, err := h.svc.FindAdjacent(count)
	if err != nil {
		h.domainErrorResponse(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, AdjacentResponse{
		Count:   len(results),
		Results: results,
	})
}
