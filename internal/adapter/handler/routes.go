package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *SeatingHandler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(h.logRequest)
	r.Use(h.recoverPanic)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.errorResponse(w, r, http.StatusNotFound, "the requested resource was not found")
	})

	r.Get("/venue", h.GetVenue)
	r.Get("/seats/{seatID}", h.GetSeat)
	r.Get("/adjacent", h.FindAdjacent)

	r.Route("/selection", func(r chi.Router) {
		r.Get("/", h.GetSelection)
		r.Delete("/", h.ClearSelection)
		r.Post("/toggle", h.ToggleSeat)
		r.Post("/seats", h.SelectSeats)
	})

	return r
}

func (h *SeatingHandler) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				h.serverErrorResponse(w, r, fmt.Errorf("%v", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *SeatingHandler) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Debug("request",
			"method", r.Method,
			"uri", r.URL.RequestURI(),
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
