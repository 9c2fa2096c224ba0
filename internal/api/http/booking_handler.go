package http

import (
	"net/http"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// Quote prices a candidate booking without persisting it. Public: the price
// panel renders before login.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req service.QuoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	draft, err := h.bookingSvc.Quote(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	var req service.CreateReservationRequest
	if !decodeBody(w, r, &req) {
		return
	}
	reservation, err := h.bookingSvc.Create(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	reservation, err := h.bookingSvc.Get(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	page, pageSize := pagination(r)
	reservations, total, err := h.bookingSvc.ListByUser(r.Context(), claims.UserID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reservations, Total: total, Page: page})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	reservation, err := h.bookingSvc.Cancel(r.Context(), claims.UserID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}

// Calendar returns the blocked intervals for one vehicle so the date picker
// can grey out taken days.
func (h *BookingHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	intervals, err := h.bookingSvc.BlockedIntervals(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"car_id": id, "blocked": intervals})
}

func (h *BookingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	q := r.URL.Query()
	reservations, total, err := h.bookingSvc.ListAll(r.Context(), q.Get("status"), q.Get("q"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reservations, Total: total, Page: page})
}

func (h *BookingHandler) AdminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Status domain.ReservationStatus `json:"status"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	reservation, err := h.bookingSvc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reservation)
}
