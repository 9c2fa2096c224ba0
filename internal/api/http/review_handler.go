package http

import (
	"net/http"

	"atlasrent-backend/internal/service"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

// Submit accepts reviews from guests and logged-in users alike. When a token
// is present the review is linked to the account.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Author  string `json:"author"`
		Rating  int32  `json:"rating"`
		Comment string `json:"comment"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	var userID *int32
	if claims := claimsFrom(r.Context()); claims != nil {
		userID = &claims.UserID
	}
	review, err := h.reviewSvc.Submit(r.Context(), userID, req.Author, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	limit := int32(20)
	reviews, err := h.reviewSvc.ListPublic(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	reviews, total, err := h.reviewSvc.ListAll(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: reviews, Total: total, Page: page})
}

func (h *ReviewHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		Approved bool `json:"approved"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.reviewSvc.Moderate(r.Context(), id, req.Approved); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.reviewSvc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
