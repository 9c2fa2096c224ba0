package http

import (
	"net/http"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/service"
)

type PromotionHandler struct {
	promoSvc service.PromotionService
}

func NewPromotionHandler(promoSvc service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promoSvc: promoSvc}
}

func (h *PromotionHandler) ListFreeDaysTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.promoSvc.ListFreeDaysTiers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tiers)
}

// SaveFreeDaysTiers replaces the whole tier table. The admin editor always
// submits the full list.
func (h *PromotionHandler) SaveFreeDaysTiers(w http.ResponseWriter, r *http.Request) {
	var tiers []domain.FreeDaysTier
	if !decodeBody(w, r, &tiers) {
		return
	}
	saved, err := h.promoSvc.SaveFreeDaysTiers(r.Context(), tiers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *PromotionHandler) ListInsuranceOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.promoSvc.ListInsuranceOptions(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

func (h *PromotionHandler) SaveInsuranceOption(w http.ResponseWriter, r *http.Request) {
	var opt domain.InsuranceOption
	if !decodeBody(w, r, &opt) {
		return
	}
	if err := h.promoSvc.SaveInsuranceOption(r.Context(), &opt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, opt)
}

func (h *PromotionHandler) DeleteInsuranceOption(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.promoSvc.DeleteInsuranceOption(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
