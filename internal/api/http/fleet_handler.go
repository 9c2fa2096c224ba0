package http

import (
	"net/http"
	"strconv"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
	"atlasrent-backend/internal/service"

	"github.com/gorilla/mux"
)

type FleetHandler struct {
	fleetSvc service.FleetService
}

func NewFleetHandler(fleetSvc service.FleetService) *FleetHandler {
	return &FleetHandler{fleetSvc: fleetSvc}
}

func (h *FleetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.VehicleFilter{
		Query:        q.Get("q"),
		Category:     q.Get("category"),
		Transmission: q.Get("transmission"),
		Status:       q.Get("status"),
	}
	if maxRate, err := strconv.ParseInt(q.Get("max_price"), 10, 64); err == nil {
		filter.MaxDailyRate = maxRate
	}
	page, pageSize := pagination(r)

	vehicles, total, err := h.fleetSvc.ListVehicles(r.Context(), filter, q.Get("start_date"), q.Get("end_date"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: vehicles, Total: total, Page: page})
}

func (h *FleetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	vehicle, err := h.fleetSvc.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *FleetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	if err := h.fleetSvc.AddVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *FleetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var vehicle domain.Vehicle
	if !decodeBody(w, r, &vehicle) {
		return
	}
	vehicle.ID = id
	if err := h.fleetSvc.UpdateVehicle(r.Context(), &vehicle); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *FleetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.fleetSvc.DeleteVehicle(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return int32(id), true
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if p, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && p > 0 {
		page = int32(p)
	}
	if ps, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && ps > 0 && ps <= 100 {
		pageSize = int32(ps)
	}
	return page, pageSize
}
