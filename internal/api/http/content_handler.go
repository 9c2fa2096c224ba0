package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"atlasrent-backend/internal/service"
)

type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

// GetSection returns one content section. With ?lang=fr only that language's
// variant is returned; without it the whole payload comes back.
func (h *ContentHandler) GetSection(w http.ResponseWriter, r *http.Request) {
	section, err := h.contentSvc.GetSection(r.Context(), mux.Vars(r)["section"])
	if err != nil {
		writeError(w, err)
		return
	}
	if lang := r.URL.Query().Get("lang"); lang != "" {
		variant := section.LanguageContent(lang)
		if variant == nil {
			variant = json.RawMessage("{}")
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"section_key": section.SectionKey,
			"lang":        lang,
			"content":     variant,
		})
		return
	}
	writeJSON(w, http.StatusOK, section)
}

func (h *ContentHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.contentSvc.ListSections(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

func (h *ContentHandler) SaveSection(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if !decodeBody(w, r, &body) {
		return
	}
	section, err := h.contentSvc.SaveSection(r.Context(), mux.Vars(r)["section"], body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, section)
}

func (h *ContentHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.contentSvc.ListLocations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, locations)
}
