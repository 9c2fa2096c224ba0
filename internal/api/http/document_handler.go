package http

import (
	"io"
	"net/http"

	"atlasrent-backend/internal/service"
)

type DocumentHandler struct {
	docSvc      service.DocumentService
	maxFileSize int64
}

func NewDocumentHandler(docSvc service.DocumentService, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{docSvc: docSvc, maxFileSize: maxFileSize}
}

// Upload receives one rental document as multipart form data. Form fields:
// "file" and "doc_type" (id, license or passport).
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file"})
		return
	}
	defer file.Close()

	url, err := h.docSvc.Upload(r.Context(), claims.UserID,
		r.FormValue("doc_type"), header.Filename,
		header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing key"})
		return
	}
	reader, err := h.docSvc.Open(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	io.Copy(w, reader)
}
