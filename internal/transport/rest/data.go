package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/ignishealth/ignis/internal/domain"
)

// docStore defines the document persistence interface needed by DataHandler.
type docStore interface {
	Get(ctx context.Context) (json.RawMessage, error)
	Put(ctx context.Context, doc json.RawMessage) error
}

// DataHandler serves the data document endpoints. Both routes sit behind
// the session middleware.
type DataHandler struct {
	store        docStore
	maxBodyBytes int64
	log          *slog.Logger
}

// NewDataHandler creates a DataHandler.
func NewDataHandler(store docStore, maxBodyBytes int64, logger *slog.Logger) *DataHandler {
	return &DataHandler{store: store, maxBodyBytes: maxBodyBytes, log: logger.With("handler", "data")}
}

// Get handles GET /api/data. Returns the stored document as-is, or 204
// when nothing has been stored yet.
func (h *DataHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.store.Get(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.log.ErrorContext(r.Context(), "read document", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to read data")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc) //nolint:errcheck
}

// Put handles PUT /api/data. The body must be a JSON object; its shape is
// otherwise not validated. The previous document is overwritten
// unconditionally — last-writer-wins.
func (h *DataHandler) Put(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	if err := h.store.Put(r.Context(), body); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid data")
			return
		}
		h.log.ErrorContext(r.Context(), "write document", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to write data")
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
