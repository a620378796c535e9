package api

import (
	"encoding/json"
	"net/http"

	"github.com/TTMK7777/release-creator/pkg/logger"
)

// Maximum accepted request body size for record batches.
const maxBodyBytes = 8 << 20

// RecordsHandler handles dataset ingestion and maintenance requests.
type RecordsHandler struct {
	deps Dependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps Dependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleRecords dispatches /records requests by method.
func (h *RecordsHandler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handlePost(w, r)
	case http.MethodDelete:
		h.handleDelete(w, r)
	case http.MethodGet:
		h.handleGet(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handlePost handles POST /records requests to ingest a record batch.
func (h *RecordsHandler) handlePost(w http.ResponseWriter, r *http.Request) {
	var batch recordBatch
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&batch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", ErrInvalidBody)
		return
	}
	if err := batch.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "empty_batch", err)
		return
	}

	added, warnings, err := h.deps.AddRecords(r.Context(), batch.Records)
	if err != nil {
		logger.Get().Error(r.Context(), "record ingestion failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "ingest_failed", nil)
		return
	}

	writeJSON(w, http.StatusAccepted, ingestResponse{
		Status:   "accepted",
		Added:    added,
		Rejected: len(batch.Records) - added,
		Total:    h.deps.CountRecords(r.Context()),
		Warnings: warnings,
	})
}

// handleDelete handles DELETE /records requests to clear the dataset.
func (h *RecordsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.ClearRecords(r.Context()); err != nil {
		logger.Get().Error(r.Context(), "dataset clear failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "clear_failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":       "cleared",
		"dataset_size": 0,
	})
}

// handleGet handles GET /records requests with the current dataset size.
func (h *RecordsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"dataset_size": h.deps.CountRecords(r.Context()),
	})
}
