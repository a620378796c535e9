package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TTMK7777/release-creator/internal/app"
	"github.com/TTMK7777/release-creator/pkg/logger"
)

// AnalyzeHandler handles one-shot analysis requests.
type AnalyzeHandler struct {
	deps Dependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// HandlePostAnalyze handles POST /analyze requests. The supplied batch is
// analyzed as-is without touching the stored dataset.
func (h *AnalyzeHandler) HandlePostAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

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

	report, err := h.deps.Analyze(r.Context(), batch.Records)
	if err != nil {
		if errors.Is(err, app.ErrInvalidThreshold) {
			writeError(w, http.StatusBadRequest, "invalid_threshold", err)
			return
		}
		logger.Get().Error(r.Context(), "analysis failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "analysis_failed", nil)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
