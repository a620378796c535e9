package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TTMK7777/release-creator/internal/app"
	"github.com/TTMK7777/release-creator/pkg/logger"
)

// TopicsHandler handles analysis requests against the stored dataset.
type TopicsHandler struct {
	deps Dependencies
}

// NewTopicsHandler creates a new topics handler.
func NewTopicsHandler(deps Dependencies) *TopicsHandler {
	return &TopicsHandler{deps: deps}
}

// HandleGetTopics handles GET /topics requests. Query parameters override
// the configured thresholds for this request only:
//
//	min_streak  - minimum streak length (integer)
//	dominance   - dominance ratio threshold (float in (0,1])
//	gap         - notable gap threshold (float)
//	close_gap   - close race threshold (float)
//	rank_shift  - minimum rank shift (integer)
//	max_topics  - cap on emitted topics (integer, 0 means unlimited)
func (h *TopicsHandler) HandleGetTopics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	opts, err := parseOverrides(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_query", err)
		return
	}

	report, err := h.deps.AnalyzeStoredWith(r.Context(), opts...)
	if err != nil {
		if errors.Is(err, app.ErrInvalidThreshold) {
			writeError(w, http.StatusBadRequest, "invalid_threshold", err)
			return
		}
		logger.Get().Error(r.Context(), "stored analysis failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "analysis_failed", nil)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// parseOverrides converts query parameters into service options.
func parseOverrides(q url.Values) ([]app.Option, error) {
	var opts []app.Option

	if v := q.Get("min_streak"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: min_streak=%q", ErrInvalidQuery, v)
		}
		opts = append(opts, app.WithMinStreakLength(n))
	}
	if v := q.Get("dominance"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: dominance=%q", ErrInvalidQuery, v)
		}
		opts = append(opts, app.WithDominanceThreshold(f))
	}
	if v := q.Get("gap"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: gap=%q", ErrInvalidQuery, v)
		}
		opts = append(opts, app.WithNotableGapThreshold(f))
	}
	if v := q.Get("close_gap"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: close_gap=%q", ErrInvalidQuery, v)
		}
		opts = append(opts, app.WithCloseGapThreshold(f))
	}
	if v := q.Get("rank_shift"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: rank_shift=%q", ErrInvalidQuery, v)
		}
		opts = append(opts, app.WithRankShiftThreshold(n))
	}
	if v := q.Get("max_topics"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: max_topics=%q", ErrInvalidQuery, v)
		}
		opts = append(opts, app.WithMaxTopics(n))
	}

	return opts, nil
}
