package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TTMK7777/release-creator/internal/adapters/http/api"
	"github.com/TTMK7777/release-creator/internal/adapters/repository"
	"github.com/TTMK7777/release-creator/internal/app"
	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

// failingDeps errors every operation, for exercising the 500 paths.
type failingDeps struct{}

var errBackend = errors.New("backend unavailable")

func (failingDeps) AddRecords(context.Context, []model.RankingRecord) (int, []model.Warning, error) {
	return 0, nil, errBackend
}
func (failingDeps) ClearRecords(context.Context) error { return errBackend }
func (failingDeps) CountRecords(context.Context) int   { return 0 }
func (failingDeps) Analyze(context.Context, []model.RankingRecord) (model.Report, error) {
	return model.Report{}, errBackend
}
func (failingDeps) AnalyzeStoredWith(context.Context, ...app.Option) (model.Report, error) {
	return model.Report{}, errBackend
}

func newTestMux(deps api.Dependencies, stats api.StatsProvider) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, stats).Register(context.Background(), mux)
	return mux
}

func newTestService() *app.Service {
	return app.New(app.WithStore(repository.NewMemoryStore()))
}

func recordsBody() string {
	return `{"records": [
		{"year": "2023", "category": {"kind": "overall"}, "company": "Alpha", "score": 71.0, "rank": 1},
		{"year": "2023", "category": {"kind": "overall"}, "company": "Beta", "score": 68.0, "rank": 2},
		{"year": "2024", "category": {"kind": "overall"}, "company": "Alpha", "score": 72.0, "rank": 1},
		{"year": "2024", "category": {"kind": "overall"}, "company": "Beta", "score": 69.0, "rank": 2}
	]}`
}

func TestMain(m *testing.M) {
	_ = logger.Init(logger.WithWriter(&bytes.Buffer{}))
	m.Run()
}

func TestRecordsEndpoint(t *testing.T) {
	Convey("Given a server with an empty store", t, func() {
		svc := newTestService()
		mux := newTestMux(svc, svc)

		Convey("When posting a valid batch", func() {
			req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(recordsBody()))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then the batch is accepted", func() {
				So(rr.Code, ShouldEqual, http.StatusAccepted)

				var resp map[string]interface{}
				So(json.Unmarshal(rr.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["status"], ShouldEqual, "accepted")
				So(resp["added"], ShouldEqual, 4)
				So(resp["rejected"], ShouldEqual, 0)
				So(resp["dataset_size"], ShouldEqual, 4)
			})
		})

		Convey("When posting malformed JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader("{nope"))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When posting an empty batch", func() {
			req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(`{"records": []}`))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When posting a batch with an invalid record", func() {
			body := `{"records": [
				{"year": "2024", "category": {"kind": "overall"}, "company": "Alpha", "score": 71.0, "rank": 1},
				{"year": "2024", "category": {"kind": "overall"}, "company": "", "score": 70.0, "rank": 2}
			]}`
			req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then the valid part lands and the rest is reported", func() {
				So(rr.Code, ShouldEqual, http.StatusAccepted)

				var resp struct {
					Added    int             `json:"added"`
					Rejected int             `json:"rejected"`
					Warnings []model.Warning `json:"warnings"`
				}
				So(json.Unmarshal(rr.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Added, ShouldEqual, 1)
				So(resp.Rejected, ShouldEqual, 1)
				So(len(resp.Warnings), ShouldEqual, 1)
				So(resp.Warnings[0].Code, ShouldEqual, model.WarnInvalidRecord)
			})
		})

		Convey("When reading the dataset size", func() {
			req := httptest.NewRequest(http.MethodGet, "/records", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusOK)
			So(rr.Body.String(), ShouldContainSubstring, `"dataset_size":0`)
		})

		Convey("When deleting the dataset", func() {
			post := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(recordsBody()))
			mux.ServeHTTP(httptest.NewRecorder(), post)

			req := httptest.NewRequest(http.MethodDelete, "/records", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusOK)
			So(svc.CountRecords(context.Background()), ShouldEqual, 0)
		})

		Convey("When using an unsupported method", func() {
			req := httptest.NewRequest(http.MethodPut, "/records", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a failing backend", t, func() {
		mux := newTestMux(failingDeps{}, &mockStatsProvider{})

		Convey("Then ingestion reports a server error", func() {
			req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(recordsBody()))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			So(rr.Code, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("Then clearing reports a server error", func() {
			req := httptest.NewRequest(http.MethodDelete, "/records", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			So(rr.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestAnalyzeEndpoint(t *testing.T) {
	Convey("Given a server", t, func() {
		svc := newTestService()
		mux := newTestMux(svc, svc)

		Convey("When posting a batch for one-shot analysis", func() {
			req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(recordsBody()))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then a report comes back without touching the store", func() {
				So(rr.Code, ShouldEqual, http.StatusOK)

				var report model.Report
				So(json.Unmarshal(rr.Body.Bytes(), &report), ShouldBeNil)
				So(report.RunID, ShouldNotBeEmpty)
				So(report.Stats.RecordsIn, ShouldEqual, 4)
				So(len(report.Topics), ShouldBeGreaterThan, 0)

				So(svc.CountRecords(context.Background()), ShouldEqual, 0)
			})
		})

		Convey("When posting an empty batch", func() {
			req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"records": []}`))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When using GET on /analyze", func() {
			req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestTopicsEndpoint(t *testing.T) {
	Convey("Given a server with stored records", t, func() {
		svc := newTestService()
		mux := newTestMux(svc, svc)

		post := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(recordsBody()))
		mux.ServeHTTP(httptest.NewRecorder(), post)

		Convey("When requesting topics with defaults", func() {
			req := httptest.NewRequest(http.MethodGet, "/topics", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then the stored dataset is analyzed", func() {
				So(rr.Code, ShouldEqual, http.StatusOK)

				var report model.Report
				So(json.Unmarshal(rr.Body.Bytes(), &report), ShouldBeNil)
				So(report.Stats.RecordsIn, ShouldEqual, 4)
				So(len(report.Topics), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When overriding thresholds via the query string", func() {
			req := httptest.NewRequest(http.MethodGet,
				"/topics?min_streak=1&dominance=0.9&gap=1.0&close_gap=0.1&rank_shift=3&max_topics=2", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then the overrides shape the report", func() {
				So(rr.Code, ShouldEqual, http.StatusOK)

				var report model.Report
				So(json.Unmarshal(rr.Body.Bytes(), &report), ShouldBeNil)
				So(len(report.Topics), ShouldBeLessThanOrEqualTo, 2)
			})
		})

		Convey("When a query parameter is malformed", func() {
			req := httptest.NewRequest(http.MethodGet, "/topics?min_streak=two", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When an override is out of range", func() {
			req := httptest.NewRequest(http.MethodGet, "/topics?dominance=1.5", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then the engine's threshold validation surfaces as 400", func() {
				So(rr.Code, ShouldEqual, http.StatusBadRequest)
				So(rr.Body.String(), ShouldContainSubstring, "invalid_threshold")
			})
		})

		Convey("When using POST on /topics", func() {
			req := httptest.NewRequest(http.MethodPost, "/topics", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsAndHealthEndpoints(t *testing.T) {
	Convey("Given a server", t, func() {
		svc := newTestService()
		stats := &mockStatsProvider{stats: map[string]interface{}{"datasetSize": 0}}
		mux := newTestMux(svc, stats)

		Convey("When requesting stats", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			So(rr.Code, ShouldEqual, http.StatusOK)
			So(rr.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
			So(rr.Body.String(), ShouldContainSubstring, "datasetSize")
		})

		Convey("When requesting health", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			Convey("Then the metrics registry is served", func() {
				So(rr.Code, ShouldEqual, http.StatusOK)
				So(rr.Body.String(), ShouldContainSubstring, "release_creator")
			})
		})
	})
}
