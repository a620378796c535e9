package sampledata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/TTMK7777/release-creator/internal/domain/model"
	"github.com/TTMK7777/release-creator/pkg/logger"
)

// HTTPClient wraps http.Client with a per-request timeout.
type HTTPClient struct {
	client *http.Client
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// recordBatch mirrors the service's POST /records request body.
type recordBatch struct {
	Records []model.RankingRecord `json:"records"`
}

// ingestAck mirrors the service's POST /records response body.
type ingestAck struct {
	Status   string `json:"status"`
	Added    int    `json:"added"`
	Rejected int    `json:"rejected"`
	Total    int    `json:"dataset_size"`
}

// submitRecords submits the dataset in batches using a worker pool.
func submitRecords(ctx context.Context, config *Config, records []model.RankingRecord, stats *Stats) error {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/records"

	batchSize := config.BatchSize
	if batchSize < 1 {
		batchSize = len(records)
	}

	var batches [][]model.RankingRecord
	for start := 0; start < len(records); start += batchSize {
		end := start + batchSize
		if end > len(records) {
			end = len(records)
		}
		batches = append(batches, records[start:end])
	}

	logger.Get().Info(ctx, "submitting records",
		logger.Int("records", len(records)),
		logger.Int("batches", len(batches)),
		logger.Int("workers", config.Workers))

	var (
		submitted int64
		accepted  int64
		rejected  int64
	)

	batchChan := make(chan []model.RankingRecord, config.Workers)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batchChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				ack, err := submitSingleBatch(ctx, client, url, batch)
				atomic.AddInt64(&submitted, int64(len(batch)))
				if err != nil {
					atomic.AddInt64(&rejected, int64(len(batch)))
					if config.Verbose {
						logger.Get().Warn(ctx, "batch submission failed", logger.Error(err))
					}
					continue
				}
				atomic.AddInt64(&accepted, int64(ack.Added))
				atomic.AddInt64(&rejected, int64(ack.Rejected))
			}
		}()
	}

	for _, batch := range batches {
		select {
		case <-ctx.Done():
			close(batchChan)
			wg.Wait()
			return fmt.Errorf("context cancelled during submission: %w", ctx.Err())
		case batchChan <- batch:
		}
	}
	close(batchChan)
	wg.Wait()

	stats.RecordsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RecordsAccepted = int(atomic.LoadInt64(&accepted))
	stats.RecordsRejected = int(atomic.LoadInt64(&rejected))

	logger.Get().Info(ctx, "submission completed",
		logger.Int("submitted", stats.RecordsSubmitted),
		logger.Int("accepted", stats.RecordsAccepted),
		logger.Int("rejected", stats.RecordsRejected))
	return nil
}

// submitSingleBatch posts one batch and parses the acknowledgement.
func submitSingleBatch(ctx context.Context, client *HTTPClient, url string, batch []model.RankingRecord) (*ingestAck, error) {
	resp, err := client.Post(ctx, url, recordBatch{Records: batch})
	if err != nil {
		return nil, err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != StatusAccepted {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var ack ingestAck
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, fmt.Errorf("failed to parse acknowledgement: %w", err)
	}
	return &ack, nil
}

// fetchTopics requests a stored-dataset analysis and returns the report.
func fetchTopics(ctx context.Context, config *Config, stats *Stats) (*model.Report, error) {
	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/topics"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch topics: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != StatusOK {
		return nil, fmt.Errorf("topics request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var report model.Report
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	stats.TopicsRetrieved = len(report.Topics)
	stats.Warnings = len(report.Warnings)
	return &report, nil
}
