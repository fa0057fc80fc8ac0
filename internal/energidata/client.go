// Package energidata implements the Energi Data Service API client used to
// fetch DatahubPricelist records.
package energidata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
)

// DefaultBaseURL is the public Energi Data Service endpoint.
const DefaultBaseURL = "https://api.energidataservice.dk"

const (
	datasetPath     = "/dataset/DatahubPricelist"
	defaultPageSize = 10000
	defaultTimeout  = 60 * time.Second
)

// Config holds the client configuration.
type Config struct {
	BaseURL  string
	PageSize int
	Timeout  time.Duration
	Retry    service.RetryOptions
}

// Client fetches tariff price lists from Energi Data Service.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	config     Config
}

var _ service.Fetcher = (*Client)(nil)

// NewClient creates an API client. Zero-value config fields get defaults.
func NewClient(config Config, logger *slog.Logger) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.PageSize <= 0 {
		config.PageSize = defaultPageSize
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		config:     config,
		logger:     logger,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// pricelistResponse is the API's JSON envelope.
type pricelistResponse struct {
	Records []model.TariffRecord `json:"records"`
	Total   int                  `json:"total"`
}

// FetchPricelist retrieves all DatahubPricelist records in the date range,
// paging until the API is exhausted. Each page is fetched with retry.
func (c *Client) FetchPricelist(ctx context.Context, dateRange service.DateRange) ([]model.TariffRecord, error) {
	var records []model.TariffRecord
	offset := 0

	for {
		var page pricelistResponse
		err := common.WithRetry(ctx, func() error {
			var fetchErr error
			page, fetchErr = c.fetchPage(ctx, dateRange, offset)
			return fetchErr
		}, c.config.Retry)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch pricelist page at offset %d: %w", offset, err)
		}

		records = append(records, page.Records...)

		c.logger.Debug("fetched pricelist page",
			"offset", offset,
			"page_records", len(page.Records),
			"total_records", len(records))

		if len(page.Records) < c.config.PageSize {
			break
		}
		offset += len(page.Records)
	}

	c.logger.Info("pricelist fetch complete",
		"date_range", dateRange.String(),
		"records", len(records))

	return records, nil
}

func (c *Client) fetchPage(ctx context.Context, dateRange service.DateRange, offset int) (pricelistResponse, error) {
	endpoint, err := url.Parse(c.config.BaseURL + datasetPath)
	if err != nil {
		return pricelistResponse{}, fmt.Errorf("invalid base URL: %w", err)
	}

	query := endpoint.Query()
	query.Set("start", dateRange.Start.Format("2006-01-02"))
	query.Set("end", dateRange.End.Format("2006-01-02"))
	query.Set("limit", fmt.Sprintf("%d", c.config.PageSize))
	if offset > 0 {
		query.Set("offset", fmt.Sprintf("%d", offset))
	}
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return pricelistResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pricelistResponse{}, &common.RetryableError{Err: err, Retryable: true}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return pricelistResponse{}, common.ErrRateLimit
	case resp.StatusCode >= 500:
		return pricelistResponse{}, &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d", common.ErrAPIUnavailable, resp.StatusCode),
			Retryable: true,
		}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return pricelistResponse{}, &common.RetryableError{
			Err:       fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body),
			Retryable: false,
		}
	}

	var page pricelistResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return pricelistResponse{}, fmt.Errorf("failed to decode response: %w", err)
	}

	return page, nil
}
