package energidata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDateRange(t *testing.T) service.DateRange {
	t.Helper()
	return service.DateRange{
		Start: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func fastRetry() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestFetchPricelist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dataset/DatahubPricelist", r.URL.Path)
		assert.Equal(t, "2021-01-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-12-31", r.URL.Query().Get("end"))
		assert.Equal(t, "10000", r.URL.Query().Get("limit"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 2,
			"records": []map[string]any{
				{
					"ChargeOwner":    "Radius Elnet A/S",
					"GLN_Number":    "5790000705689",
					"ChargeType":     "D03",
					"ChargeTypeCode": "DT_C_01",
					"Note":           "Nettarif C time",
					"ValidFrom":      "2021-01-01T00:00:00",
					"Price1":         0.1837,
					"Price2":         nil,
				},
				{
					"ChargeOwner":    "Cerius A/S",
					"ChargeTypeCode": "45012",
					"Note":           "Balancetarif for forbrug",
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Retry: fastRetry()}, nil)

	records, err := client.FetchPricelist(context.Background(), testDateRange(t))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Radius Elnet A/S", first.ChargeOwner)
	assert.Equal(t, "DT_C_01", first.ChargeTypeCode)
	assert.Equal(t, "Nettarif C time", first.Note)

	require.True(t, first.Price1.Valid)
	assert.Equal(t, "0.1837", first.Price1.Decimal.String())
	assert.False(t, first.Price2.Valid, "null prices stay null")
}

func TestFetchPricelistPaging(t *testing.T) {
	const pageSize = 2

	var offsets []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offsets = append(offsets, r.URL.Query().Get("offset"))

		page := []map[string]any{}
		if len(offsets) == 1 {
			for i := 0; i < pageSize; i++ {
				page = append(page, map[string]any{
					"ChargeTypeCode": fmt.Sprintf("DT_%d", i),
				})
			}
		} else {
			page = append(page, map[string]any{"ChargeTypeCode": "DT_LAST"})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 3, "records": page})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, PageSize: pageSize, Retry: fastRetry()}, nil)

	records, err := client.FetchPricelist(context.Background(), testDateRange(t))
	require.NoError(t, err)
	assert.Len(t, records, 3)

	// The first request carries no offset; the second resumes where the
	// full page left off and the short page ends the loop.
	assert.Equal(t, []string{"", "2"}, offsets)
	assert.Equal(t, "DT_LAST", records[2].ChargeTypeCode)
}

func TestFetchPricelistRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 0, "records": []any{}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Retry: fastRetry()}, nil)

	records, err := client.FetchPricelist(context.Background(), testDateRange(t))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 2, calls)
}

func TestFetchPricelistExhaustsRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Retry: fastRetry()}, nil)

	_, err := client.FetchPricelist(context.Background(), testDateRange(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, 3, calls)
}

func TestFetchPricelistClientErrorDoesNotRetry(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad date"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Retry: fastRetry()}, nil)

	_, err := client.FetchPricelist(context.Background(), testDateRange(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 400")
	assert.Equal(t, 1, calls)
}

func TestFetchPricelistRateLimit(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 0, "records": []any{}})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Retry: fastRetry()}, nil)

	_, err := client.FetchPricelist(context.Background(), testDateRange(t))
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{}, nil)

	assert.Equal(t, DefaultBaseURL, client.config.BaseURL)
	assert.Equal(t, defaultPageSize, client.config.PageSize)
	assert.Equal(t, defaultTimeout, client.config.Timeout)
}
