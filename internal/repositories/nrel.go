package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"solar-api/internal/models"
	"solar-api/pkg/logger"
)

const (
	NRELBaseURL       = "https://developer.nrel.gov"
	NRELSolarEndpoint = "/api/solar/solar_resource/v1.json"
)

type NRELRepository struct {
	BaseURL    string
	Endpoint   string
	apiKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewNRELRepository(baseURL, endpoint, apiKey string, l *logger.Logger, httpClient HTTPClient) (*NRELRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = NRELBaseURL
	}
	if endpoint == "" {
		endpoint = NRELSolarEndpoint
	}

	return &NRELRepository{
		BaseURL:    baseURL,
		Endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (n *NRELRepository) Name() string {
	return "nrel"
}

type nrelMetric struct {
	Monthly []float64 `json:"monthly"`
}

type NRELResponse struct {
	Outputs *struct {
		AvgDNI     *nrelMetric `json:"avg_dni"`
		AvgGHI     *nrelMetric `json:"avg_ghi"`
		AvgLatTilt *nrelMetric `json:"avg_lat_tilt"`
	} `json:"outputs"`
}

// FetchSolarTable issues one GET against the solar resource endpoint and
// normalizes the monthly irradiance metrics into a 12-row table in calendar
// order. It returns either the full table or one of ErrHTTPStatus,
// ErrContentType, ErrMalformedPayload; there is no partial result. The API
// key goes into the query string and is never logged.
func (n *NRELRepository) FetchSolarTable(ctx context.Context, lat, lon float64) (models.SolarTable, error) {
	table := models.SolarTable{
		ProviderName: n.Name(),
		Lat:          lat,
		Lon:          lon,
	}

	query := url.Values{}
	query.Set("api_key", n.apiKey)
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	requestURL := n.BaseURL + n.Endpoint + "?" + query.Encode()

	n.l.Info("making nrel API request", map[string]any{
		"endpoint": n.Endpoint,
		"params":   table.RequestParams(),
	})

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return table, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return table, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	n.l.Info("received nrel API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return table, fmt.Errorf("%w (status %d): %s", ErrHTTPStatus, resp.StatusCode, resp.Status)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		return table, fmt.Errorf("%w: %q", ErrContentType, ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return table, fmt.Errorf("failed to read response body: %w", err)
	}

	var response NRELResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return table, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	rows, err := monthlyRows(response)
	if err != nil {
		return table, err
	}

	n.l.Info("parsed nrel API response", map[string]any{"rows": len(rows)})

	table.Rows = rows

	return table, nil
}

// monthlyRows validates the payload shape and zips the three monthly
// sequences with the fixed month abbreviations by positional index.
// Positional alignment with calendar months is trusted upstream behavior;
// only presence and length are asserted here.
func monthlyRows(response NRELResponse) ([]models.MonthlyRow, error) {
	if response.Outputs == nil {
		return nil, fmt.Errorf("%w: missing outputs", ErrMalformedPayload)
	}

	metrics := []struct {
		name string
		m    *nrelMetric
	}{
		{"avg_dni", response.Outputs.AvgDNI},
		{"avg_ghi", response.Outputs.AvgGHI},
		{"avg_lat_tilt", response.Outputs.AvgLatTilt},
	}

	for _, metric := range metrics {
		if metric.m == nil {
			return nil, fmt.Errorf("%w: missing outputs.%s", ErrMalformedPayload, metric.name)
		}
		if len(metric.m.Monthly) != len(models.Months) {
			return nil, fmt.Errorf("%w: outputs.%s.monthly has %d values, want %d",
				ErrMalformedPayload, metric.name, len(metric.m.Monthly), len(models.Months))
		}
	}

	rows := make([]models.MonthlyRow, 0, len(models.Months))
	for i, month := range models.Months {
		rows = append(rows, models.MonthlyRow{
			Month:      month,
			AvgDNI:     response.Outputs.AvgDNI.Monthly[i],
			AvgGHI:     response.Outputs.AvgGHI.Monthly[i],
			AvgLatTilt: response.Outputs.AvgLatTilt.Monthly[i],
		})
	}

	return rows, nil
}
