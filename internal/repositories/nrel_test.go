package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-api/internal/models"
	"solar-api/pkg/logger"
)

const wellFormedPayload = `{
	"outputs": {
		"avg_dni": {"monthly": [6.06, 6.68, 7.01, 7.09, 6.99, 7.34, 7.08, 6.77, 6.56, 5.98, 5.74, 5.5]},
		"avg_ghi": {"monthly": [3.87, 4.74, 5.83, 6.89, 7.4, 7.67, 7.35, 6.72, 5.73, 4.62, 3.85, 3.46]},
		"avg_lat_tilt": {"monthly": [5.5, 6.09, 6.57, 6.74, 6.55, 6.63, 6.48, 6.45, 6.56, 6.06, 5.77, 5.43]}
	}
}`

func newTestLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", io.Discard)
}

func newTestRepository(t *testing.T, baseURL string) *NRELRepository {
	t.Helper()

	repo, err := NewNRELRepository(baseURL, NRELSolarEndpoint, "test-key", newTestLogger(), http.DefaultClient)
	require.NoError(t, err)

	return repo
}

func TestNewNRELRepository_EmptyAPIKey(t *testing.T) {
	_, err := NewNRELRepository(NRELBaseURL, NRELSolarEndpoint, "  ", newTestLogger(), http.DefaultClient)
	assert.Error(t, err)
}

func TestNRELRepository_FetchSolarTable_Success(t *testing.T) {
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"api_key": r.URL.Query().Get("api_key"),
			"lat":     r.URL.Query().Get("lat"),
			"lon":     r.URL.Query().Get("lon"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(wellFormedPayload))
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	table, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.NoError(t, err)

	assert.Equal(t, "nrel", table.ProviderName)
	assert.Equal(t, 40.7128, table.Lat)
	assert.Equal(t, -74.006, table.Lon)

	require.Len(t, table.Rows, 12)

	for i, row := range table.Rows {
		assert.Equal(t, models.Months[i], row.Month)
	}

	// Values arrive positionally matched, in original units
	assert.Equal(t, models.MonthlyRow{Month: "Jan", AvgDNI: 6.06, AvgGHI: 3.87, AvgLatTilt: 5.5}, table.Rows[0])
	assert.Equal(t, models.MonthlyRow{Month: "Dec", AvgDNI: 5.5, AvgGHI: 3.46, AvgLatTilt: 5.43}, table.Rows[11])

	assert.Equal(t, "test-key", gotQuery["api_key"])
	assert.Equal(t, "40.7128", gotQuery["lat"])
	assert.Equal(t, "-74.006", gotQuery["lon"])
}

func TestNRELRepository_FetchSolarTable_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	_, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrHTTPStatus)
	assert.NotErrorIs(t, err, ErrContentType)
	assert.NotErrorIs(t, err, ErrMalformedPayload)
	assert.Contains(t, err.Error(), "404")
}

func TestNRELRepository_FetchSolarTable_ContentTypeMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>maintenance</body></html>"))
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	_, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrContentType)
	assert.NotErrorIs(t, err, ErrHTTPStatus)
}

func TestNRELRepository_FetchSolarTable_MissingMetric(t *testing.T) {
	payload := `{
		"outputs": {
			"avg_dni": {"monthly": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]},
			"avg_lat_tilt": {"monthly": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]}
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	_, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Contains(t, err.Error(), "avg_ghi")
}

func TestNRELRepository_FetchSolarTable_ShortMonthlySequence(t *testing.T) {
	payload := `{
		"outputs": {
			"avg_dni": {"monthly": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11]},
			"avg_ghi": {"monthly": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]},
			"avg_lat_tilt": {"monthly": [1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12]}
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	_, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMalformedPayload)
	assert.Contains(t, err.Error(), "avg_dni")
}

func TestNRELRepository_FetchSolarTable_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"outputs": `))
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	_, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMalformedPayload)
}

func TestNRELRepository_FetchSolarTable_Deterministic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(wellFormedPayload))
	}))
	defer server.Close()

	repo := newTestRepository(t, server.URL)

	first, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.NoError(t, err)

	second, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestNRELRepository_FetchSolarTable_IndependentCredentials(t *testing.T) {
	var gotKeys []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKeys = append(gotKeys, r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(wellFormedPayload))
	}))
	defer server.Close()

	repoA, err := NewNRELRepository(server.URL, NRELSolarEndpoint, "key-a", newTestLogger(), http.DefaultClient)
	require.NoError(t, err)
	repoB, err := NewNRELRepository(server.URL, NRELSolarEndpoint, "key-b", newTestLogger(), http.DefaultClient)
	require.NoError(t, err)

	_, err = repoA.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.NoError(t, err)
	_, err = repoB.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.NoError(t, err)

	// Each call carries its own credential; nothing bleeds between instances
	require.Len(t, gotKeys, 2)
	assert.Equal(t, "key-a", gotKeys[0])
	assert.Equal(t, "key-b", gotKeys[1])
}

func TestNRELRepository_FetchSolarTable_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	repo := newTestRepository(t, server.URL)

	_, err := repo.FetchSolarTable(context.Background(), 40.7128, -74.006)
	require.Error(t, err)

	assert.False(t, errors.Is(err, ErrHTTPStatus))
	assert.Contains(t, err.Error(), "failed to do request")
}
