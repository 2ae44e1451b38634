package repositories

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"solar-api/config"
	"solar-api/internal/models"
	"solar-api/pkg/logger"
)

// The three failure kinds a fetch can surface. Callers match them with
// errors.Is; everything else is a transport-level error.
var (
	ErrHTTPStatus       = errors.New("upstream HTTP error")
	ErrContentType      = errors.New("unexpected content type")
	ErrMalformedPayload = errors.New("malformed payload")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type SolarRepository interface {
	Name() string
	FetchSolarTable(ctx context.Context, lat, lon float64) (models.SolarTable, error)
}

func InitSolarRepositories(cfg *config.Config, l *logger.Logger) []SolarRepository {
	var repos []SolarRepository
	for _, api := range cfg.SolarAPIs {
		switch api.Name {
		case "nrel":
			client := &http.Client{Timeout: time.Duration(api.Timeout) * time.Second}
			repo, err := NewNRELRepository(api.BaseURL, api.Endpoint, api.APIKey, l, client)
			if err != nil {
				l.Warning("skipping solar provider", map[string]any{"provider": api.Name, "err": err})
				continue
			}
			repos = append(repos, repo)
			// Add more cases here to register new providers
		}
	}

	return repos
}
