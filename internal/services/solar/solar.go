package solar

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"solar-api/internal/models"
	"solar-api/internal/repositories"
	"solar-api/pkg/logger"
)

// SolarService fans one fetch out to every configured provider.
type SolarService struct {
	repos []repositories.SolarRepository
	l     *logger.Logger
}

func NewSolarService(repos []repositories.SolarRepository, l *logger.Logger) *SolarService {
	return &SolarService{
		repos: repos,
		l:     l,
	}
}

// FetchSolarTables fetches the monthly solar resource table from all
// available providers for the given latitude and longitude. Providers that
// fail are logged and skipped; the call errors only when none succeeded.
func (s *SolarService) FetchSolarTables(ctx context.Context, lat, lon float64) (map[string][]models.MonthlyRow, error) {
	s.l.Info("starting solar table fetch", map[string]any{
		"lat":          lat,
		"lon":          lon,
		"repositories": len(s.repos),
	})

	results := make(map[string][]models.MonthlyRow)
	var mu sync.Mutex

	wg := sync.WaitGroup{}

	for _, repo := range s.repos {
		wg.Add(1)

		go func(repo repositories.SolarRepository) {
			defer wg.Done()
			s.l.Debug("fetching solar table", map[string]any{"repo": repo.Name(), "lat": lat, "lon": lon})

			table, err := repo.FetchSolarTable(ctx, lat, lon)
			if err != nil {
				s.l.Warning("failed to fetch solar table", map[string]any{"repo": repo.Name(), "err": err})
				return
			}

			mu.Lock()
			results[repo.Name()] = table.Rows
			mu.Unlock()

			s.l.Info("successfully fetched solar table", map[string]any{
				"repo": repo.Name(),
				"rows": len(table.Rows),
			})
		}(repo)
	}

	wg.Wait()

	s.l.Info("completed solar table fetch", map[string]any{
		"successfulRepos": len(results),
	})

	if len(results) == 0 {
		s.l.Error(errors.New("no results found"), map[string]any{
			"lat": lat,
			"lon": lon,
		})
		return nil, errors.New("no results found")
	}

	return results, nil
}
