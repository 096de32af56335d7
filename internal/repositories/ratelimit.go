package repositories

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-forecast/internal/models"
)

// RateLimitedRepository delays calls to stay under the provider quota. It never adds calls.
type RateLimitedRepository struct {
	repo    WeatherRepository
	limiter *rate.Limiter
}

func NewRateLimitedRepository(repo WeatherRepository, rps float64, burst int) *RateLimitedRepository {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedRepository{
		repo:    repo,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedRepository) Name() string {
	return r.repo.Name()
}

func (r *RateLimitedRepository) FetchForecast(ctx context.Context, city string) (models.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Forecast{RepositoryName: r.Name(), City: city}, &TransportError{
			Op:  "rate limit wait",
			Err: fmt.Errorf("rate limit wait canceled: %w", err),
		}
	}

	return r.repo.FetchForecast(ctx, city)
}
