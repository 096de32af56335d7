package repositories

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"weather-forecast/config"
	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
)

type WeatherRepository interface {
	Name() string
	FetchForecast(ctx context.Context, city string) (models.Forecast, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	httpClient := &http.Client{Timeout: cfg.Weather.Timeout}

	repo, err := NewOpenWeatherMapRepository(cfg.Weather.BaseURL, cfg.Weather.APIKey, l, httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.Weather.RateLimitRPS > 0 {
		l.Info("rate limiting forecast provider", map[string]any{
			"rps":   cfg.Weather.RateLimitRPS,
			"burst": cfg.Weather.RateLimitBurst,
		})
		return NewRateLimitedRepository(repo, cfg.Weather.RateLimitRPS, cfg.Weather.RateLimitBurst), nil
	}

	return repo, nil
}

type correlationIDKey struct{}

// WithCorrelationID attaches the inbound request ID so the outbound call carries it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the ID attached to ctx, or a fresh one.
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
