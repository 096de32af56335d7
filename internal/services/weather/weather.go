package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"weather-forecast/internal/assets"
	"weather-forecast/internal/models"
	"weather-forecast/internal/repositories"
	"weather-forecast/pkg/logger"
	"weather-forecast/pkg/metrics"
)

var (
	ErrInvalidDays       = errors.New("days must be between 1 and 5")
	ErrInvalidView       = errors.New("view must be temperature or sky")
	ErrInvalidResolution = errors.New("resolution must be daily or raw")
)

// IconResolver maps a sky condition to the URL of its icon.
type IconResolver interface {
	URL(c models.SkyCondition) (string, error)
}

// ForecastRequest is one user interaction: city, day count and view mode.
type ForecastRequest struct {
	City       string
	Days       int
	View       models.ViewMode
	Resolution models.Resolution
}

func (r ForecastRequest) Validate() error {
	if strings.TrimSpace(r.City) == "" {
		return repositories.ErrInvalidCity
	}
	if r.Days < MinForecastDays || r.Days > MaxForecastDays {
		return ErrInvalidDays
	}
	switch r.View {
	case models.ViewTemperature, models.ViewSky:
	default:
		return ErrInvalidView
	}
	switch r.Resolution {
	case models.ResolutionDaily, models.ResolutionRaw:
	default:
		return ErrInvalidResolution
	}
	return nil
}

// WeatherService runs fetch, filter and view building for one request. It holds no per-request state.
type WeatherService struct {
	repo  repositories.WeatherRepository
	icons IconResolver
	l     *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, icons IconResolver, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo:  repo,
		icons: icons,
		l:     l,
	}
}

// Forecast fetches the series for the requested city and renders the requested view.
func (s *WeatherService) Forecast(ctx context.Context, req ForecastRequest) (models.ForecastView, error) {
	if req.Resolution == "" {
		req.Resolution = models.ResolutionDaily
	}
	if err := req.Validate(); err != nil {
		return models.ForecastView{}, err
	}

	s.l.Debug("fetching forecast", map[string]any{
		"repo":       s.repo.Name(),
		"city":       req.City,
		"days":       req.Days,
		"view":       req.View,
		"resolution": req.Resolution,
	})

	forecast, err := s.repo.FetchForecast(ctx, req.City)
	if err != nil {
		return models.ForecastView{}, fmt.Errorf("fetch forecast for %s: %w", req.City, err)
	}

	var selection models.DaySelection
	if req.Resolution == models.ResolutionRaw {
		selection = SliceDays(forecast.Series, req.Days)
	} else {
		selection = FilterDays(forecast.Series, req.Days)
	}

	// The title echoes the place as typed; City is the provider's resolved name.
	view := models.ForecastView{
		City:       forecast.City,
		Country:    forecast.Country,
		Days:       req.Days,
		View:       req.View,
		Resolution: req.Resolution,
		Title:      fmt.Sprintf("%s for the next %d days in %s", req.View.Title(), req.Days, strings.TrimSpace(req.City)),
	}

	switch req.View {
	case models.ViewTemperature:
		view.Temperatures = temperaturePoints(selection)
	case models.ViewSky:
		view.Sky = s.skyPoints(selection)
	}

	metrics.ForecastViewsTotal.WithLabelValues(string(req.View), string(req.Resolution)).Inc()

	s.l.Info("built forecast view", map[string]any{
		"city":   view.City,
		"view":   view.View,
		"points": len(selection),
		"days":   forecast.Series.Days(),
	})

	return view, nil
}

func temperaturePoints(selection models.DaySelection) []models.TemperaturePoint {
	points := make([]models.TemperaturePoint, 0, len(selection))
	for _, p := range selection {
		points = append(points, models.TemperaturePoint{
			Time:        p.Time,
			Caption:     p.DateText,
			Temperature: p.Temperature,
		})
	}
	return points
}

// skyPoints leaves Icon empty when the asset is missing; the point itself is kept.
func (s *WeatherService) skyPoints(selection models.DaySelection) []models.SkyPoint {
	points := make([]models.SkyPoint, 0, len(selection))
	for _, p := range selection {
		icon, err := s.icons.URL(p.Sky)
		if err != nil {
			if !errors.Is(err, assets.ErrMissingAsset) {
				s.l.Error(err, map[string]any{"condition": p.Sky.String()})
			}
			s.l.Warning("sky point rendered without icon", map[string]any{"condition": p.Sky.String()})
			metrics.MissingAssetsTotal.WithLabelValues(p.Sky.String()).Inc()
			icon = ""
		}

		points = append(points, models.SkyPoint{
			Time:      p.Time,
			Caption:   p.DateText,
			Condition: p.Sky,
			Icon:      icon,
		})
	}
	return points
}
