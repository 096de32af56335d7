package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast/config"
	"weather-forecast/internal/assets"
	"weather-forecast/internal/models"
	"weather-forecast/internal/repositories"
	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/httpserver"
	"weather-forecast/pkg/logger"
)

type fakeRepository struct {
	series   models.ForecastSeries
	err      error
	lastCity string
	lastID   string
}

func (f *fakeRepository) Name() string { return "fake" }

func (f *fakeRepository) FetchForecast(ctx context.Context, city string) (models.Forecast, error) {
	f.lastCity = city
	f.lastID = repositories.CorrelationID(ctx)
	if f.err != nil {
		return models.Forecast{}, f.err
	}
	return models.Forecast{
		RepositoryName: f.Name(),
		City:           city,
		Country:        "GB",
		Series:         f.series,
	}, nil
}

func fiveDaySeries() models.ForecastSeries {
	start := time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)
	skies := []models.SkyCondition{models.SkyClear, models.SkyCloud, models.SkyRain, models.SkySnow}

	series := make(models.ForecastSeries, 0, 40)
	for i := 0; i < 40; i++ {
		ts := start.Add(time.Duration(i) * 3 * time.Hour)
		series = append(series, models.ForecastPoint{
			Time:        ts,
			DateText:    ts.Format("2006-01-02 15:04:05"),
			Temperature: 15 + float64(i%8),
			Sky:         skies[(i/8)%len(skies)],
		})
	}
	return series
}

func newTestApp(t *testing.T, repo repositories.WeatherRepository) *fiber.App {
	t.Helper()

	l := logger.NewZapLogger(logger.Options{AppName: "test-app", Level: "debug"}, io.Discard)
	icons, err := assets.NewIconSet("", "")
	require.NoError(t, err)

	app := httpserver.InitFiberServer(&config.Config{
		App: config.AppConfig{Name: "test-app"},
		Server: config.ServerConfig{
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			IdleTimeout:  time.Second,
		},
	})
	NewRouter(app, weather.NewWeatherService(repo, icons, l), icons, l)
	return app
}

func doRequest(t *testing.T, app *fiber.App, target string) (int, []byte) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decodeView(t *testing.T, body []byte) models.ForecastView {
	t.Helper()
	var view models.ForecastView
	require.NoError(t, json.Unmarshal(body, &view))
	return view
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

func TestHandleForecast_DefaultsToOneDayTemperature(t *testing.T) {
	repo := &fakeRepository{series: fiveDaySeries()}
	app := newTestApp(t, repo)

	status, body := doRequest(t, app, "/v1/forecast?city=London")
	require.Equal(t, fiber.StatusOK, status)

	view := decodeView(t, body)
	assert.Equal(t, "London", view.City)
	assert.Equal(t, 1, view.Days)
	assert.Equal(t, models.ViewTemperature, view.View)
	assert.Equal(t, models.ResolutionDaily, view.Resolution)
	assert.Equal(t, "Temperature for the next 1 days in London", view.Title)
	require.Len(t, view.Temperatures, 1)
	assert.Empty(t, view.Sky)
	assert.Equal(t, "London", repo.lastCity)
}

func TestHandleForecast_SkyView(t *testing.T) {
	app := newTestApp(t, &fakeRepository{series: fiveDaySeries()})

	status, body := doRequest(t, app, "/v1/forecast?city=London&days=4&view=sky")
	require.Equal(t, fiber.StatusOK, status)

	view := decodeView(t, body)
	require.Len(t, view.Sky, 4)
	assert.Empty(t, view.Temperatures)

	want := []models.SkyCondition{models.SkyClear, models.SkyCloud, models.SkyRain, models.SkySnow}
	for i, p := range view.Sky {
		assert.Equal(t, want[i], p.Condition)
		assert.Equal(t, "/v1/icons/"+want[i].String(), p.Icon)
	}
}

func TestHandleForecast_RawResolution(t *testing.T) {
	app := newTestApp(t, &fakeRepository{series: fiveDaySeries()})

	status, body := doRequest(t, app, "/v1/forecast/temperature?city=London&days=2&resolution=raw")
	require.Equal(t, fiber.StatusOK, status)

	view := decodeView(t, body)
	assert.Equal(t, models.ResolutionRaw, view.Resolution)
	assert.Len(t, view.Temperatures, 16)
}

func TestHandleSky_FixesView(t *testing.T) {
	app := newTestApp(t, &fakeRepository{series: fiveDaySeries()})

	status, body := doRequest(t, app, "/v1/forecast/sky?city=London&days=5&view=temperature")
	require.Equal(t, fiber.StatusOK, status)

	view := decodeView(t, body)
	assert.Equal(t, models.ViewSky, view.View)
	assert.Len(t, view.Sky, 5)
}

func TestHandleForecast_PassesRequestID(t *testing.T) {
	repo := &fakeRepository{series: fiveDaySeries()}
	app := newTestApp(t, repo)

	req := httptest.NewRequest(fiber.MethodGet, "/v1/forecast?city=Paris", nil)
	req.Header.Set(httpserver.RequestIDHeader, "req-123")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(httpserver.RequestIDHeader))
	assert.Equal(t, "req-123", repo.lastID)
}

func TestHandleForecast_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr string
	}{
		{name: "missing city", target: "/v1/forecast", wantErr: "Missing required parameter: city"},
		{name: "days not a number", target: "/v1/forecast?city=London&days=three", wantErr: "Invalid days format"},
		{name: "days too small", target: "/v1/forecast?city=London&days=0", wantErr: "Days must be between 1 and 5"},
		{name: "days too large", target: "/v1/forecast?city=London&days=6", wantErr: "Days must be between 1 and 5"},
		{name: "unknown view", target: "/v1/forecast?city=London&view=wind", wantErr: "View must be temperature or sky"},
		{name: "unknown resolution", target: "/v1/forecast?city=London&resolution=hourly", wantErr: "Resolution must be daily or raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{series: fiveDaySeries()}
			app := newTestApp(t, repo)

			status, body := doRequest(t, app, tt.target)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tt.wantErr, decodeError(t, body))
			assert.Empty(t, repo.lastCity, "repository must not be called")
		})
	}
}

func TestHandleForecast_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantErr    string
	}{
		{
			name:       "city not found",
			err:        &repositories.LocationNotFoundError{City: "Atlantis"},
			wantStatus: fiber.StatusNotFound,
			wantErr:    msgCityNotFound,
		},
		{
			name:       "transport failure",
			err:        &repositories.TransportError{Op: "do request", Err: errors.New("connection refused")},
			wantStatus: fiber.StatusBadGateway,
			wantErr:    msgFetchFailed,
		},
		{
			name:       "invalid api key",
			err:        &repositories.TransportError{Op: "check status", StatusCode: 401, Err: repositories.ErrInvalidAPIKey},
			wantStatus: fiber.StatusBadGateway,
			wantErr:    msgFetchFailed,
		},
		{
			name:       "malformed body",
			err:        &repositories.ParseError{Op: "decode body", Err: errors.New("unexpected EOF")},
			wantStatus: fiber.StatusBadGateway,
			wantErr:    msgFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &fakeRepository{err: tt.err})

			status, body := doRequest(t, app, "/v1/forecast?city=Atlantis")
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantErr, decodeError(t, body))
		})
	}
}

func TestHandleIcon(t *testing.T) {
	app := newTestApp(t, &fakeRepository{})

	conditions := append(models.SkyConditions(), models.SkyUnknown)
	for _, c := range conditions {
		t.Run(c.String(), func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/v1/icons/"+c.String(), nil)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, "image/svg+xml", resp.Header.Get(fiber.HeaderContentType))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "<svg")
		})
	}

	t.Run("unknown condition name", func(t *testing.T) {
		status, _ := doRequest(t, app, "/v1/icons/hail")
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	app := newTestApp(t, &fakeRepository{series: fiveDaySeries()})

	status, _ := doRequest(t, app, "/manage/health")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "/v1/forecast?city=London")
	require.Equal(t, fiber.StatusOK, status)

	status, body := doRequest(t, app, "/metrics")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), "forecastViewsTotal")
}
