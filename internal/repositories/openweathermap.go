package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"weather-forecast/internal/models"
	"weather-forecast/pkg/logger"
	"weather-forecast/pkg/metrics"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org"

	forecastPath   = "/data/2.5/forecast"
	dateTextLayout = "2006-01-02 15:04:05"
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", ErrInvalidAPIKey)
	}
	if baseURL == "" {
		baseURL = OpenWeatherMapBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherMapRepository{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (w *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

// statusCode accepts both "404" and 404: the provider is not consistent about cod.
type statusCode string

func (c *statusCode) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*c = statusCode(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*c = statusCode(s)
	return nil
}

type OpenWeatherMapResponse struct {
	Cod  statusCode `json:"cod"`
	List []struct {
		Dt    int64  `json:"dt"`
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			ID          int    `json:"id"`
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// FetchForecast issues exactly one request for the 5 day / 3 hour forecast of city.
func (w *OpenWeatherMapRepository) FetchForecast(ctx context.Context, city string) (models.Forecast, error) {
	forecast := models.Forecast{
		RepositoryName: w.Name(),
		City:           strings.TrimSpace(city),
	}

	if forecast.City == "" {
		return forecast, ErrInvalidCity
	}

	req, err := w.buildRequest(ctx, forecast.City)
	if err != nil {
		return forecast, &TransportError{Op: "create request", Err: err}
	}

	w.l.Info("making openweathermap API request", map[string]any{
		"city":           forecast.City,
		"correlation_id": req.Header.Get("X-Correlation-ID"),
	})

	start := time.Now()
	resp, err := w.httpClient.Do(req)
	if err != nil {
		metrics.ObserveWeatherAPICall(metrics.OutcomeTransport, time.Since(start))
		return forecast, &TransportError{Op: "do request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveWeatherAPICall(metrics.OutcomeTransport, time.Since(start))
		return forecast, &TransportError{Op: "read response body", StatusCode: resp.StatusCode, Err: err}
	}

	w.l.Info("received openweathermap API response", map[string]any{
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	if err := checkStatus(resp.StatusCode, forecast.City); err != nil {
		metrics.ObserveWeatherAPICall(metrics.OutcomeForStatus(resp.StatusCode), time.Since(start))
		return forecast, err
	}

	var response OpenWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		metrics.ObserveWeatherAPICall(metrics.OutcomeParse, time.Since(start))
		return forecast, &ParseError{Op: "decode body", Err: err}
	}

	// The provider has been seen answering 200 with an error code in the body.
	if response.Cod == "404" {
		metrics.ObserveWeatherAPICall(metrics.OutcomeNotFound, time.Since(start))
		return forecast, &LocationNotFoundError{City: forecast.City}
	}

	series, err := parseSeries(response)
	if err != nil {
		metrics.ObserveWeatherAPICall(metrics.OutcomeParse, time.Since(start))
		return forecast, err
	}
	metrics.ObserveWeatherAPICall(metrics.OutcomeSuccess, time.Since(start))

	if response.City.Name != "" {
		forecast.City = response.City.Name
	}
	forecast.Country = response.City.Country
	forecast.TimezoneOffset = response.City.Timezone
	forecast.Series = series

	w.l.Info("parsed API response", map[string]any{
		"params": forecast.RequestParams(),
		"days":   series.Days(),
	})

	return forecast, nil
}

func (w *OpenWeatherMapRepository) buildRequest(ctx context.Context, city string) (*http.Request, error) {
	u, err := url.Parse(w.BaseURL + forecastPath)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	params.Set("appid", w.APIKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-ID", CorrelationID(ctx))

	return req, nil
}

func checkStatus(statusCode int, city string) error {
	switch {
	case statusCode == http.StatusOK:
		return nil
	case statusCode == http.StatusNotFound:
		return &LocationNotFoundError{City: city}
	case statusCode == http.StatusUnauthorized:
		return &TransportError{Op: "authenticate", StatusCode: statusCode, Err: ErrInvalidAPIKey}
	}
	return &TransportError{Op: "fetch forecast", StatusCode: statusCode}
}

// parseSeries converts the provider list into a chronological series in the city's local time.
func parseSeries(response OpenWeatherMapResponse) (models.ForecastSeries, error) {
	if response.List == nil {
		return nil, &ParseError{Op: "decode body", Err: errors.New("missing forecast list")}
	}

	loc := time.UTC
	if response.City.Timezone != 0 {
		loc = time.FixedZone(response.City.Name, response.City.Timezone)
	}

	series := make(models.ForecastSeries, 0, len(response.List))
	for i, item := range response.List {
		ts, err := entryTime(item.Dt, item.DtTxt)
		if err != nil {
			return nil, &ParseError{Op: fmt.Sprintf("entry %d", i), Err: err}
		}
		if item.Main.Temp == nil {
			return nil, &ParseError{Op: fmt.Sprintf("entry %d", i), Err: errors.New("missing temperature")}
		}
		if len(item.Weather) == 0 {
			return nil, &ParseError{Op: fmt.Sprintf("entry %d", i), Err: errors.New("missing weather condition")}
		}

		condition := item.Weather[0]
		sky := models.SkyFromCode(condition.ID)
		if sky == models.SkyUnknown {
			sky = models.SkyFromLabel(condition.Main)
		}

		dateText := item.DtTxt
		if dateText == "" {
			dateText = ts.UTC().Format(dateTextLayout)
		}

		series = append(series, models.ForecastPoint{
			Time:          ts.In(loc),
			DateText:      dateText,
			Temperature:   *item.Main.Temp,
			Sky:           sky,
			ConditionCode: condition.ID,
			Description:   condition.Description,
		})
	}

	slices.SortStableFunc(series, func(a, b models.ForecastPoint) int {
		return a.Time.Compare(b.Time)
	})

	return series, nil
}

// entryTime prefers the unix timestamp; dt_txt is UTC.
func entryTime(dt int64, dtTxt string) (time.Time, error) {
	if dt > 0 {
		return time.Unix(dt, 0).UTC(), nil
	}
	if dtTxt == "" {
		return time.Time{}, errors.New("missing timestamp")
	}
	ts, err := time.ParseInLocation(dateTextLayout, dtTxt, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse dt_txt %s: %w", dtTxt, err)
	}
	return ts, nil
}
