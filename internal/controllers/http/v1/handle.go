package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"weather-forecast/internal/assets"
	"weather-forecast/internal/models"
	"weather-forecast/internal/repositories"
	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/httpserver"
)

const (
	msgCityNotFound  = "City not found. Please try again."
	msgFetchFailed   = "Failed to fetch weather data"
	defaultDays      = 1
	defaultViewQuery = "temperature"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"City not found. Please try again."`
}

// GetForecast godoc
// @Summary Get forecast view
// @Description Fetches the 5 day / 3 hour forecast for a city and returns either a temperature trend or sky condition icons, one point per day.
// @Tags Weather
// @Produce json
// @Param city query string true "City name, optionally with country code" example(London,UK)
// @Param days query integer false "Number of forecast days (1-5, default: 1)" minimum(1) maximum(5) example(3)
// @Param view query string false "temperature or sky (default: temperature)" Enums(temperature, sky)
// @Param resolution query string false "daily (one point per day) or raw (every 3-hour point)" Enums(daily, raw)
// @Success 200 {object} models.ForecastView "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "City not found"
// @Failure 502 {object} ErrorResponse "Forecast provider failure"
// @Router /v1/forecast [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/v1/forecast?city=London&days=3&view=sky"
func (r *routes) handleForecast(c *fiber.Ctx) error {
	return r.forecast(c, c.Query("view", defaultViewQuery))
}

// GetTemperature godoc
// @Summary Get temperature trend
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param days query integer false "Number of forecast days (1-5, default: 1)" minimum(1) maximum(5)
// @Param resolution query string false "daily or raw" Enums(daily, raw)
// @Success 200 {object} models.ForecastView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/forecast/temperature [get]
func (r *routes) handleTemperature(c *fiber.Ctx) error {
	return r.forecast(c, string(models.ViewTemperature))
}

// GetSky godoc
// @Summary Get sky condition icons
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Param days query integer false "Number of forecast days (1-5, default: 1)" minimum(1) maximum(5)
// @Param resolution query string false "daily or raw" Enums(daily, raw)
// @Success 200 {object} models.ForecastView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/forecast/sky [get]
func (r *routes) handleSky(c *fiber.Ctx) error {
	return r.forecast(c, string(models.ViewSky))
}

func (r *routes) forecast(c *fiber.Ctx, viewQuery string) error {
	city := c.Query("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: city",
		})
	}

	days := defaultDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "Invalid days format",
			})
		}
		days = parsed
	}

	view, err := models.ParseViewMode(viewQuery)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "View must be temperature or sky",
		})
	}

	resolution, err := models.ParseResolution(c.Query("resolution", string(models.ResolutionDaily)))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Resolution must be daily or raw",
		})
	}

	ctx := repositories.WithCorrelationID(c.UserContext(), httpserver.RequestID(c))

	result, err := r.service.Forecast(ctx, weather.ForecastRequest{
		City:       city,
		Days:       days,
		View:       view,
		Resolution: resolution,
	})
	if err != nil {
		return r.errorResponse(c, err, city)
	}

	return c.JSON(result)
}

func (r *routes) errorResponse(c *fiber.Ctx, err error, city string) error {
	fields := map[string]any{
		"city":       city,
		"request_id": httpserver.RequestID(c),
	}

	switch {
	case errors.Is(err, weather.ErrInvalidDays):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Days must be between 1 and 5"})
	case errors.Is(err, weather.ErrInvalidView), errors.Is(err, weather.ErrInvalidResolution):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, repositories.ErrInvalidCity):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Missing required parameter: city"})
	case errors.Is(err, repositories.ErrLocationNotFound):
		r.l.Warning("city not found", fields)
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: msgCityNotFound})
	}

	r.l.Error(err, fields)

	return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: msgFetchFailed})
}

// GetIcon godoc
// @Summary Get sky condition icon
// @Tags Assets
// @Produce image/svg+xml
// @Param condition path string true "Sky condition" Enums(clear, cloud, rain, snow, unknown)
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /v1/icons/{condition} [get]
func (r *routes) handleIcon(c *fiber.Ctx) error {
	condition, err := models.ParseSkyCondition(c.Params("condition"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Unknown sky condition"})
	}

	data, contentType, err := r.icons.Open(condition)
	if err != nil {
		if errors.Is(err, assets.ErrMissingAsset) {
			r.l.Warning("icon not found", map[string]any{"condition": condition.String()})
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Icon not found"})
		}
		return err
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(data)
}
