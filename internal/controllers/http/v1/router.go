package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"

	"weather-forecast/internal/assets"
	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/logger"
	"weather-forecast/pkg/metrics"
)

type routes struct {
	service *weather.WeatherService
	icons   *assets.IconSet
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	icons *assets.IconSet,
	l *logger.Logger,
) {
	r := &routes{
		service: weatherService,
		icons:   icons,
		l:       l,
	}

	// Swagger documentation, served from the registered docs package
	app.Get("/swagger/*", swagger.New(swagger.Config{
		DeepLinking: true,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// API routes
	v1 := app.Group("/v1")
	v1.Get("/forecast", r.handleForecast)
	v1.Get("/forecast/temperature", r.handleTemperature)
	v1.Get("/forecast/sky", r.handleSky)

	app.Get(icons.URLPrefix()+"/:condition", r.handleIcon)
}
