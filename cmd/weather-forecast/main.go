package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-forecast/config"
	_ "weather-forecast/docs"
	"weather-forecast/internal/assets"
	v1 "weather-forecast/internal/controllers/http/v1"
	"weather-forecast/internal/repositories"
	"weather-forecast/internal/services/weather"
	"weather-forecast/pkg/httpserver"
	"weather-forecast/pkg/logger"
	"weather-forecast/pkg/observe"
)

// @title Weather Forecast API
// @version 1.0.0
// @description Five day forecast views for a city: temperature trend or sky condition icons, one point per day.
// @description Forecasts are fetched from OpenWeatherMap in metric units.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Forecast views
// @tag.name Assets
// @tag.description Sky condition icons
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var hooks []io.Writer

	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		} else {
			hooks = append(hooks, hook)
		}
	}

	l := logger.NewZapLogger(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
		Hooks:   hooks,
	}, os.Stdout)
	if hook != nil {
		hook.SetLogger(l)
	}

	icons, err := assets.NewIconSet(cnf.Assets.Dir, assets.DefaultURLPrefix)
	if err != nil {
		l.Fatal("cannot load icon set", map[string]any{"err": err.Error(), "dir": cnf.Assets.Dir})
	}

	repo, err := repositories.InitWeatherRepository(cnf, l)
	if err != nil {
		l.Fatal("cannot init forecast provider", map[string]any{"err": err.Error()})
	}

	service := weather.NewWeatherService(repo, icons, l)

	app := httpserver.InitFiberServer(cnf)

	v1.NewRouter(
		app,
		service,
		icons,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"env":      cnf.App.Env,
		"version":  cnf.App.Version,
		"provider": repo.Name(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Stop()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
