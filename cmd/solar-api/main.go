package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solar-api/config"
	_ "solar-api/docs"
	v1 "solar-api/internal/controllers/http/v1"
	"solar-api/internal/repositories"
	"solar-api/internal/services/solar"
	"solar-api/pkg/httpserver"
	"solar-api/pkg/logger"
	"solar-api/pkg/observe"
)

// @title Solar Resource API
// @version 1.0.0
// @description A monthly solar resource API built with Go and Fiber.
// @description Fetches average monthly solar irradiance data from upstream providers and normalizes it into a fixed 12-row table.
// @termsOfService http://swagger.io/terms/

// @contact.name Solar API Support
// @contact.url https://github.com/your-username/solar-api

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Solar
// @tag.description Monthly solar resource operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	var sentryWriter *observe.SentryWriter
	if cnf.SentryDSN != "" {
		sw, err := observe.NewSentryWriter(cnf.SentryDSN, cnf.AppEnv, cnf.AppName)
		if err != nil {
			fmt.Println("sentry init failed:", err)
		} else {
			sentryWriter = sw
			writers = append(writers, sw)
		}
	}

	l := logger.NewZapLogger(cnf.AppName, writers...)

	app := httpserver.InitFiberServer(cnf.AppName)

	repos := repositories.InitSolarRepositories(cnf, l)

	service := solar.NewSolarService(repos, l)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port, "providers": len(repos)})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if sentryWriter != nil {
			sentryWriter.Flush()
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
