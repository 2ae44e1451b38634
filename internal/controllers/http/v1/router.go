package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"solar-api/internal/services/solar"
	"solar-api/pkg/logger"
)

type routes struct {
	service *solar.SolarService
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	solarService *solar.SolarService,
	l *logger.Logger,
) {
	r := &routes{
		service: solarService,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/solar", r.handleSolarCall)
}
