package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SolarResponse represents the monthly solar resource response
type SolarResponse struct {
	Latitude  float64                 `json:"latitude" example:"40.7128"`
	Longitude float64                 `json:"longitude" example:"-74.006"`
	Tables    map[string][]MonthlyRow `json:"tables"`
}

// MonthlyRow represents a single calendar month's solar resource data
type MonthlyRow struct {
	Month      string  `json:"month" example:"Jan"`
	AvgDNI     float64 `json:"avg_dni" example:"6.06"`
	AvgGHI     float64 `json:"avg_ghi" example:"4.87"`
	AvgLatTilt float64 `json:"avg_lat_tilt" example:"6.11"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: lat"`
}

// GetSolarTable godoc
// @Summary Get monthly solar resource table
// @Description Retrieves average monthly solar irradiance data (DNI, GHI, latitude tilt) for a specific location
// @Tags Solar
// @Accept json
// @Produce json
// @Param lat query number true "Latitude coordinate (-90 to 90)" minimum(-90) maximum(90) example(40.7128)
// @Param lon query number true "Longitude coordinate (-180 to 180)" minimum(-180) maximum(180) example(-74.006)
// @Success 200 {object} SolarResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 502 {object} ErrorResponse "Upstream solar data providers unavailable"
// @Router /solar [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/solar?lat=40.7128&lon=-74.006"
func (r *routes) handleSolarCall(c *fiber.Ctx) error {
	lat := c.Query("lat")
	lon := c.Query("lon")

	// Check for required parameters
	if lat == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lat",
		})
	}

	if lon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: lon",
		})
	}

	latFloat, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid latitude format",
		})
	}

	if latFloat < -90 || latFloat > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Latitude must be between -90 and 90",
		})
	}

	lonFloat, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid longitude format",
		})
	}

	if lonFloat < -180 || lonFloat > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Longitude must be between -180 and 180",
		})
	}

	tables, err := r.service.FetchSolarTables(c.Context(), latFloat, lonFloat)
	if err != nil {
		r.l.Error(err, map[string]any{
			"lat": latFloat,
			"lon": lonFloat,
		})

		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "Failed to fetch solar resource data",
		})
	}

	// Convert tables to the documented response format
	solarTables := make(map[string][]MonthlyRow)
	for provider, rows := range tables {
		if rows != nil {
			solarTables[provider] = make([]MonthlyRow, len(rows))
			for i, row := range rows {
				solarTables[provider][i] = MonthlyRow{
					Month:      row.Month,
					AvgDNI:     row.AvgDNI,
					AvgGHI:     row.AvgGHI,
					AvgLatTilt: row.AvgLatTilt,
				}
			}
		}
	}

	response := SolarResponse{
		Latitude:  latFloat,
		Longitude: lonFloat,
		Tables:    solarTables,
	}

	return c.JSON(response)
}
