package models

import "fmt"

// Months is the fixed calendar ordering of the table rows. Row i of a
// SolarTable always carries the i-th month here.
var Months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type MonthlyRow struct {
	Month      string  `json:"month" example:"Jan"`
	AvgDNI     float64 `json:"avg_dni" example:"6.06"`
	AvgGHI     float64 `json:"avg_ghi" example:"4.87"`
	AvgLatTilt float64 `json:"avg_lat_tilt" example:"6.11"`
}

type SolarTable struct {
	ProviderName string       `json:"provider_name" example:"nrel"`
	Lat          float64      `json:"lat" example:"40.7128"`
	Lon          float64      `json:"lon" example:"-74.006"`
	Rows         []MonthlyRow `json:"rows"`
}

func (t *SolarTable) RequestParams() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", t.Lat, t.Lon)
}
