package dto

import "homedock-be/pkg/openmeteo"

// WeatherLocation names the coordinate the snapshot was fetched for.
// Source is "manual", "ip", or "default".
type WeatherLocation struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"`
}

type WeatherResponse struct {
	Location   WeatherLocation   `json:"location"`
	Current    openmeteo.Current `json:"current"`
	Daily      openmeteo.Daily   `json:"daily"`
	ObservedAt string            `json:"observedAt"`
}
