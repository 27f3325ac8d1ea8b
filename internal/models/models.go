// Package models defines shared data types
package models

// Coordinate is a WGS84 latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Building is a catalog entry shown on the map
type Building struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Location    Coordinate `json:"location"`
	Architect   string     `json:"architect,omitempty"`
	Year        int        `json:"year,omitempty"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
}

// Pin is the map marker derived from a Building
type Pin struct {
	BuildingID string     `json:"building_id"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
	Coordinate Coordinate `json:"coordinate"`
	IsFavorite bool       `json:"is_favorite"`
}

// PinWithDistance is a Pin with distance from a reference point
type PinWithDistance struct {
	Pin
	DistanceMeters float64 `json:"distance_meters"`
}

// Region is a map viewport centered on a coordinate
type Region struct {
	Center        Coordinate `json:"center"`
	LatSpanMeters float64    `json:"lat_span_meters"`
	LngSpanMeters float64    `json:"lng_span_meters"`
	MinLat        float64    `json:"min_lat"`
	MaxLat        float64    `json:"max_lat"`
	MinLng        float64    `json:"min_lng"`
	MaxLng        float64    `json:"max_lng"`
}
