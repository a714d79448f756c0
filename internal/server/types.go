package server

import (
	"github.com/menta2k/viewfinder/pkg/scaling"
	"github.com/menta2k/viewfinder/pkg/types"
)

// Target overrides the configured display for a single request. Empty
// fields fall back to the server configuration.
type Target struct {
	Strategy   string `json:"strategy,omitempty"`
	Viewfinder string `json:"viewfinder,omitempty"`
	// CameraRotation in degrees between camera and display
	CameraRotation *int `json:"camera_rotation,omitempty"`
}

// BestRequest asks for the best of a camera's preview sizes
type BestRequest struct {
	Target
	// Sizes in natural camera orientation, as WxH
	Sizes []string `json:"sizes,omitempty"`
}

// BestResponse is the selected size and the full ranking
type BestResponse struct {
	Strategy   string              `json:"strategy"`
	Best       types.Size          `json:"best"`
	Score      float64             `json:"score"`
	Candidates []scaling.Candidate `json:"candidates"`
}

// PlaceRequest asks where a preview goes in the viewfinder
type PlaceRequest struct {
	Strategy   string `json:"strategy,omitempty"`
	Viewfinder string `json:"viewfinder,omitempty"`
	// Preview in current display orientation, as WxH
	Preview string `json:"preview"`
}

// PlaceResponse is the placement of the scaled preview
type PlaceResponse struct {
	Strategy   string     `json:"strategy"`
	Viewfinder types.Size `json:"viewfinder"`
	Preview    types.Size `json:"preview"`
	Rect       types.Rect `json:"rect"`
}

// FramingRequest overrides the configured framing options
type FramingRequest struct {
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	EdgeFraction   float64 `json:"edge_fraction,omitempty"`
	MarginFraction float64 `json:"margin_fraction,omitempty"`
}

// LayoutRequest lays out either an explicit preview or the best of sizes
type LayoutRequest struct {
	BestRequest
	// Preview in natural camera orientation; skips selection when set
	Preview string          `json:"preview,omitempty"`
	Framing *FramingRequest `json:"framing,omitempty"`
}

// StrategiesResponse lists the available strategies
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
	Default    string   `json:"default"`
}

// HealthResponse reports server health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}
