package ggchart

import "errors"

// Sentinel errors for ggchart.
var (
	// ErrNotInitialized is returned when an annotation that needs chart
	// geometry has not been bound to a chart with Init.
	ErrNotInitialized = errors.New("ggchart: annotation not initialized with a chart")

	// ErrNoFace is returned when a PanelStyle has no font face.
	ErrNoFace = errors.New("ggchart: panel style has no font face")

	// ErrNoColor is returned when a PanelStyle color is nil.
	ErrNoColor = errors.New("ggchart: panel style color is nil")
)
