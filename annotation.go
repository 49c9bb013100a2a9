package ggchart

// Annotation holds the state shared by chart annotations: the owning chart,
// visibility, and whether the anchor is already in screen pixels.
// Concrete annotations embed it.
type Annotation struct {
	chart       Chart
	visible     bool
	screenSpace bool
}

// Init binds the annotation to its chart. It must be called before the
// annotation is positioned or painted.
func (a *Annotation) Init(chart Chart) {
	a.chart = chart
}

// Chart returns the owning chart, or nil before Init.
func (a *Annotation) Chart() Chart {
	return a.chart
}

// IsVisible reports whether the annotation is painted.
func (a *Annotation) IsVisible() bool {
	return a.visible
}

// SetVisible shows or hides the annotation.
func (a *Annotation) SetVisible(visible bool) {
	a.visible = visible
}

// IsScreenSpace reports whether the anchor is in screen pixels rather than
// axis values.
func (a *Annotation) IsScreenSpace() bool {
	return a.screenSpace
}
