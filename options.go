package ggchart

// PanelOption configures a TextPanel during creation.
//
// Example:
//
//	panel := ggchart.NewTextPanel("a\nb", 10, 10, true, ggchart.WithDistinctLines())
type PanelOption func(*panelOptions)

// panelOptions holds optional configuration for TextPanel creation.
type panelOptions struct {
	distinctLines bool
	hidden        bool
}

// defaultPanelOptions returns the default panel options.
func defaultPanelOptions() panelOptions {
	return panelOptions{
		distinctLines: false, // duplicate lines collapse to one entry
		hidden:        false,
	}
}

// WithDistinctLines measures and draws every line, including repeated ones.
//
// By default a panel keys its line measurements by line text, so a line that
// repeats an earlier one is measured and drawn only once, at the position
// of its first occurrence.
func WithDistinctLines() PanelOption {
	return func(o *panelOptions) {
		o.distinctLines = true
	}
}

// WithHidden creates the panel hidden. Use SetVisible to show it.
func WithHidden() PanelOption {
	return func(o *panelOptions) {
		o.hidden = true
	}
}
