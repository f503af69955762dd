package tui

const (
	// Input Dimensions
	InputWidth = 40

	// Layout
	LabelWidth     = 13
	PanelWidth     = 54
	PanelMinHeight = 9
	GalleryRows    = 5

	// Display trims
	StatusTrim  = 70
	GalleryTrim = 44
)
