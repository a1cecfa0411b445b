package parameter

// Window
const (
	// WindowTitle is shown in the terminal title bar
	WindowTitle = "Gravity Game - Dense Galaxy"

	// WindowWidth and WindowHeight are the nominal layout size in cells, the terminal may be larger
	WindowWidth  = 80
	WindowHeight = 24
)

// Camera projection
const (
	// CellWorldWidth is world units per terminal column
	CellWorldWidth = 20.0

	// CellWorldHeight is world units per terminal row, rows are about twice as tall as columns
	CellWorldHeight = 40.0
)

// Minimap
const (
	// MinimapScale is minimap cells per world unit relative to the main view
	MinimapScale = 0.05

	// MinimapFraction is the fraction of screen width and height taken by the minimap
	MinimapFraction = 0.25
)

// Buttons
const (
	ButtonWidth  = 24
	ButtonHeight = 3
)
