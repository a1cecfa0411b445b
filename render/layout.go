package render

// Region is a named clickable rectangle in screen cells
type Region struct {
	Name string
	X, Y int
	W, H int
}

// Contains reports whether the cell lies inside the region
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout collects the regions drawn in the last frame
type Layout struct {
	regions []Region
}

// Reset drops all regions
func (l *Layout) Reset() {
	l.regions = l.regions[:0]
}

// Add registers a region; later regions win on overlap
func (l *Layout) Add(name string, x, y, w, h int) {
	l.regions = append(l.regions, Region{Name: name, X: x, Y: y, W: w, H: h})
}

// HitTest returns the region name under the cell, empty if none
func (l *Layout) HitTest(x, y int) string {
	for i := len(l.regions) - 1; i >= 0; i-- {
		if l.regions[i].Contains(x, y) {
			return l.regions[i].Name
		}
	}
	return ""
}

// Find returns a region by name
func (l *Layout) Find(name string) (Region, bool) {
	for _, r := range l.regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// Regions returns the current regions in draw order
func (l *Layout) Regions() []Region {
	return l.regions
}
