package blinklib

// Geometry describes one monitor as width, height and top-left offset in
// the virtual screen.
type Geometry struct {
	Width  int
	Height int
	X      int
	Y      int
}

// GeometrySource enumerates the monitors an overlay should cover. The
// engine queries it once at start and again on every RefreshGeometryRequest,
// caching the result in between.
type GeometrySource interface {
	Current() ([]Geometry, error)
}

// StaticGeometry is a GeometrySource that always returns the same list.
// Useful when monitor enumeration is unavailable or in tests.
type StaticGeometry []Geometry

func (s StaticGeometry) Current() ([]Geometry, error) {
	return []Geometry(s), nil
}
