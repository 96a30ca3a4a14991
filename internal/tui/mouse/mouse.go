package mouse

// Rect is a screen-cell rectangle. The right and bottom edges are exclusive.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named clickable area with an optional payload for the handler.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap maps screen coordinates to the regions drawn there. Regions added
// later sit on top of earlier ones, so overlays win hit tests against the
// content they cover.
type HitMap struct {
	regions []Region
}

func NewHitMap() *HitMap {
	return &HitMap{}
}

func (m *HitMap) AddRect(id string, x, y, w, h int, data any) {
	m.regions = append(m.regions, Region{
		ID:   id,
		Rect: Rect{X: x, Y: y, W: w, H: h},
		Data: data,
	})
}

// Test returns the topmost region containing the point, or nil.
func (m *HitMap) Test(x, y int) *Region {
	for i := len(m.regions) - 1; i >= 0; i-- {
		if m.regions[i].Rect.Contains(x, y) {
			return &m.regions[i]
		}
	}
	return nil
}

func (m *HitMap) Clear() {
	m.regions = m.regions[:0]
}

func (m *HitMap) Regions() []Region {
	return m.regions
}
