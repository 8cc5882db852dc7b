package layout

// Rect is a rectangle in cell coordinates. X and Y are the top-left corner
// and may be negative (margins can push an origin past zero); Width and
// Height are never negative, not even transiently between phases.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect, clamping negative dimensions to zero.
func NewRect(x, y, width, height int) Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains returns true if the cell (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect shrunk by the given edges. Dimensions floor at
// zero rather than going negative.
func (r Rect) Inset(edges Edges) Rect {
	return NewRect(
		r.X+edges.Left,
		r.Y+edges.Top,
		r.Width-edges.Left-edges.Right,
		r.Height-edges.Top-edges.Bottom,
	)
}

// Outset returns a new Rect expanded outward by the given edges.
func (r Rect) Outset(edges Edges) Rect {
	return NewRect(
		r.X-edges.Left,
		r.Y-edges.Top,
		r.Width+edges.Left+edges.Right,
		r.Height+edges.Top+edges.Bottom,
	)
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Size is a width/height pair. Both dimensions are non-negative.
type Size struct {
	Width, Height int
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	if other.Width > s.Width {
		s.Width = other.Width
	}
	if other.Height > s.Height {
		s.Height = other.Height
	}
	return s
}
