package layout

// Rect is an on-screen rectangle. Width and height may be negative; the
// edge accessors normalize so Top <= Bottom and Left <= Right.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge.
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge.
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Contains reports whether the point is within the rectangle bounds.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}
