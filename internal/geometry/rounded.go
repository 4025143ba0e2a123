package geometry

import "math"

// RoundedRect is a rectangle whose corners are cut by circular arcs.
// Terminal cells are roughly twice as tall as they are wide, so the vertical
// radius is halved to keep corners looking circular.
type RoundedRect struct {
	Rect
	Radius float64
}

const cellAspect = 2.0

// Contains reports whether the point lies inside the rounded shape.
func (rr RoundedRect) Contains(x, y float64) bool {
	if !rr.Rect.Contains(x, y) {
		return false
	}
	rx, ry := rr.radii()
	if rx <= 0 || ry <= 0 {
		return true
	}

	// Distance into the nearest corner box, if any.
	var dx, dy float64
	switch {
	case x < rr.MinX()+rx:
		dx = rr.MinX() + rx - x
	case x > rr.MaxX()-rx:
		dx = x - (rr.MaxX() - rx)
	default:
		return true
	}
	switch {
	case y < rr.MinY()+ry:
		dy = rr.MinY() + ry - y
	case y > rr.MaxY()-ry:
		dy = y - (rr.MaxY() - ry)
	default:
		return true
	}
	return (dx*dx)/(rx*rx)+(dy*dy)/(ry*ry) <= 1
}

// RowSpan returns the half-open range of cell columns on row whose centres
// fall inside the shape. A rounded rectangle is convex, so every row yields
// at most one span.
func (rr RoundedRect) RowSpan(row int) (x0, x1 int, ok bool) {
	cy := float64(row) + 0.5
	if cy < rr.MinY() || cy >= rr.MaxY() {
		return 0, 0, false
	}
	left := int(math.Floor(rr.MinX()))
	right := int(math.Ceil(rr.MaxX()))

	for col := left; col < right; col++ {
		if rr.Contains(float64(col)+0.5, cy) {
			if !ok {
				x0, ok = col, true
			}
			x1 = col + 1
		} else if ok {
			break
		}
	}
	if !ok {
		return 0, 0, false
	}
	return x0, x1, true
}

func (rr RoundedRect) radii() (float64, float64) {
	r := rr.Radius
	if r <= 0 {
		return 0, 0
	}
	rx := math.Min(r, rr.W/2)
	ry := math.Min(r/cellAspect, rr.H/2)
	return rx, ry
}
