// Package geometry holds the cell-space shapes used to place the spotlight
// and its popover. Coordinates are terminal cells with the origin at the top
// left; fractional values appear while scaling and are rounded outward only
// when a shape is rasterised.
package geometry

import "math"

// Size is a viewport size in whole cells.
type Size struct {
	W int
	H int
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// Insets describes the rows and columns reserved at the viewport edges.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Rect is an axis-aligned rectangle in cell space.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Y }

// MaxX returns the right edge (exclusive).
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge (exclusive).
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Inflate grows the rectangle by d on every side. Negative values shrink it.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Offset translates the rectangle.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Shift moves the rectangle by the leading insets, converting a position
// measured inside the safe area into viewport coordinates.
func (r Rect) Shift(in Insets) Rect {
	return r.Offset(in.Left, in.Top)
}

// ScaleAboutCenter scales width and height by s keeping the centre fixed.
func (r Rect) ScaleAboutCenter(s float64) Rect {
	if s <= 0 {
		return Rect{}
	}
	cx, cy := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Intersect returns the overlapping area of r and o, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.MinX(), o.MinX())
	y0 := math.Max(r.MinY(), o.MinY())
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing both r and o. Empty inputs
// are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := math.Min(r.MinX(), o.MinX())
	y0 := math.Min(r.MinY(), o.MinY())
	x1 := math.Max(r.MaxX(), o.MaxX())
	y1 := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x < r.MaxX() && y >= r.MinY() && y < r.MaxY()
}

// Cells returns the rectangle snapped outward to whole cells.
func (r Rect) Cells() (x0, y0, x1, y1 int) {
	return int(math.Floor(r.MinX())), int(math.Floor(r.MinY())),
		int(math.Ceil(r.MaxX())), int(math.Ceil(r.MaxY()))
}

// Viewport returns the rectangle covering a viewport of the given size.
func Viewport(s Size) Rect {
	return Rect{W: float64(s.W), H: float64(s.H)}
}
