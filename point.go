package pie3d

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// EllipsePoint returns the point at angle on the axis-aligned ellipse
// centered at c with radii rx and ry.
func EllipsePoint(c Point, rx, ry, angle float64) Point {
	return Point{X: c.X + rx*math.Cos(angle), Y: c.Y + ry*math.Sin(angle)}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}
