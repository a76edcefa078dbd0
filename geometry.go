package main

import "math"

// Point is a position on the board in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func mid(a, b Point) Point {
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// nearSegment reports whether p lies within threshold of the segment a-b.
// It compares the path length through p against the segment length, so a
// point past an endpoint only passes while its detour stays under the
// threshold. This is not a perpendicular-distance test.
func nearSegment(a, b, p Point, threshold float64) bool {
	return math.Abs(dist(a, p)+dist(p, b)-dist(a, b)) < threshold
}

// arrowheadTips returns the two fork points of an arrowhead at (x2,y2):
// the direction from the head back toward (x1,y1), rotated ±30° and scaled
// to length.
func arrowheadTips(x1, y1, x2, y2, length float64) (x3, y3, x4, y4 float64) {
	angle := math.Atan2(y1-y2, x1-x2)
	x3 = x2 + length*math.Cos(angle-math.Pi/6)
	y3 = y2 + length*math.Sin(angle-math.Pi/6)
	x4 = x2 + length*math.Cos(angle+math.Pi/6)
	y4 = y2 + length*math.Sin(angle+math.Pi/6)
	return x3, y3, x4, y4
}

// pointInPolygon reports whether p is inside the polygon by even-odd ray
// casting. The polygon is closed implicitly from the last vertex back to
// the first.
func pointInPolygon(p Point, poly []Point) bool {
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// strokeOutline expands a freehand point sequence into a closed outline
// polygon of the given stroke width: one offset run along the left of the
// stroke, then back along the right. A single sample degenerates to a small
// quad so a dot is still fillable and hit-testable.
func strokeOutline(points []Point, width float64) []Point {
	half := width / 2
	if half < 1 {
		half = 1
	}
	switch len(points) {
	case 0:
		return nil
	case 1:
		p := points[0]
		return []Point{
			{p.X - half, p.Y - half},
			{p.X + half, p.Y - half},
			{p.X + half, p.Y + half},
			{p.X - half, p.Y + half},
		}
	}

	outline := make([]Point, 0, 2*len(points))
	right := make([]Point, 0, len(points))
	for i, p := range points {
		var d Point
		switch {
		case i == 0:
			d = direction(points[0], points[1])
		case i == len(points)-1:
			d = direction(points[i-1], points[i])
		default:
			d = direction(points[i-1], points[i+1])
		}
		// Normal to the local direction, scaled to half the width.
		n := Point{-d.Y * half, d.X * half}
		outline = append(outline, Point{p.X + n.X, p.Y + n.Y})
		right = append(right, Point{p.X - n.X, p.Y - n.Y})
	}
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	return outline
}

// direction returns the unit vector from a to b. Coincident points fall
// back to a horizontal direction so zero-length segments still get a
// well-defined normal.
func direction(a, b Point) Point {
	d := dist(a, b)
	if d == 0 {
		return Point{1, 0}
	}
	return Point{(b.X - a.X) / d, (b.Y - a.Y) / d}
}
