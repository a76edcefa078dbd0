package main

// TextMeasurer reports the on-screen width and height of a text run, in
// canvas units. Metrics depend on the rendering surface, so the active
// surface (terminal grid or PNG context) supplies the implementation.
type TextMeasurer interface {
	MeasureText(text string, size float64) (w, h float64)
}

// isNear reports whether p lies within the proximity threshold of the
// element's visible geometry.
func isNear(el Element, p Point, m TextMeasurer) bool {
	switch el.Tool {
	case ToolLine, ToolArrow:
		return nearSegment(Point{el.X1, el.Y1}, Point{el.X2, el.Y2}, p, proximityThreshold)
	case ToolRectangle:
		return nearBox(el.X1, el.Y1, el.X2, el.Y2, p)
	case ToolCircle:
		// Bounding-box approximation: the box is tested, not the curve.
		return nearBox(el.X1, el.Y1, el.X2, el.Y2, p)
	case ToolText:
		w, h := m.MeasureText(el.Text, el.FontSize)
		return nearBox(el.X1, el.Y1, el.X1+w, el.Y1+h, p)
	case ToolPencil:
		// Exact: the same filled outline the renderer paints.
		return pointInPolygon(p, el.Outline)
	}
	return false
}

// nearBox tests p against all four sides of the box (x1,y1)-(x2,y2). The
// corners need not be normalized; the sides are the same either way.
func nearBox(x1, y1, x2, y2 float64, p Point) bool {
	tl := Point{x1, y1}
	tr := Point{x2, y1}
	br := Point{x2, y2}
	bl := Point{x1, y2}
	return nearSegment(tl, tr, p, proximityThreshold) ||
		nearSegment(tr, br, p, proximityThreshold) ||
		nearSegment(br, bl, p, proximityThreshold) ||
		nearSegment(bl, tl, p, proximityThreshold)
}
