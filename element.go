package main

import (
	"errors"
	"fmt"
	"math"
)

var errUnknownTool = errors.New("unrecognized tool kind")

// Style is the stroke/fill configuration supplied by the UI on every
// creating action. The board keeps no current-style state of its own.
type Style struct {
	Stroke   string  `json:"stroke"`
	Fill     string  `json:"fill,omitempty"`
	Width    float64 `json:"width"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// Element is one drawn shape, stroke or text object. IDs are handed out by
// the board from a monotonic counter and are never reused, so erasing one
// element does not disturb the identity of any other.
//
// Derived fields (Path, Outline) are cached render geometry, recomputed
// wholesale whenever the element changes. The O(n) outline rebuild per
// freehand sample is the known ceiling for very long strokes.
type Element struct {
	ID   int  `json:"id"`
	Tool Tool `json:"tool"`

	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`

	Stroke string  `json:"stroke"`
	Fill   string  `json:"fill,omitempty"`
	Width  float64 `json:"width"`

	// Freehand only: drawing-order samples and the fillable outline
	// derived from them.
	Points  []Point `json:"points,omitempty"`
	Outline []Point `json:"outline,omitempty"`

	// Line, rectangle, circle, arrow: the polyline the renderers stroke.
	Path []Point `json:"path,omitempty"`

	// Text only.
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// createElement builds an element of the given kind from two corner
// coordinates. Freehand ignores (x2,y2) and starts as a single-sample dot;
// text keeps (x2,y2) only for API symmetry. The eraser is a tool but not an
// element kind, so it is rejected here like any unknown value.
func createElement(id int, x1, y1, x2, y2 float64, tool Tool, text string, style Style) (Element, error) {
	el := Element{
		ID:     id,
		Tool:   tool,
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Stroke: style.Stroke,
		Fill:   style.Fill,
		Width:  style.Width,
	}

	switch tool {
	case ToolPencil:
		el.X2, el.Y2 = x1, y1
		el.Points = []Point{{x1, y1}}
		el.Outline = strokeOutline(el.Points, el.Width)
	case ToolLine:
		el.Path = []Point{{x1, y1}, {x2, y2}}
	case ToolRectangle:
		el.Path = []Point{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}, {x1, y1}}
	case ToolCircle:
		el.Path = ellipsePath(x1, y1, x2, y2)
	case ToolArrow:
		x3, y3, x4, y4 := arrowheadTips(x1, y1, x2, y2, arrowheadLength)
		// The repeated end vertex folds the fork into one connected path.
		el.Path = []Point{{x1, y1}, {x2, y2}, {x3, y3}, {x2, y2}, {x4, y4}}
	case ToolText:
		el.Text = text
		el.FontSize = style.FontSize
	default:
		return Element{}, fmt.Errorf("tool %d: %w", tool, errUnknownTool)
	}
	return el, nil
}

// updateElement returns a new collection in which only the element with the
// given id has changed. Shapes are rebuilt from scratch with the new
// coordinates; freehand appends (x2,y2) as a sample and recomputes its
// outline; text is deliberately untouched here (it only changes through the
// text-commit transition).
func updateElement(elements []Element, id int, x1, y1, x2, y2 float64, tool Tool, text string, style Style) ([]Element, error) {
	idx := indexByID(elements, id)
	if idx < 0 {
		return elements, nil
	}

	switch tool {
	case ToolLine, ToolRectangle, ToolCircle, ToolArrow:
		rebuilt, err := createElement(id, x1, y1, x2, y2, tool, text, style)
		if err != nil {
			return elements, err
		}
		out := copyElements(elements)
		out[idx] = rebuilt
		return out, nil
	case ToolPencil:
		el := elements[idx]
		pts := make([]Point, len(el.Points), len(el.Points)+1)
		copy(pts, el.Points)
		pts = append(pts, Point{x2, y2})
		el.Points = pts
		el.Outline = strokeOutline(pts, el.Width)
		el.X2, el.Y2 = x2, y2
		out := copyElements(elements)
		out[idx] = el
		return out, nil
	case ToolText:
		return elements, nil
	}
	return elements, fmt.Errorf("tool %d: %w", tool, errUnknownTool)
}

// adjustCoordinates returns the element's corners normalized so that
// (x1,y1) is top-left for rectangles and left-most (or top-most when
// vertical) for lines. Other kinds pass through unchanged; their corner
// order is meaningful.
func adjustCoordinates(el Element) (x1, y1, x2, y2 float64) {
	switch el.Tool {
	case ToolRectangle:
		return math.Min(el.X1, el.X2), math.Min(el.Y1, el.Y2),
			math.Max(el.X1, el.X2), math.Max(el.Y1, el.Y2)
	case ToolLine:
		if el.X1 < el.X2 || (el.X1 == el.X2 && el.Y1 < el.Y2) {
			return el.X1, el.Y1, el.X2, el.Y2
		}
		return el.X2, el.Y2, el.X1, el.Y1
	}
	return el.X1, el.Y1, el.X2, el.Y2
}

// ellipsePath samples the ellipse inscribed in the (possibly unnormalized)
// box (x1,y1)-(x2,y2) as a closed polyline.
func ellipsePath(x1, y1, x2, y2 float64) []Point {
	c := mid(Point{x1, y1}, Point{x2, y2})
	rx := (x2 - x1) / 2
	ry := (y2 - y1) / 2
	pts := make([]Point, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		t := 2 * math.Pi * float64(i) / circleSegments
		pts = append(pts, Point{c.X + rx*math.Cos(t), c.Y + ry*math.Sin(t)})
	}
	return pts
}

func styleOf(el Element) Style {
	return Style{Stroke: el.Stroke, Fill: el.Fill, Width: el.Width, FontSize: el.FontSize}
}

func indexByID(elements []Element, id int) int {
	for i, el := range elements {
		if el.ID == id {
			return i
		}
	}
	return -1
}

func copyElements(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}
