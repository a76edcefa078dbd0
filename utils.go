package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
)

// yankElement copies the top-most element to the system clipboard as JSON.
func yankElement(b Board) error {
	if len(b.Elements) == 0 {
		return fmt.Errorf("nothing to copy")
	}
	data, err := json.Marshal(b.Elements[len(b.Elements)-1])
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

// putElement pastes a previously yanked element back onto the board,
// slightly offset, as a new committed element with a fresh id.
func putElement(b Board) (Board, error) {
	raw, err := clipboard.ReadAll()
	if err != nil {
		return b, err
	}
	var el Element
	if err := json.Unmarshal([]byte(raw), &el); err != nil {
		return b, fmt.Errorf("clipboard does not hold an element: %w", err)
	}
	pasted, err := shiftElement(el, pasteOffset, pasteOffset, b.nextID)
	if err != nil {
		return b, err
	}
	b.Elements = append(copyElements(b.Elements), pasted)
	b.nextID++
	return commitSnapshot(b), nil
}

// shiftElement returns a copy of el moved by (dx,dy) under a new id, with
// all derived geometry rebuilt.
func shiftElement(el Element, dx, dy float64, id int) (Element, error) {
	switch el.Tool {
	case ToolPencil:
		pts := make([]Point, len(el.Points))
		for i, p := range el.Points {
			pts[i] = Point{p.X + dx, p.Y + dy}
		}
		el.ID = id
		el.X1 += dx
		el.Y1 += dy
		el.X2 += dx
		el.Y2 += dy
		el.Points = pts
		el.Outline = strokeOutline(pts, el.Width)
		return el, nil
	case ToolLine, ToolRectangle, ToolCircle, ToolArrow, ToolText:
		return createElement(id, el.X1+dx, el.Y1+dy, el.X2+dx, el.Y2+dy, el.Tool, el.Text, styleOf(el))
	}
	return Element{}, fmt.Errorf("tool %d: %w", el.Tool, errUnknownTool)
}
