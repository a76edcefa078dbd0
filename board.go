package main

// Action is one discrete input event. Which fields are meaningful depends
// on Type; the rest are ignored.
type Action struct {
	Type  ActionType
	Tool  Tool
	Mode  Mode
	X, Y  float64
	Text  string
	Style Style
}

// Board is the whole-application state: active tool, interaction mode, the
// live element collection, the snapshot history, and the element currently
// being drawn or written. It is a value; reduce returns a new Board and
// never mutates a snapshot already in History.
type Board struct {
	Tool     Tool
	Mode     Mode
	Elements []Element
	History  [][]Element
	Index    int
	Selected int // element id, -1 when nothing is selected
	nextID   int
}

func newBoard() Board {
	return Board{
		Tool:     ToolPencil,
		Mode:     ModeIdle,
		History:  [][]Element{nil},
		Index:    0,
		Selected: -1,
	}
}

// reduce applies one action to the board and returns the next state. It
// never fails: unknown actions, undo at the start, redo at the end and
// erase strokes that touch nothing are all defined no-ops. The measurer
// feeds text hit-tests on the erase path.
func reduce(b Board, a Action, m TextMeasurer) Board {
	switch a.Type {
	case ActionSelectTool:
		b.Tool = a.Tool

	case ActionSetMode:
		b.Mode = a.Mode

	case ActionPointerDown:
		if b.Mode == ModeWriting {
			break
		}
		if b.Tool == ToolEraser {
			b.Mode = ModeErasing
			break
		}
		el, err := createElement(b.nextID, a.X, a.Y, a.X, a.Y, b.Tool, a.Text, a.Style)
		if err != nil {
			break
		}
		b.Elements = append(copyElements(b.Elements), el)
		b.Selected = el.ID
		b.nextID++
		if b.Tool == ToolText {
			b.Mode = ModeWriting
		} else {
			b.Mode = ModeDrawing
		}

	case ActionPointerMove:
		switch b.Mode {
		case ModeDrawing:
			idx := indexByID(b.Elements, b.Selected)
			if idx < 0 {
				break
			}
			el := b.Elements[idx]
			els, err := updateElement(b.Elements, el.ID, el.X1, el.Y1, a.X, a.Y, el.Tool, el.Text, styleOf(el))
			if err == nil {
				b.Elements = els
			}
		case ModeErasing:
			b = eraseAt(b, Point{a.X, a.Y}, m)
		}

	case ActionPointerUp:
		switch b.Mode {
		case ModeDrawing:
			b = commitDrawn(b)
			b.Mode = ModeIdle
			b.Selected = -1
		case ModeErasing:
			b.Mode = ModeIdle
		}
		// Writing stays put: text commits on blur via ActionCommitText.

	case ActionCommitText:
		idx := indexByID(b.Elements, b.Selected)
		if idx < 0 {
			break
		}
		el := b.Elements[idx]
		rebuilt, err := createElement(el.ID, el.X1, el.Y1, el.X2, el.Y2, ToolText, a.Text, a.Style)
		if err != nil {
			break
		}
		els := copyElements(b.Elements)
		els[idx] = rebuilt
		b.Elements = els
		b = commitSnapshot(b)
		b.Mode = ModeIdle
		b.Selected = -1

	case ActionUndo:
		if b.Index > 0 {
			b.Index--
			b.Elements = copyElements(b.History[b.Index])
		}

	case ActionRedo:
		if b.Index < len(b.History)-1 {
			b.Index++
			b.Elements = copyElements(b.History[b.Index])
		}
	}
	return b
}

// commitDrawn normalizes the coordinates of the element just drawn (so a
// rectangle dragged up-left still has a top-left (x1,y1)) and records a
// snapshot.
func commitDrawn(b Board) Board {
	idx := indexByID(b.Elements, b.Selected)
	if idx >= 0 {
		el := b.Elements[idx]
		if el.Tool == ToolRectangle || el.Tool == ToolLine {
			x1, y1, x2, y2 := adjustCoordinates(el)
			if rebuilt, err := createElement(el.ID, x1, y1, x2, y2, el.Tool, el.Text, styleOf(el)); err == nil {
				els := copyElements(b.Elements)
				els[idx] = rebuilt
				b.Elements = els
			}
		}
	}
	return commitSnapshot(b)
}

// commitSnapshot truncates any redo future past Index and appends the live
// collection as a new snapshot. After it returns, History[Index] equals
// Elements.
func commitSnapshot(b Board) Board {
	hist := make([][]Element, b.Index+1, b.Index+2)
	copy(hist, b.History[:b.Index+1])
	hist = append(hist, copyElements(b.Elements))
	b.History = hist
	b.Index = len(hist) - 1
	return b
}

// eraseAt removes every element within the proximity threshold of p. A miss
// leaves the board untouched and commits nothing.
func eraseAt(b Board, p Point, m TextMeasurer) Board {
	kept := make([]Element, 0, len(b.Elements))
	for _, el := range b.Elements {
		if !isNear(el, p, m) {
			kept = append(kept, el)
		}
	}
	if len(kept) == len(b.Elements) {
		return b
	}
	b.Elements = kept
	return commitSnapshot(b)
}
