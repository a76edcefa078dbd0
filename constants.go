package main

type Tool int

const (
	ToolPencil Tool = iota
	ToolLine
	ToolRectangle
	ToolCircle
	ToolArrow
	ToolText
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rect"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolText:
		return "text"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeWriting
	ModeErasing
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDrawing:
		return "drawing"
	case ModeWriting:
		return "writing"
	case ModeErasing:
		return "erasing"
	}
	return "unknown"
}

type ActionType int

const (
	ActionSelectTool ActionType = iota
	ActionSetMode
	ActionPointerDown
	ActionPointerMove
	ActionPointerUp
	ActionCommitText
	ActionUndo
	ActionRedo
)

const (
	// proximityThreshold is the fixed tolerance for every hit-test, in
	// canvas units. Erasing removes anything this close to the pointer.
	proximityThreshold = 1.0

	// arrowheadLength is the length of each arrowhead fork.
	arrowheadLength = 4.0

	// circleSegments is the polyline resolution of an ellipse path.
	circleSegments = 32

	// pasteOffset shifts a pasted element away from its source.
	pasteOffset = 2.0

	defaultStrokeWidth = 2.0
	defaultFontSize    = 16.0
	defaultStroke      = "#f8f8f2"
)

// palette is the stroke color cycle exposed in the UI.
var palette = []string{
	"#f8f8f2",
	"#ff5555",
	"#50fa7b",
	"#f1fa8c",
	"#bd93f9",
	"#8be9fd",
	"#ffb86c",
}
