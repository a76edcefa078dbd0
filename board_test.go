package main

import (
	"reflect"
	"testing"
)

// drawCommit runs one full pointer gesture with the board's active tool.
func drawCommit(t *testing.T, b Board, x1, y1, x2, y2 float64) Board {
	t.Helper()
	b = reduce(b, Action{Type: ActionPointerDown, X: x1, Y: y1, Style: testStyle}, fixedMeasurer{})
	if b.Mode != ModeDrawing {
		t.Fatalf("mode after pointer down = %v, want drawing", b.Mode)
	}
	b = reduce(b, Action{Type: ActionPointerMove, X: x2, Y: y2}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerUp}, fixedMeasurer{})
	if b.Mode != ModeIdle {
		t.Fatalf("mode after pointer up = %v, want idle", b.Mode)
	}
	return b
}

func checkInvariants(t *testing.T, b Board) {
	t.Helper()
	if b.Index < 0 || b.Index >= len(b.History) {
		t.Fatalf("history index %d out of range [0,%d)", b.Index, len(b.History))
	}
}

func TestSelectToolAndSetMode(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolArrow}, fixedMeasurer{})
	if b.Tool != ToolArrow {
		t.Errorf("tool = %v, want arrow", b.Tool)
	}
	b = reduce(b, Action{Type: ActionSetMode, Mode: ModeErasing}, fixedMeasurer{})
	if b.Mode != ModeErasing {
		t.Errorf("mode = %v, want erasing", b.Mode)
	}
}

func TestDrawCommitLifecycle(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	b = drawCommit(t, b, 1, 1, 8, 6)
	checkInvariants(t, b)

	if len(b.Elements) != 1 {
		t.Fatalf("elements = %d, want 1", len(b.Elements))
	}
	if len(b.History) != 2 || b.Index != 1 {
		t.Fatalf("history = %d entries at index %d, want 2 at 1", len(b.History), b.Index)
	}
	if !reflect.DeepEqual(b.History[b.Index], b.Elements) {
		t.Errorf("History[Index] != Elements after commit")
	}
	if b.Selected != -1 {
		t.Errorf("selection survives commit: %d", b.Selected)
	}
}

func TestPointerUpNormalizesCorners(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	b = drawCommit(t, b, 8, 6, 1, 1) // dragged up-left

	el := b.Elements[0]
	if el.X1 != 1 || el.Y1 != 1 || el.X2 != 8 || el.Y2 != 6 {
		t.Errorf("corners not normalized on commit: (%v,%v)-(%v,%v)", el.X1, el.Y1, el.X2, el.Y2)
	}
}

func TestFreehandGesture(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionPointerDown, X: 0, Y: 0, Style: testStyle}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerMove, X: 1, Y: 1}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerMove, X: 2, Y: 2}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerUp}, fixedMeasurer{})

	want := []Point{{0, 0}, {1, 1}, {2, 2}}
	if !reflect.DeepEqual(b.Elements[0].Points, want) {
		t.Errorf("samples = %v, want %v", b.Elements[0].Points, want)
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolLine}, fixedMeasurer{})
	for i := 0; i < 3; i++ {
		f := float64(i * 10)
		b = drawCommit(t, b, f, f, f+5, f+5)
	}
	before := copyElements(b.Elements)

	for _, k := range []int{1, 2, 3} {
		t.Run(string(rune('0'+k))+" undos", func(t *testing.T) {
			bb := b
			for i := 0; i < k; i++ {
				bb = reduce(bb, Action{Type: ActionUndo}, fixedMeasurer{})
			}
			if len(bb.Elements) != 3-k {
				t.Fatalf("elements after %d undos = %d, want %d", k, len(bb.Elements), 3-k)
			}
			for i := 0; i < k; i++ {
				bb = reduce(bb, Action{Type: ActionRedo}, fixedMeasurer{})
			}
			if !reflect.DeepEqual(bb.Elements, before) {
				t.Errorf("round trip of %d undos/redos changed the collection", k)
			}
			checkInvariants(t, bb)
		})
	}
}

func TestUndoAtStartAndRedoAtEndAreNoops(t *testing.T) {
	b := newBoard()
	b = drawCommit(t, b, 0, 0, 3, 3)

	undone := reduce(reduce(b, Action{Type: ActionUndo}, fixedMeasurer{}), Action{Type: ActionUndo}, fixedMeasurer{})
	if undone.Index != 0 || len(undone.Elements) != 0 {
		t.Errorf("undo past the start moved: index %d, %d elements", undone.Index, len(undone.Elements))
	}
	again := reduce(undone, Action{Type: ActionUndo}, fixedMeasurer{})
	if again.Index != 0 {
		t.Errorf("undo below zero: index %d", again.Index)
	}

	redone := reduce(b, Action{Type: ActionRedo}, fixedMeasurer{})
	if redone.Index != b.Index || !reflect.DeepEqual(redone.Elements, b.Elements) {
		t.Errorf("redo at the end changed state")
	}
}

func TestCommitAfterUndoTruncatesHistory(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	for i := 0; i < 3; i++ {
		f := float64(i * 10)
		b = drawCommit(t, b, f, f, f+5, f+5)
	}
	// History: empty + 3 commits.
	b = reduce(b, Action{Type: ActionUndo}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionUndo}, fixedMeasurer{})
	if b.Index != 1 {
		t.Fatalf("index after 2 undos = %d, want 1", b.Index)
	}

	b = drawCommit(t, b, 50, 50, 55, 55)

	if len(b.History) != 3 || b.Index != 2 {
		t.Fatalf("history = %d entries at index %d, want 3 at 2", len(b.History), b.Index)
	}
	// The redo future is gone.
	after := reduce(b, Action{Type: ActionRedo}, fixedMeasurer{})
	if !reflect.DeepEqual(after, b) {
		t.Errorf("redo after truncating commit should be a no-op")
	}
	if len(b.Elements) != 2 {
		t.Errorf("elements = %d, want the undone survivor plus the new one", len(b.Elements))
	}
}

func TestEraseRemovesAndCommits(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	b = drawCommit(t, b, 0, 0, 10, 10)
	b = drawCommit(t, b, 20, 20, 30, 30)
	historyBefore := len(b.History)

	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolEraser}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerDown, X: 0, Y: 5, Style: testStyle}, fixedMeasurer{})
	if b.Mode != ModeErasing {
		t.Fatalf("mode = %v, want erasing", b.Mode)
	}
	if len(b.Elements) != 2 {
		t.Fatalf("eraser pointer down must not create an element")
	}
	b = reduce(b, Action{Type: ActionPointerMove, X: 0, Y: 5}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerUp}, fixedMeasurer{})

	if len(b.Elements) != 1 {
		t.Fatalf("elements after erase = %d, want 1", len(b.Elements))
	}
	if len(b.History) != historyBefore+1 {
		t.Errorf("erase must commit a snapshot")
	}
	// The survivor keeps its identity.
	if b.Elements[0].ID != 1 {
		t.Errorf("surviving element id = %d, want 1", b.Elements[0].ID)
	}
	if b.Mode != ModeIdle {
		t.Errorf("mode after release = %v, want idle", b.Mode)
	}
}

func TestEraseMissIsIdempotent(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	b = drawCommit(t, b, 0, 0, 10, 10)

	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolEraser}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerDown, X: 50, Y: 50, Style: testStyle}, fixedMeasurer{})
	before := b
	b = reduce(b, Action{Type: ActionPointerMove, X: 50, Y: 50}, fixedMeasurer{})

	if !reflect.DeepEqual(b.Elements, before.Elements) {
		t.Errorf("erase miss changed the collection")
	}
	if len(b.History) != len(before.History) {
		t.Errorf("erase miss grew history: %d -> %d", len(before.History), len(b.History))
	}
}

func TestWritingLifecycle(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolText}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerDown, X: 4, Y: 4, Style: testStyle}, fixedMeasurer{})

	if b.Mode != ModeWriting {
		t.Fatalf("mode = %v, want writing", b.Mode)
	}
	// Pointer events are inert while writing.
	ignored := reduce(b, Action{Type: ActionPointerDown, X: 9, Y: 9, Style: testStyle}, fixedMeasurer{})
	if len(ignored.Elements) != 1 {
		t.Errorf("pointer down while writing created an element")
	}
	up := reduce(b, Action{Type: ActionPointerUp}, fixedMeasurer{})
	if up.Mode != ModeWriting || len(up.History) != 1 {
		t.Errorf("pointer up while writing should be a no-op")
	}

	b = reduce(b, Action{Type: ActionCommitText, Text: "note", Style: testStyle}, fixedMeasurer{})
	if b.Mode != ModeIdle {
		t.Errorf("mode after commit = %v, want idle", b.Mode)
	}
	if b.Elements[0].Text != "note" {
		t.Errorf("text = %q, want %q", b.Elements[0].Text, "note")
	}
	if len(b.History) != 2 || !reflect.DeepEqual(b.History[1], b.Elements) {
		t.Errorf("text commit did not snapshot history")
	}
}

func TestCommitTextWithoutSelectionIsNoop(t *testing.T) {
	b := newBoard()
	got := reduce(b, Action{Type: ActionCommitText, Text: "orphan", Style: testStyle}, fixedMeasurer{})
	if !reflect.DeepEqual(got, b) {
		t.Errorf("commit without a selected element changed state")
	}
}

func TestUnknownActionIsNoop(t *testing.T) {
	b := newBoard()
	b = drawCommit(t, b, 0, 0, 3, 3)
	got := reduce(b, Action{Type: ActionType(99)}, fixedMeasurer{})
	if !reflect.DeepEqual(got, b) {
		t.Errorf("unknown action changed state")
	}
}

func TestElementIDsAreNeverReused(t *testing.T) {
	b := newBoard()
	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	b = drawCommit(t, b, 0, 0, 10, 10)

	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolEraser}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerDown, X: 0, Y: 5, Style: testStyle}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerMove, X: 0, Y: 5}, fixedMeasurer{})
	b = reduce(b, Action{Type: ActionPointerUp}, fixedMeasurer{})
	if len(b.Elements) != 0 {
		t.Fatalf("erase left %d elements", len(b.Elements))
	}

	b = reduce(b, Action{Type: ActionSelectTool, Tool: ToolRectangle}, fixedMeasurer{})
	b = drawCommit(t, b, 20, 20, 30, 30)
	if b.Elements[0].ID != 1 {
		t.Errorf("id after erase = %d, want a fresh 1 (0 was spent)", b.Elements[0].ID)
	}
}
