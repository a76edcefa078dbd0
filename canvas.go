package main

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// cellMeasurer is the terminal's TextMeasurer: one canvas unit per cell.
type cellMeasurer struct{}

func (cellMeasurer) MeasureText(text string, _ float64) (float64, float64) {
	return float64(utf8.RuneCountInString(text)), 1
}

type cell struct {
	ch    rune
	color string
}

// grid is one rasterized frame of the board.
type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	cells := make([][]cell, h)
	for y := range cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{ch: ' '}
		}
		cells[y] = row
	}
	return &grid{w: w, h: h, cells: cells}
}

// renderBoard rasterizes the element collection in paint order.
func renderBoard(b Board, w, h int) *grid {
	g := newGrid(w, h)
	for _, el := range b.Elements {
		g.drawElement(el)
	}
	return g
}

func (g *grid) drawElement(el Element) {
	switch el.Tool {
	case ToolPencil:
		if len(el.Points) == 1 {
			p := el.Points[0]
			g.set(round(p.X), round(p.Y), '•', el.Stroke)
			return
		}
		for i := 0; i < len(el.Points)-1; i++ {
			g.plotSegment(el.Points[i], el.Points[i+1], '•', el.Stroke)
		}
	case ToolLine, ToolRectangle, ToolCircle, ToolArrow:
		for i := 0; i < len(el.Path)-1; i++ {
			g.drawSegment(el.Path[i], el.Path[i+1], el.Stroke)
		}
	case ToolText:
		g.drawString(round(el.X1), round(el.Y1), el.Text, el.Stroke)
	}
}

// drawSegment rasterizes a segment with box-drawing runes picked from the
// segment's direction.
func (g *grid) drawSegment(a, b Point, color string) {
	x0, y0 := round(a.X), round(a.Y)
	x1, y1 := round(b.X), round(b.Y)
	ch := lineRune(x1-x0, y1-y0)
	for _, pt := range bresenham(x0, y0, x1, y1) {
		g.set(pt[0], pt[1], ch, color)
	}
}

// plotSegment rasterizes a segment with a fixed rune (freehand ink).
func (g *grid) plotSegment(a, b Point, ch rune, color string) {
	for _, pt := range bresenham(round(a.X), round(a.Y), round(b.X), round(b.Y)) {
		g.set(pt[0], pt[1], ch, color)
	}
}

func (g *grid) drawString(x, y int, s string, color string) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r, color)
	}
}

func (g *grid) set(x, y int, ch rune, color string) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = cell{ch: ch, color: color}
}

func (g *grid) at(x, y int) rune {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0
	}
	return g.cells[y][x].ch
}

// String renders the grid with per-run lipgloss coloring, one line per row.
func (g *grid) String() string {
	var out strings.Builder
	for y := 0; y < g.h; y++ {
		var run strings.Builder
		runColor := g.cells[y][0].color
		for x := 0; x < g.w; x++ {
			c := g.cells[y][x]
			if c.color != runColor {
				out.WriteString(styled(run.String(), runColor))
				run.Reset()
				runColor = c.color
			}
			run.WriteRune(c.ch)
		}
		out.WriteString(styled(run.String(), runColor))
		if y < g.h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func styled(s, color string) string {
	if color == "" || s == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

// bresenham returns the integer points on the line from (x0,y0) to (x1,y1).
// Both endpoints are always included.
func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([][2]int, 0, dx+dy+1)
	for {
		pts = append(pts, [2]int{x, y})
		if x == x1 && y == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// lineRune picks the box-drawing rune for a segment with direction (dx,dy).
func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '\\'
	}
	return '/'
}

func round(f float64) int {
	return int(math.Round(f))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
