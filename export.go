package main

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Pixels per canvas unit. Canvas units are terminal cells, which are about
// twice as tall as they are wide.
const (
	exportCellWidth  = 8.0
	exportCellHeight = 16.0
	exportPadding    = 2.0
	exportBackground = "#282a36"
)

// pngMeasurer measures text with the export font face. Widths come back in
// canvas units so they can be compared with element coordinates.
type pngMeasurer struct {
	f *truetype.Font
}

func (m pngMeasurer) MeasureText(text string, size float64) (w, h float64) {
	if size <= 0 {
		size = defaultFontSize
	}
	face := truetype.NewFace(m.f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	d := &font.Drawer{Face: face}
	px := float64(d.MeasureString(text)) / 64
	return px / exportCellWidth, size / exportCellHeight
}

// exportPNG renders the element collection into an image and writes it to
// filename.
func exportPNG(b Board, filename string) error {
	if len(b.Elements) == 0 {
		return fmt.Errorf("nothing to export")
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	meas := pngMeasurer{f: ttf}

	minX, minY, maxX, maxY := boardBounds(b, meas)
	minX -= exportPadding
	minY -= exportPadding
	maxX += exportPadding
	maxY += exportPadding

	imageWidth := int((maxX - minX) * exportCellWidth)
	imageHeight := int((maxY - minY) * exportCellHeight)
	if imageWidth < 1 || imageHeight < 1 {
		return fmt.Errorf("nothing to export")
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetHexColor(exportBackground)
	dc.Clear()

	for _, el := range b.Elements {
		drawElementPNG(dc, el, minX, minY, ttf)
	}

	return dc.SavePNG(filename)
}

// boardBounds returns the extent of every element in canvas units.
func boardBounds(b Board, m TextMeasurer) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	for _, el := range b.Elements {
		switch el.Tool {
		case ToolPencil:
			for _, p := range el.Outline {
				grow(p.X, p.Y)
			}
		case ToolText:
			w, h := m.MeasureText(el.Text, el.FontSize)
			grow(el.X1, el.Y1)
			grow(el.X1+w, el.Y1+h)
		default:
			for _, p := range el.Path {
				grow(p.X, p.Y)
			}
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

func drawElementPNG(dc *gg.Context, el Element, minX, minY float64, ttf *truetype.Font) {
	toX := func(x float64) float64 { return (x - minX) * exportCellWidth }
	toY := func(y float64) float64 { return (y - minY) * exportCellHeight }

	switch el.Tool {
	case ToolPencil:
		if len(el.Outline) == 0 {
			return
		}
		dc.SetHexColor(el.Stroke)
		dc.MoveTo(toX(el.Outline[0].X), toY(el.Outline[0].Y))
		for _, p := range el.Outline[1:] {
			dc.LineTo(toX(p.X), toY(p.Y))
		}
		dc.ClosePath()
		dc.Fill()

	case ToolLine, ToolRectangle, ToolCircle, ToolArrow:
		if len(el.Path) < 2 {
			return
		}
		if el.Fill != "" && (el.Tool == ToolRectangle || el.Tool == ToolCircle) {
			dc.SetHexColor(el.Fill)
			tracePath(dc, el.Path, toX, toY)
			dc.Fill()
		}
		dc.SetHexColor(el.Stroke)
		dc.SetLineWidth(el.Width)
		tracePath(dc, el.Path, toX, toY)
		dc.Stroke()

	case ToolText:
		size := el.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		face := truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetHexColor(el.Stroke)
		// DrawString anchors at the baseline; (x1,y1) is the top-left.
		dc.DrawString(el.Text, toX(el.X1), toY(el.Y1)+size)
	}
}

func tracePath(dc *gg.Context, path []Point, toX, toY func(float64) float64) {
	dc.MoveTo(toX(path[0].X), toY(path[0].Y))
	for _, p := range path[1:] {
		dc.LineTo(toX(p.X), toY(p.Y))
	}
}
