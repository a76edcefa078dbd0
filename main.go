package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	p := tea.NewProgram(
		initialModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// model is the UI shell around the board: it translates key and mouse
// events into actions and renders the resulting state. All board changes
// flow through reduce.
type model struct {
	board   Board
	config  *Config
	measure TextMeasurer

	width   int
	height  int
	cursorX int
	cursorY int

	stroke     string
	colorIndex int

	textBuffer string

	help           bool
	errorMessage   string
	successMessage string
}

func initialModel() model {
	config := loadConfig()
	return model{
		board:   newBoard(),
		config:  config,
		measure: cellMeasurer{},
		stroke:  config.Stroke,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// style is the configuration attached to every creating action: the
// configured defaults with the currently cycled stroke color.
func (m *model) style() Style {
	s := m.config.Style()
	s.Stroke = m.stroke
	return s
}

func (m *model) dispatch(a Action) {
	m.board = reduce(m.board, a, m.measure)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		if m.board.Mode == ModeWriting {
			return m.handleTextInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.board.Mode == ModeWriting {
		return m, nil
	}
	switch msg.Type {
	case tea.MouseLeft:
		// The terminal reports press and drag identically; the mode says
		// which this is.
		m.cursorX, m.cursorY = msg.X, msg.Y
		if msg.Y >= m.canvasHeight() {
			return m, nil
		}
		if m.board.Mode == ModeDrawing || m.board.Mode == ModeErasing {
			m.dispatch(Action{Type: ActionPointerMove, X: float64(msg.X), Y: float64(msg.Y)})
		} else {
			m.clearMessages()
			m.dispatch(Action{Type: ActionPointerDown, X: float64(msg.X), Y: float64(msg.Y), Style: m.style()})
			if m.board.Mode == ModeWriting {
				m.textBuffer = ""
			}
		}
	case tea.MouseMotion:
		m.cursorX, m.cursorY = msg.X, msg.Y
	case tea.MouseRelease:
		m.dispatch(Action{Type: ActionPointerUp})
	}
	return m, nil
}

func (m model) handleTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEscape:
		// Blur: the text commits and the board returns to idle.
		m.dispatch(Action{Type: ActionCommitText, Text: m.textBuffer, Style: m.style()})
		m.textBuffer = ""
	case tea.KeyBackspace:
		if len(m.textBuffer) > 0 {
			runes := []rune(m.textBuffer)
			m.textBuffer = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.textBuffer += " "
	case tea.KeyRunes:
		m.textBuffer += string(msg.Runes)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.help = true

	case "p":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolPencil})
	case "l":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolLine})
	case "r":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolRectangle})
	case "c":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolCircle})
	case "a":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolArrow})
	case "t":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolText})
	case "e":
		m.dispatch(Action{Type: ActionSelectTool, Tool: ToolEraser})

	case "u":
		m.dispatch(Action{Type: ActionUndo})
	case "U", "ctrl+r":
		m.dispatch(Action{Type: ActionRedo})

	case "]":
		m.colorIndex = (m.colorIndex + 1) % len(palette)
		m.stroke = palette[m.colorIndex]
	case "[":
		m.colorIndex = (m.colorIndex + len(palette) - 1) % len(palette)
		m.stroke = palette[m.colorIndex]

	case "s":
		m.exportImage()

	case "y":
		m.clearMessages()
		if err := yankElement(m.board); err != nil {
			m.errorMessage = err.Error()
		} else {
			m.successMessage = "copied element"
		}
	case "v":
		m.clearMessages()
		board, err := putElement(m.board)
		if err != nil {
			m.errorMessage = err.Error()
		} else {
			m.board = board
			m.successMessage = "pasted element"
		}

	case "esc":
		m.dispatch(Action{Type: ActionSetMode, Mode: ModeIdle})
		m.clearMessages()

	case " ", "enter":
		switch m.board.Mode {
		case ModeDrawing, ModeErasing:
			m.dispatch(Action{Type: ActionPointerUp})
		case ModeIdle:
			m.clearMessages()
			m.dispatch(Action{Type: ActionPointerDown, X: float64(m.cursorX), Y: float64(m.cursorY), Style: m.style()})
			if m.board.Mode == ModeWriting {
				m.textBuffer = ""
			}
		}

	case "h", "j", "k", "left", "down", "up", "right",
		"H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		m.moveCursor(key)

	default:
		// "l" selects the line tool, so only shifted/arrow variants move
		// the cursor right; everything else is ignored.
	}
	return m, nil
}

func (m *model) moveCursor(key string) {
	speed := 1
	switch key {
	case "H", "J", "K", "L", "shift+left", "shift+down", "shift+up", "shift+right":
		speed = 2
	}
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	if m.board.Mode == ModeDrawing || m.board.Mode == ModeErasing {
		m.dispatch(Action{Type: ActionPointerMove, X: float64(m.cursorX), Y: float64(m.cursorY)})
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if h := m.canvasHeight(); h > 0 && m.cursorY >= h {
		m.cursorY = h - 1
	}
}

// canvasHeight leaves the bottom row for the status bar.
func (m *model) canvasHeight() int {
	return m.height - 1
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m *model) exportImage() {
	m.clearMessages()
	filename := fmt.Sprintf("scrawl-%s.png", time.Now().Format("20060102-150405"))
	path := m.config.GetSavePath(filename)
	if err := exportPNG(m.board, path); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.successMessage = "saved " + path
}

var (
	statusBarStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#44475a")).Foreground(lipgloss.Color("#f8f8f2"))
	activeToolStyle = lipgloss.NewStyle().Background(lipgloss.Color("#bd93f9")).Foreground(lipgloss.Color("#282a36")).Bold(true)
	errorStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#44475a")).Foreground(lipgloss.Color("#ff5555"))
	successStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#44475a")).Foreground(lipgloss.Color("#50fa7b"))
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	if m.help {
		return m.helpView()
	}

	g := renderBoard(m.board, m.width, m.canvasHeight())

	if m.board.Mode == ModeWriting {
		if idx := indexByID(m.board.Elements, m.board.Selected); idx >= 0 {
			el := m.board.Elements[idx]
			g.drawString(round(el.X1), round(el.Y1), m.textBuffer+"▏", m.stroke)
		}
	} else {
		g.set(m.cursorX, m.cursorY, '+', m.stroke)
	}

	return g.String() + "\n" + m.statusBar()
}

func (m model) statusBar() string {
	var bar strings.Builder
	for _, t := range []Tool{ToolPencil, ToolLine, ToolRectangle, ToolCircle, ToolArrow, ToolText, ToolEraser} {
		label := " " + t.String() + " "
		if t == m.board.Tool {
			bar.WriteString(activeToolStyle.Render(label))
		} else {
			bar.WriteString(statusBarStyle.Render(label))
		}
	}

	swatch := lipgloss.NewStyle().Background(lipgloss.Color("#44475a")).Foreground(lipgloss.Color(m.stroke)).Render(" ██ ")
	info := fmt.Sprintf(" %s %d/%d ", m.board.Mode, m.board.Index, len(m.board.History)-1)
	bar.WriteString(swatch)
	bar.WriteString(statusBarStyle.Render(info))

	switch {
	case m.errorMessage != "":
		bar.WriteString(errorStyle.Render(" " + m.errorMessage + " "))
	case m.successMessage != "":
		bar.WriteString(successStyle.Render(" " + m.successMessage + " "))
	}

	line := bar.String()
	if pad := m.width - lipgloss.Width(line); pad > 0 {
		line += statusBarStyle.Render(strings.Repeat(" ", pad))
	}
	return line
}

func (m model) helpView() string {
	lines := []string{
		"Scrawl",
		"======",
		"",
		"Tools:",
		"  p  pencil (freehand)",
		"  l  line",
		"  r  rectangle",
		"  c  circle",
		"  a  arrow",
		"  t  text",
		"  e  eraser",
		"",
		"Drawing:",
		"  mouse drag        draw with the active tool",
		"  space/enter       press/release the pen at the cursor",
		"  h/j/k/l, arrows   move the cursor (drags while the pen is down)",
		"  [ / ]             cycle stroke color",
		"",
		"Text:",
		"  click or press space with the text tool, type, then",
		"  enter/esc to commit",
		"",
		"General:",
		"  u                 undo",
		"  U / ctrl+r        redo",
		"  y / v             copy / paste element via clipboard",
		"  s                 export PNG",
		"  ?                 toggle this help",
		"  q / ctrl+c        quit",
		"",
		"press any key to close",
	}
	return strings.Join(lines, "\n")
}
