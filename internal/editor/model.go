// Package editor is the interactive terminal editor: a tree of the hosted packs on the left,
// a live preview driven by the simulator on the right.
package editor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/overlay-engine/internal/clipboard"
	"github.com/KirkDiggler/overlay-engine/internal/domain/edit"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/render/terminal"
	overlayService "github.com/KirkDiggler/overlay-engine/internal/services/overlay"
	"github.com/KirkDiggler/overlay-engine/internal/simulate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	treeWidth   = 34
	saveTimeout = 5 * time.Second
)

// keys that map onto element actions
var actionKeys = map[string]edit.ElementActionKind{
	"x":         edit.ElementCut,
	"c":         edit.ElementCopy,
	"d":         edit.ElementDuplicate,
	"K":         edit.ElementUp,
	"J":         edit.ElementDown,
	"delete":    edit.ElementDelete,
	"backspace": edit.ElementDelete,
	"g":         edit.ElementDrag,
	"p":         edit.ElementPaste,
	"o":         edit.ElementDrop,
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	packStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7289da"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9919"))
	hiddenStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
)

// Config holds what the editor drives
type Config struct {
	Service   overlayService.Service
	Simulator *simulate.Simulator
	Clipboard *clipboard.Bridge
	Interval  time.Duration
}

type treeLine struct {
	pack     string
	name     string
	kind     element.Type
	depth    int
	selected bool
	dragging bool
	visible  bool
}

type tickMsg time.Time

// Model is the bubbletea model of the editor
type Model struct {
	svc      overlayService.Service
	sim      *simulate.Simulator
	clip     *clipboard.Bridge
	interval time.Duration

	now      uint32
	inCombat bool
	cursor   int
	lines    []treeLine
	width    int
	height   int
	status   string
}

// New creates the editor and turns edit mode on
func New(cfg *Config) *Model {
	interval := cfg.Interval
	if interval <= 0 {
		interval = overlayService.DefaultUpdateInterval
	}
	cfg.Service.SetEditing(true)
	return &Model{
		svc:      cfg.Service,
		sim:      cfg.Simulator,
		clip:     cfg.Clipboard,
		interval: interval,
		width:    120,
		height:   30,
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	m.step(0)
	m.refresh(edit.RowResult{})
	return tick(m.interval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.step(uint32(m.interval.Milliseconds()))
		return m, tick(m.interval)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter", " ":
		m.refresh(edit.RowResult{Clicked: true})
	case "e":
		m.svc.SetEditing(!m.svc.IsEditing())
		m.status = fmt.Sprintf("editing %v", m.svc.IsEditing())
	case "y":
		m.exportClipboard()
	case "Y":
		m.importClipboard()
	case "s":
		m.saveAll()
	default:
		if kind, ok := actionKeys[key]; ok {
			m.refresh(edit.RowResult{Action: kind})
		}
	}
	return m, nil
}

// step advances simulated time and updates the packs
func (m *Model) step(elapsed uint32) {
	m.now += elapsed
	if m.sim == nil {
		return
	}
	snap := m.sim.Snapshot(m.now)
	m.inCombat = snap.Player.InCombat
	m.svc.Update(snap)
}

func (m *Model) moveCursor(delta int) {
	m.cursor = min(max(m.cursor+delta, 0), max(len(m.lines)-1, 0))
}

// refresh runs an edit pass with input applied to the row under the cursor,
// then a second pass to list the tree as the edit left it
func (m *Model) refresh(input edit.RowResult) {
	if input.Clicked || input.Action != edit.ElementNone {
		index := 0
		result := m.svc.EditTree(edit.RowInputFunc(func(edit.Row) edit.RowResult {
			defer func() { index++ }()
			if index == m.cursor {
				return input
			}
			return edit.RowResult{}
		}))
		m.status = describe(result, input)
	}

	packNames := make(map[id.ID]string)
	for _, pack := range m.svc.Packs() {
		packNames[pack.ID] = pack.DisplayName("pack")
	}

	m.lines = m.lines[:0]
	current := ""
	m.svc.EditTree(edit.RowInputFunc(func(row edit.Row) edit.RowResult {
		if name, ok := packNames[row.Parent]; ok {
			current = name
		}
		m.lines = append(m.lines, treeLine{
			pack:     current,
			name:     row.Element.DisplayName(row.Element.Type()),
			kind:     row.Element.Type(),
			depth:    row.Depth,
			selected: row.Selected,
			dragging: row.Dragging,
			visible:  row.Element.IsVisible(),
		})
		return edit.RowResult{}
	}))
	m.moveCursor(0)
}

func describe(result edit.Result, input edit.RowResult) string {
	switch {
	case !result.Action.IsNone():
		return "applied " + result.Action.Kind.String()
	case input.Action != edit.ElementNone:
		return input.Action.String() + " not possible here"
	case input.Clicked:
		return "selection changed"
	}
	return ""
}

func (m *Model) exportClipboard() {
	if m.clip == nil {
		return
	}
	if err := m.clip.ExportSession(m.svc.Session()); err != nil {
		m.status = "export failed: " + err.Error()
		return
	}
	m.status = "copied to system clipboard"
}

func (m *Model) importClipboard() {
	if m.clip == nil {
		return
	}
	if err := m.clip.ImportSession(m.svc.Session()); err != nil {
		m.status = "import failed: " + err.Error()
		return
	}
	m.status = "imported from system clipboard, paste with p"
}

func (m *Model) saveAll() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := m.svc.SaveAll(ctx); err != nil {
		log.Printf("[EDITOR] Save failed: %v", err)
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved"
}

func (m *Model) View() string {
	tree := m.treeView()

	cols := max(m.width-treeWidth-4, 20)
	rows := max(m.height-4, 8)
	surface := terminal.NewSurface(cols, rows)
	m.svc.Render(surface, surface.ScreenSize())
	preview := paneStyle.Render(strings.TrimSuffix(surface.String(), "\n"))

	mode := "view"
	if m.svc.IsEditing() {
		mode = "edit"
	}
	if m.inCombat {
		mode += ", in combat"
	}
	footer := statusStyle.Render(fmt.Sprintf("[%s] t=%.1fs %s", mode, float64(m.now)/1000, m.status)) + "\n" +
		statusStyle.Render("enter select  x/c/p cut copy paste  d dup  K/J move  del delete  g/o drag drop  y/Y clipboard  s save  e edit  q quit")

	return lipgloss.JoinHorizontal(lipgloss.Top, tree, preview) + "\n" + footer
}

func (m *Model) treeView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Packs"))
	b.WriteByte('\n')

	previous := ""
	for i, line := range m.lines {
		if line.pack != previous || i == 0 {
			b.WriteString(packStyle.Render(truncate.String(line.pack, treeWidth)))
			b.WriteByte('\n')
			previous = line.pack
		}

		marker := " "
		switch {
		case line.dragging:
			marker = "≡"
		case line.selected:
			marker = "*"
		}
		text := fmt.Sprintf("%s %s%s (%s)", marker, strings.Repeat("  ", line.depth+1), line.name, line.kind)
		text = truncate.String(text, treeWidth)

		switch {
		case i == m.cursor:
			text = cursorStyle.Render(text)
		case line.selected:
			text = selectedStyle.Render(text)
		case !line.visible:
			text = hiddenStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	if len(m.lines) == 0 {
		b.WriteString(hiddenStyle.Render("no elements, import a pack first"))
	}
	return lipgloss.NewStyle().Width(treeWidth).Render(b.String())
}
