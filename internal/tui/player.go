package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/conway/internal/game"
	"github.com/san-kum/conway/internal/metrics"
)

const (
	historyCapacity = 120
	frameInterval   = time.Second / 60
	scrollStep      = 1
	scrollJump      = 10
)

type TickMsg time.Time

// Model is the interactive player. It owns the Game for the lifetime of
// the program; bubbletea serialises Update calls so no locking is needed.
type Model struct {
	game           *game.Game
	history        *metrics.History
	peak           *metrics.Peak
	title          string
	interval       time.Duration
	maxGenerations int
	running        bool
	showHelp       bool
}

// NewModel wraps g for interactive play. maxGenerations of zero plays until
// extinction.
func NewModel(g *game.Game, title string, maxGenerations int) Model {
	history := metrics.NewHistory(historyCapacity)
	peak := metrics.NewPeak()
	history.OnTick(g.Generation(), g.Grid())
	peak.OnTick(g.Generation(), g.Grid())
	g.AddObserver(history)
	g.AddObserver(peak)

	interval := g.Settings().Delay
	if interval <= 0 {
		interval = frameInterval
	}

	return Model{
		game:           g,
		history:        history,
		peak:           peak,
		title:          title,
		interval:       interval,
		maxGenerations: maxGenerations,
		running:        true,
	}
}

func Run(g *game.Game, title string, maxGenerations int) error {
	_, err := tea.NewProgram(NewModel(g, title, maxGenerations), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) finished() bool {
	if m.game.IsOver() {
		return true
	}
	return m.maxGenerations > 0 && m.game.Generation() >= m.maxGenerations
}

// Update handles input events and steps the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running && !m.finished() {
				m.game.Tick()
			}
		case "left", "h":
			m.game.Scroll(-scrollStep, 0)
		case "right", "l":
			m.game.Scroll(scrollStep, 0)
		case "up", "k":
			m.game.Scroll(0, -scrollStep)
		case "down", "j":
			m.game.Scroll(0, scrollStep)
		case "H":
			m.game.Scroll(-scrollJump, 0)
		case "L":
			m.game.Scroll(scrollJump, 0)
		case "K":
			m.game.Scroll(0, -scrollJump)
		case "J":
			m.game.Scroll(0, scrollJump)
		case "c":
			m.game.CenterViewport()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running && !m.finished() {
			m.game.Tick()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) status(st styles) string {
	switch {
	case m.game.IsOver():
		return st.over.Render("EXTINCT")
	case m.finished():
		return st.paused.Render("DONE")
	case !m.running:
		return st.paused.Render("PAUSED")
	default:
		return st.running.Render("RUNNING")
	}
}

// View renders the board beside the statistics panel.
func (m Model) View() string {
	st := newStyles(CurrentTheme)
	board := st.board.Render(strings.TrimSuffix(m.game.Draw(), "\n"))

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.status(st) + "\n\n")

	vp := m.game.ViewportState()
	lo, hi := m.game.Viewport()
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Generation", fmt.Sprintf("%d", m.game.Generation()))
	row("Population", fmt.Sprintf("%d", m.game.Population()))
	row("Peak", fmt.Sprintf("%.0f", m.peak.Value()))
	row("View", m.game.Settings().View.String())
	row("Size", fmt.Sprintf("%dx%d", vp.Width, vp.Height))
	row("Scroll", vp.Scroll.String())
	row("Frame", fmt.Sprintf("%v..%v", lo, hi))

	if m.history.Len() > 1 {
		chart := asciigraph.Plot(m.history.Populations(),
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.Caption("Population"),
		)
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString(st.help.Render("SP:Pause N:Step C:Center\nhjkl/←↑↓→:Scroll T:Theme\n?:Help Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, board, st.stats.Render(s.String()))

	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Step one generation      ║
║  C        - Center on live cells     ║
║  h j k l  - Scroll by one cell       ║
║  H J K L  - Scroll by ten cells      ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
