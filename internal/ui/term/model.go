// Package term is the terminal frontend, a bubbletea program drawing the
// board with lipgloss.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

const (
	frameInterval = time.Second / 60
	bannerFrames  = 60
	cellText      = "██"
	emptyText     = " ·"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

var (
	wellStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5f5f87"))
	panelStyle  = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a0a0ff"))
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0f000"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4e4e4e"))
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3a3a"))
)

// Model is the bubbletea model. It owns the game for the program's lifetime.
type Model struct {
	game   *game.Game
	clock  game.Clock
	help   help.Model
	logger zerolog.Logger

	banner       string
	bannerFrames int
	quitting     bool
}

// New returns a model; attach a game with SetGame before running it.
func New(logger zerolog.Logger) *Model {
	return &Model{
		clock:  game.NewWallClock(),
		help:   help.New(),
		logger: logger,
	}
}

func (m *Model) SetGame(g *game.Game) {
	m.game = g
}

// HandleEvent is meant to be the game's listener.
func (m *Model) HandleEvent(e game.Event) {
	switch e.Kind {
	case game.EventLinesCleared:
		m.showBanner(fmt.Sprintf("+%d LINE%s", e.Lines, plural(e.Lines)))
	case game.EventLevelUp:
		m.showBanner(fmt.Sprintf("LEVEL %d", e.Level))
	case game.EventGameOver:
		m.logger.Info().Int("score", e.Result.Score).Msg("game over")
	case game.EventRestarted:
		m.bannerFrames = 0
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "S"
}

func (m *Model) showBanner(text string) {
	m.banner = text
	m.bannerFrames = bannerFrames
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.game.Advance(m.clock)
		if m.bannerFrames > 0 {
			m.bannerFrames--
		}
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if cmd, ok := keys.commandFor(msg); ok {
			m.game.Push(cmd)
			m.game.Tick(0)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.game.Snapshot()

	well := wellStyle.Render(renderWell(snap))
	panel := panelStyle.Render(m.renderPanel(snap))
	return lipgloss.JoinHorizontal(lipgloss.Top, well, panel) + "\n" + m.help.View(keys) + "\n"
}

func colorStyle(c piece.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// renderWell draws the board, ghost and active piece, one row per line.
func renderWell(snap game.Snapshot) string {
	ghost := map[[2]int]bool{}
	if p := snap.Active; p != nil && p.GhostY != p.Y {
		for r, c := range p.Shape.Cells() {
			ghost[[2]int{p.X + c, p.GhostY + r}] = true
		}
	}

	var sb strings.Builder
	for y := range snap.Height {
		for x := range snap.Width {
			switch c := snap.Occupied(x, y); {
			case !c.Empty():
				sb.WriteString(colorStyle(c).Render(cellText))
			case ghost[[2]int{x, y}]:
				sb.WriteString(ghostStyle.Render(cellText))
			default:
				sb.WriteString(dimStyle.Render(emptyText))
			}
		}
		if y < snap.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func renderPiece(p *piece.Piece) string {
	style := colorStyle(p.Color)
	var sb strings.Builder
	for r, row := range p.Shape {
		for _, filled := range row {
			if filled {
				sb.WriteString(style.Render(cellText))
			} else {
				sb.WriteString("  ")
			}
		}
		if r < len(p.Shape)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (m *Model) renderPanel(snap game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	if snap.Next != nil {
		sb.WriteString(renderPiece(snap.Next))
	}
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%s %d\n", titleStyle.Render("SCORE"), snap.Progress.Score)
	fmt.Fprintf(&sb, "%s  %d\n", titleStyle.Render("HIGH"), snap.HighScore)
	fmt.Fprintf(&sb, "%s %d\n", titleStyle.Render("LEVEL"), snap.Progress.Level)
	fmt.Fprintf(&sb, "%s %d\n", titleStyle.Render("LINES"), snap.Progress.Lines)
	sb.WriteString("\n")

	switch {
	case snap.Over:
		sb.WriteString(bannerStyle.Render("GAME OVER") + "\nr to restart")
	case snap.Paused:
		sb.WriteString(bannerStyle.Render("PAUSED"))
	case m.bannerFrames > 0:
		sb.WriteString(bannerStyle.Render(m.banner))
	}
	return sb.String()
}

// Run plays g in the terminal until the player quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, g *game.Game) error {
	m.SetGame(g)
	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	_, err := p.Run()
	return err
}
