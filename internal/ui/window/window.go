// Package window is the desktop frontend: an ebiten window that feeds key
// presses to a game and draws its snapshot every frame, with an optional
// Dear ImGui debug overlay.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	debugui_ebiten "github.com/plus3/blockfall/game/debugui/ebiten"
	"github.com/plus3/blockfall/piece"
)

const (
	ticksPerSecond = 60
	panelCells     = 6
	bannerTicks    = 90
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	gridColor       = color.RGBA{45, 45, 58, 255}
	ghostColor      = color.RGBA{200, 200, 200, 90}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

type Options struct {
	CellSize int
	Debug    bool
	Logger   zerolog.Logger
}

// App implements ebiten.Game around a *game.Game.
type App struct {
	game     *game.Game
	clock    game.Clock
	cellSize int
	logger   zerolog.Logger

	imgui   *debugui_ebiten.ImguiBackend
	overlay *debugui.ImguiSystem

	banner      string
	bannerTicks int
}

// New creates the frontend. Attach a game with Run; HandleEvent may be given
// to the game as its listener before that.
func New(opts Options) *App {
	return &App{
		clock:    game.FixedStep(1.0 / ticksPerSecond),
		cellSize: opts.CellSize,
		logger:   opts.Logger,
	}
}

// HandleEvent turns game events into short on-screen banners.
func (a *App) HandleEvent(e game.Event) {
	switch e.Kind {
	case game.EventLinesCleared:
		a.showBanner(lineBanner(e.Lines))
	case game.EventLevelUp:
		a.showBanner(fmt.Sprintf("LEVEL %d", e.Level))
	case game.EventRestarted:
		a.bannerTicks = 0
	}
}

func lineBanner(n int) string {
	switch n {
	case 1:
		return "SINGLE"
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	}
	return fmt.Sprintf("%d LINES", n)
}

func (a *App) showBanner(text string) {
	a.banner = text
	a.bannerTicks = bannerTicks
}

func (a *App) size(snap game.Snapshot) (int, int) {
	return (snap.Width + panelCells) * a.cellSize, snap.Height * a.cellSize
}

// Run opens the window and blocks until it is closed.
func (a *App) Run(g *game.Game, debug bool) error {
	a.game = g
	w, h := a.size(g.Snapshot())

	ebiten.SetTPS(ticksPerSecond)
	ebiten.SetWindowTitle("blockfall")

	if debug {
		w, h = max(w, 1280), max(h, 720)
		a.imgui = debugui_ebiten.NewImguiBackend("blockfall (debug)", w, h)
		a.overlay = debugui.New(g)
		g.Register(a.overlay)
	}
	ebiten.SetWindowSize(w, h)

	a.logger.Info().Int("width", w).Int("height", h).Bool("debug", debug).Msg("opening window")
	return ebiten.RunGame(a)
}

func (a *App) Update() error {
	if quitPressed() {
		return ebiten.Termination
	}

	if a.imgui != nil {
		a.imgui.BeginFrame()
	}

	if a.overlay == nil || !a.overlay.InputState.WantCaptureKeyboard {
		a.game.Push(pressedCommands(inpututil.KeyPressDuration)...)
	}
	a.game.Advance(a.clock)

	if a.imgui != nil {
		a.imgui.EndFrame()
	}

	if a.bannerTicks > 0 {
		a.bannerTicks--
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := a.game.Snapshot()
	a.drawWell(screen, snap)
	a.drawPanel(screen, snap)

	if a.imgui != nil {
		a.imgui.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.imgui != nil {
		a.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return a.size(a.game.Snapshot())
}

func (a *App) cell(screen *ebiten.Image, x, y int, clr color.Color) {
	cs := float32(a.cellSize)
	vector.DrawFilledRect(screen, float32(x)*cs+1, float32(y)*cs+1, cs-2, cs-2, clr, false)
}

func (a *App) drawWell(screen *ebiten.Image, snap game.Snapshot) {
	cs := float32(a.cellSize)
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width)*cs, float32(snap.Height)*cs, wellColor, false)

	for y := range snap.Height {
		for x := range snap.Width {
			vector.StrokeRect(screen, float32(x)*cs, float32(y)*cs, cs, cs, 1, gridColor, false)
			if c := snap.Cells[y][x]; !c.Empty() {
				a.cell(screen, x, y, c.RGBA())
			}
		}
	}

	if p := snap.Active; p != nil {
		if p.GhostY != p.Y {
			for r, c := range p.Shape.Cells() {
				if y := p.GhostY + r; y >= 0 {
					a.cell(screen, p.X+c, y, ghostColor)
				}
			}
		}
		for r, c := range p.Shape.Cells() {
			if y := p.Y + r; y >= 0 {
				a.cell(screen, p.X+c, y, p.Color.RGBA())
			}
		}
	}

	switch {
	case snap.Over:
		a.drawOverlay(screen, snap, "GAME OVER", "R to restart, Q to quit")
	case snap.Paused:
		a.drawOverlay(screen, snap, "PAUSED", "P to resume")
	case a.bannerTicks > 0:
		ebitenutil.DebugPrintAt(screen, a.banner, a.cellSize, a.cellSize*2)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, snap game.Snapshot, title, hint string) {
	cs := float32(a.cellSize)
	vector.DrawFilledRect(screen, 0, 0, float32(snap.Width)*cs, float32(snap.Height)*cs, overlayColor, false)
	y := snap.Height * a.cellSize / 2
	ebitenutil.DebugPrintAt(screen, title, a.cellSize, y-16)
	ebitenutil.DebugPrintAt(screen, hint, a.cellSize/2, y)
}

func (a *App) drawPanel(screen *ebiten.Image, snap game.Snapshot) {
	left := snap.Width * a.cellSize
	x := left + a.cellSize/2

	ebitenutil.DebugPrintAt(screen, "NEXT", x, a.cellSize/2)
	if snap.Next != nil {
		a.drawPreview(screen, snap.Next, snap.Width+1, 2)
	}

	lines := []string{
		fmt.Sprintf("SCORE  %d", snap.Progress.Score),
		fmt.Sprintf("HIGH   %d", snap.HighScore),
		fmt.Sprintf("LEVEL  %d", snap.Progress.Level),
		fmt.Sprintf("LINES  %d", snap.Progress.Lines),
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, 7*a.cellSize+i*20)
	}

	help := "arrows move\nup rotate\nspace drop\np pause"
	ebitenutil.DebugPrintAt(screen, help, x, snap.Height*a.cellSize-5*16)
}

func (a *App) drawPreview(screen *ebiten.Image, p *piece.Piece, col, row int) {
	for r, c := range p.Shape.Cells() {
		a.cell(screen, col+c, row+r, p.Color.RGBA())
	}
}
