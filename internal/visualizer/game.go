// Package visualizer is the ebiten window around a session.Session: it
// polls input, advances the search once per tick and paints the frame.
package visualizer

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/settings"
	"github.com/katalvlaran/pathviz/search"
	"github.com/katalvlaran/pathviz/session"
	"github.com/katalvlaran/pathviz/view"
)

// Key bindings.
const (
	keySource   = ebiten.KeyS
	keyWall     = ebiten.KeyW
	keyTarget   = ebiten.KeyT
	keyRemove   = ebiten.KeyR
	keyRun      = ebiten.KeyC
	keyPause    = ebiten.KeyX
	keyStrategy = ebiten.KeyA
	keyClear    = ebiten.KeyDelete
	keyHUD      = ebiten.KeyH
	keyQuit     = ebiten.KeyEscape
)

// toolKeys is checked in order; the first pressed key wins.
var toolKeys = []struct {
	key  ebiten.Key
	tool grid.CellType
}{
	{keySource, grid.Source},
	{keyWall, grid.Wall},
	{keyTarget, grid.Target},
	{keyRemove, grid.Remove},
}

const lineWidth = 1

const helpLine = "S/W/T/R tool  C run  X pause  A strategy  Del clear  H help  Esc quit"

// Options configures a Game.
type Options struct {
	Width, Height int
	// Input defaults to EbitenInput.
	Input Input
	// Settings may be nil; preferences are then neither restored nor saved.
	Settings *settings.Manager
	Logger   *logrus.Entry
}

// Game implements ebiten.Game.
type Game struct {
	sess  *session.Session
	input Input
	prefs *settings.Manager
	log   *logrus.Entry

	width, height int
	weight        float64
	frame         session.Frame
	scene         scene

	dragging bool
	cursor   view.Point
	hud      bool
	quit     bool
}

var _ ebiten.Game = (*Game)(nil)

// New wraps sess and applies the stored preferences to it.
func New(sess *session.Session, opts Options) *Game {
	if opts.Input == nil {
		opts.Input = EbitenInput{}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.NewEntry(logrus.StandardLogger())
	}

	g := &Game{
		sess:   sess,
		input:  opts.Input,
		prefs:  opts.Settings,
		log:    opts.Logger,
		width:  opts.Width,
		height: opts.Height,
		weight: 1,
		hud:    true,
	}
	if s := sess.Strategy(); s.Kind == search.AStar {
		g.weight = s.Weight
	}
	g.restore()
	g.frame = sess.Step()

	return g
}

// restore applies the stored tool and strategy on top of the configured
// session. The stored zoom is applied earlier through SessionOptions.
func (g *Game) restore() {
	if g.prefs == nil {
		return
	}
	p := g.prefs.Preferences()

	if err := g.sess.Select(p.ToolType()); err != nil {
		g.log.WithError(err).Warn("stored tool ignored")
	}
	if s, ok := p.SearchStrategy(); ok {
		if s.Kind == search.AStar {
			g.weight = s.Weight
		}
		if s != g.sess.Strategy() {
			if err := g.sess.SetStrategy(s); err != nil {
				g.log.WithError(err).Warn("stored strategy ignored")
			}
		}
	}
}

// SessionOptions returns the session options that must be applied before
// the session is built: the stored cell size decides where the default
// endpoints land. prefs may be nil.
func SessionOptions(prefs *settings.Manager) []session.Option {
	if prefs == nil {
		return nil
	}

	return []session.Option{session.WithViewOptions(prefs.Preferences().ViewOptions()...)}
}

// Session returns the driven session.
func (g *Game) Session() *session.Session { return g.sess }

// Update polls input, applies it to the session and steps the search.
func (g *Game) Update() error {
	// 1) Commands.
	g.handleKeys()
	if g.quit {
		return ebiten.Termination
	}

	// 2) Pointer: paint, pan, zoom.
	g.handlePointer()

	// 3) One bounded chunk of search work.
	g.frame = g.sess.Step()

	return nil
}

func (g *Game) handleKeys() {
	for _, b := range toolKeys {
		if g.input.KeyJustPressed(b.key) {
			g.selectTool(b.tool)
			break
		}
	}

	switch {
	case g.input.KeyJustPressed(keyRun):
		g.sess.Run()
	case g.input.KeyJustPressed(keyPause):
		if g.frame.Paused {
			g.sess.Resume()
		} else {
			g.sess.Pause()
		}
	case g.input.KeyJustPressed(keyStrategy):
		g.toggleStrategy()
	case g.input.KeyJustPressed(keyClear):
		g.sess.Clear()
	case g.input.KeyJustPressed(keyHUD):
		g.hud = !g.hud
	case g.input.KeyJustPressed(keyQuit):
		g.quit = true
	}
}

func (g *Game) selectTool(tool grid.CellType) {
	if err := g.sess.Select(tool); err != nil {
		g.log.WithError(err).Warn("tool rejected")
		return
	}
	if g.prefs != nil {
		g.prefs.SetTool(tool)
	}
}

func (g *Game) toggleStrategy() {
	next := search.AStarStrategy(g.weight)
	if g.sess.Strategy().Kind == search.AStar {
		next = search.DijkstraStrategy()
	}
	if err := g.sess.SetStrategy(next); err != nil {
		g.log.WithError(err).Warn("strategy switch failed")
		return
	}
	if g.prefs != nil {
		g.prefs.SetStrategy(next)
	}
}

func (g *Game) handlePointer() {
	x, y := g.input.Cursor()
	p := view.Point{X: float64(x), Y: float64(y)}

	g.sess.Press(p, g.input.MouseDown(ebiten.MouseButtonLeft))

	if g.input.MouseDown(ebiten.MouseButtonRight) {
		if g.dragging {
			g.sess.Drag(p.X-g.cursor.X, p.Y-g.cursor.Y)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.cursor = p

	if _, wy := g.input.Wheel(); wy != 0 {
		if g.sess.Zoom(p, wy) && g.prefs != nil {
			g.prefs.SetCellSize(g.sess.View().CellSize())
		}
	}
}

// Draw paints the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorWindow)

	g.scene = buildScene(g.frame, g.sess.View(), g.frame.Now)
	for _, f := range g.scene.fills {
		vector.DrawFilledRect(screen, float32(f.rect.X), float32(f.rect.Y), float32(f.rect.W), float32(f.rect.H), f.clr, false)
	}
	for _, l := range g.scene.lines {
		vector.StrokeLine(screen, float32(l.A.X), float32(l.A.Y), float32(l.B.X), float32(l.B.Y), lineWidth, colorLine, false)
	}

	if g.hud {
		ebitenutil.DebugPrintAt(screen, g.status(ebiten.ActualTPS()), 10, 10)
	}
}

// status is the HUD text.
func (g *Game) status(tps float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tool: %s  strategy: %s  state: %s", g.sess.Tool(), g.sess.Strategy(), g.frame.State)
	if g.frame.Paused {
		b.WriteString(" (paused)")
	}
	st := g.sess.Engine().Stats()
	fmt.Fprintf(&b, "\nexpanded: %d  frontier: %d  tps: %.0f", st.Expanded, g.sess.Engine().FrontierLen(), tps)
	if g.sess.Engine().PathFound() {
		fmt.Fprintf(&b, "  hops: %d", st.PathLength)
	}
	b.WriteString("\n" + helpLine)

	return b.String()
}

// Layout keeps the configured logical size.
func (g *Game) Layout(_, _ int) (int, int) { return g.width, g.height }

// Close saves the preferences.
func (g *Game) Close() error {
	if g.prefs == nil {
		return nil
	}

	return g.prefs.Save()
}
