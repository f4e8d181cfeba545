package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/levels"
	"github.com/milk9111/reactor/player"
	"github.com/milk9111/reactor/prefabs"
	"github.com/milk9111/reactor/sim"
)

const (
	baseWidth  = 1080
	baseHeight = 810
)

type gameState int

const (
	stateMenu gameState = iota
	statePlaying
	stateRetry
)

type Options struct {
	Level  string
	Seed   uint64
	Debug  bool
	Record bool
	Hold   bool
}

type Game struct {
	opts   Options
	state  gameState
	frames int

	tuning *prefabs.TuningSpec
	script *levels.Script
	engine *sim.Engine
	player *player.Player

	recorder *Recorder
	watcher  *prefabs.Watcher
	ui       *ebitenui.UI
	hud      *hud
}

func NewGame(opts Options) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	script, err := loadScript(opts)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		opts:   opts,
		tuning: tuning,
		script: script,
		engine: sim.NewEngine(
			sim.WithTuning(tuning),
			sim.WithScript(script),
			sim.WithSeed(opts.Seed),
			sim.WithDebug(opts.Debug),
		),
		hud: newHUD(),
	}
	if opts.Record {
		g.recorder = NewRecorder()
	}
	if opts.Debug {
		w, err := prefabs.NewWatcher("prefabs", "levels", "levels/scripts")
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	g.enterMenu()
	return g, nil
}

func loadScript(opts Options) (*levels.Script, error) {
	script, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Hold {
		script.Exhaustion = levels.ExhaustHold
	}
	return script, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.engine.Teardown()
}

func (g *Game) Update() error {
	g.frames++
	g.pollReload()

	switch g.state {
	case stateMenu, stateRetry:
		g.ui.Update()
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.enterPlaying()
		}
	case statePlaying:
		return g.updatePlaying()
	}
	return nil
}

func (g *Game) updatePlaying() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Teardown()
		g.enterMenu()
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	cursor := cursorWorld()

	g.player.Update(dt, cursor)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.player.Weapon.Swing()
	}
	if g.recorder != nil {
		g.recorder.Update(g.engine, cursor)
	}

	res, err := g.engine.Step(dt, g.player.Snapshot())
	if err != nil {
		return fmt.Errorf("game: step: %w", err)
	}
	for _, d := range res.Damage {
		g.player.ApplyDamage(d)
	}
	for _, l := range res.Levels {
		log.Printf("game: level %d (cycle %d)", l.Level, l.Cycle)
	}

	if !g.player.Alive() {
		g.engine.Teardown()
		g.enterRetry()
	}
	return nil
}

func (g *Game) enterMenu() {
	g.state = stateMenu
	g.ui = NewPanelUI("Reactor", "Move with the mouse, click to swing.", "Play", g.enterPlaying)
}

func (g *Game) enterRetry() {
	g.state = stateRetry
	rec := g.engine.Records()
	g.ui = NewPanelUI("Meltdown", rec.String(), "Retry", g.enterPlaying)
}

func (g *Game) enterPlaying() {
	if err := g.engine.Reset(); err != nil {
		log.Printf("game: reset: %v", err)
		return
	}
	g.player = player.New(g.tuning)
	if g.recorder != nil {
		g.recorder.Start()
	}
	g.state = statePlaying
}

// pollReload picks up edited tuning and level files. They apply from the
// next run so a session never changes rules halfway through.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ch, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(ch)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) reload(ch prefabs.Change) {
	switch ch.Kind {
	case prefabs.ChangeTuning:
		t, err := prefabs.LoadTuning()
		if err != nil {
			log.Printf("game: reload %s: %v", ch.Path, err)
			return
		}
		g.tuning = t
		g.engine.Reload(t, nil)
	case prefabs.ChangeLevel:
		s, err := loadScript(g.opts)
		if err != nil {
			log.Printf("game: reload %s: %v", ch.Path, err)
			return
		}
		g.script = s
		g.engine.Reload(nil, s)
	}
	log.Printf("game: reloaded %s, applies next run", ch.Path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case statePlaying:
		g.drawWorld(screen)
		g.hud.draw(screen, g)
	default:
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// cursorWorld maps the cursor into world space: origin at the center of the
// screen, y up.
func cursorWorld() cp.Vector {
	x, y := ebiten.CursorPosition()
	return screenToWorld(float64(x), float64(y))
}

func screenToWorld(x, y float64) cp.Vector {
	return cp.Vector{X: x - baseWidth/2, Y: baseHeight/2 - y}
}

func worldToScreen(v cp.Vector) (float32, float32) {
	return float32(v.X + baseWidth/2), float32(baseHeight/2 - v.Y)
}
