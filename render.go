package main

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/sim"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

// speciesColors is indexed by tier; the last entry is the default tier.
var speciesColors = []color.RGBA{
	colornames.Lightskyblue,
	colornames.Mediumseagreen,
	colornames.Gold,
	colornames.Darkorange,
	colornames.Orchid,
	colornames.Slategray,
}

func speciesColor(s chem.Species) color.RGBA {
	return speciesColors[s.Tier()]
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	if arena, ok := g.engine.Arena(); ok {
		in := arena.Interior(0)
		x0, y0 := worldToScreen(cp.Vector{X: in.L, Y: in.T})
		x1, y1 := worldToScreen(cp.Vector{X: in.R, Y: in.B})
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, color.RGBA{R: 0x0c, G: 0x14, B: 0x1c, A: 0xff}, false)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 2, colornames.Steelblue, false)
		ex, ey := worldToScreen(arena.Emitter)
		vector.StrokeCircle(screen, ex, ey, 10, 2, colornames.Steelblue, true)
	}

	for _, m := range g.engine.Molecules() {
		x, y := worldToScreen(m.Pos)
		r := float32(m.Radius * m.Growth)
		vector.DrawFilledCircle(screen, x, y, r, speciesColor(m.Species), true)
	}
	for _, p := range g.engine.Projectiles() {
		x, y := worldToScreen(p.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), colornames.Crimson, true)
		vector.StrokeCircle(screen, x, y, float32(p.Radius)+3, 1, colornames.Red, true)
	}

	g.drawPlayer(screen)
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.player
	x, y := worldToScreen(p.Pos)
	body := colornames.Whitesmoke
	// Blink while invulnerable.
	if p.Invulnerable > 0 && g.frames/4%2 == 0 {
		body = colornames.Dimgray
	}
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), body, true)

	base, tip := p.Weapon.Blade(p.Pos, p.Facing)
	bx, by := worldToScreen(base)
	tx, ty := worldToScreen(tip)
	blade := colornames.Silver
	if p.Weapon.Active() {
		blade = colornames.Aqua
	}
	vector.StrokeLine(screen, bx, by, tx, ty, float32(8*g.tuning.Weapon.Scale/2), blade, true)
}

// hud draws the score line in the top inset.
type hud struct {
	face text.Face
}

func newHUD() *hud {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("hud: load font: %v", err)
		return &hud{}
	}
	return &hud{face: &text.GoTextFace{Source: s, Size: 18}}
}

func (h *hud) draw(screen *ebiten.Image, g *Game) {
	if h.face == nil {
		return
	}
	level, cycle := g.engine.Level()
	line := fmt.Sprintf("Score: %d   Time Survived: %s   Lives: %d   Level: %d",
		g.engine.Score(), sim.FormatSurvival(g.engine.TimeSurvived()), g.player.Lives, level+1)
	if cycle > 0 {
		line += fmt.Sprintf(" (x%d)", cycle+1)
	}
	if g.opts.Debug {
		line += fmt.Sprintf("   Molecules: %d   FPS: %.0f", g.engine.Population(), ebiten.ActualFPS())
	}
	if g.recorder != nil {
		line += "   " + g.recorder.Status()
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(24, 20)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, line, h.face, op)
}
