package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/chem"
	"github.com/milk9111/reactor/levels"
	"github.com/milk9111/reactor/sim"
	"golang.design/x/clipboard"
)

var speciesKeys = []ebiten.Key{
	ebiten.KeyDigit0,
	ebiten.KeyDigit1,
	ebiten.KeyDigit2,
	ebiten.KeyDigit3,
	ebiten.KeyDigit4,
	ebiten.KeyDigit5,
}

// Recorder binds the level recorder to the keyboard. Keys 0-5 capture a
// spawn of that species aimed at half the cursor offset (hold Space to
// track the player instead), L opens a new level and P exports YAML.
type Recorder struct {
	rec     *levels.Recorder
	clipOK  bool
	lastOut string
}

func NewRecorder() *Recorder {
	r := &Recorder{rec: levels.NewRecorder()}
	if err := clipboard.Init(); err != nil {
		log.Printf("recorder: clipboard unavailable, exports go to the log only: %v", err)
	} else {
		r.clipOK = true
	}
	return r
}

func (r *Recorder) Start() {
	r.rec.Reset()
	r.lastOut = ""
}

// Update reads the recorder keys for one frame. Untracked captures are
// previewed in the running session right away.
func (r *Recorder) Update(engine *sim.Engine, cursor cp.Vector) {
	r.rec.Advance(1.0 / float64(ebiten.TPS()))
	track := ebiten.IsKeyPressed(ebiten.KeySpace)

	for i, key := range speciesKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		ev := r.rec.Capture(chem.Species(i), cursor.Mult(0.5), track)
		arena, ok := engine.Arena()
		if !ok || track {
			continue
		}
		dir, speed := ev.Launch()
		if _, err := engine.SpawnMolecule(arena.Emitter, dir.Mult(speed), ev.SpeciesID()); err != nil {
			log.Printf("recorder: preview: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		r.rec.NextLevel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if err := r.Export(); err != nil {
			log.Printf("recorder: export: %v", err)
		}
	}
}

// Export writes the recording to the log and, when available, the clipboard.
func (r *Recorder) Export() error {
	data, err := r.rec.Script().Marshal()
	if err != nil {
		return err
	}
	log.Printf("recorder: exported level script:\n%s", data)
	r.lastOut = fmt.Sprintf("exported %d bytes", len(data))
	if r.clipOK {
		clipboard.Write(clipboard.FmtText, data)
		r.lastOut += " to clipboard"
	}
	return nil
}

func (r *Recorder) Status() string {
	lvl, n := r.rec.Level()
	s := fmt.Sprintf("REC level %d: %d events", lvl, n)
	if r.lastOut != "" {
		s += " (" + r.lastOut + ")"
	}
	return s
}
