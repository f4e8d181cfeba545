package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/reactor/levels"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (hot reload, fail fast on missing player)")
	levelName := flag.String("level", levels.DefaultScript, "level script in levels/ (.yaml)")
	seed := flag.Uint64("seed", 1, "seed for reaction product scatter")
	record := flag.Bool("record", false, "record spawns with keys 0-5, L for a new level, P to export")
	hold := flag.Bool("hold", false, "replay the last level forever instead of wrapping")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("reactor")

	game, err := NewGame(Options{
		Level:  *levelName,
		Seed:   *seed,
		Debug:  *debug,
		Record: *record,
		Hold:   *hold,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
