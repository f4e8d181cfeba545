package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/reactor/levels"
	"github.com/milk9111/reactor/player"
	"github.com/milk9111/reactor/prefabs"
	"github.com/milk9111/reactor/sim"
)

// simrun plays a level script headless with a scripted player and prints
// how long it survived. It is used to balance levels without a window.
func main() {
	levelName := flag.String("level", levels.DefaultScript, "level script in levels/ (.yaml)")
	seed := flag.Uint64("seed", 1, "seed for reaction product scatter")
	seconds := flag.Float64("seconds", 120, "stop after this much simulated time")
	tps := flag.Int("tps", 60, "simulation ticks per second")
	swing := flag.Bool("swing", true, "swing the weapon whenever it is idle")
	flag.Parse()

	tuning, err := prefabs.LoadTuning()
	if err != nil {
		log.Fatal(err)
	}
	script, err := levels.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}

	engine := sim.NewEngine(sim.WithTuning(tuning), sim.WithScript(script), sim.WithSeed(*seed))
	if err := engine.Reset(); err != nil {
		log.Fatal(err)
	}
	p := player.New(tuning)

	dt := 1 / float64(*tps)
	var peak, hits int
	for t := 0.0; t < *seconds && p.Alive(); t += dt {
		// Orbit the arena center so the player keeps meeting new molecules.
		target := cp.ForAngle(t).Mult(200)
		p.Update(dt, target)
		if *swing {
			p.Weapon.Swing()
		}
		res, err := engine.Step(dt, p.Snapshot())
		if err != nil {
			log.Fatal(err)
		}
		for _, d := range res.Damage {
			if p.ApplyDamage(d) {
				hits++
			}
		}
		if n := engine.Population(); n > peak {
			peak = n
		}
	}

	level, cycle := engine.Level()
	score, survived := engine.Score(), engine.TimeSurvived()
	engine.Teardown()

	fmt.Fprintf(os.Stdout, "session   %s\n", engine.SessionID())
	fmt.Fprintf(os.Stdout, "survived  %s\n", sim.FormatSurvival(survived))
	fmt.Fprintf(os.Stdout, "score     %d\n", score)
	fmt.Fprintf(os.Stdout, "hits      %d (lives left %d)\n", hits, p.Lives)
	fmt.Fprintf(os.Stdout, "level     %d (cycle %d)\n", level+1, cycle)
	fmt.Fprintf(os.Stdout, "peak pop  %d / %d\n", peak, tuning.PopulationCap)
}
