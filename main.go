package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skybird/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "hazard scatter seed (0 picks one from the clock)")
	scale := flag.Float64("scale", 1, "window scale factor")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	if *scale <= 0 {
		*scale = 1
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(common.BaseWidth*(*scale)), int(common.BaseHeight*(*scale)))
	ebiten.SetWindowTitle("skybird")

	game, err := NewGame(*debug, *seed)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		log.Printf("game: seed %d", *seed)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
