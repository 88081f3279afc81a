package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skybird/assets"
	"github.com/milk9111/skybird/common"
	"github.com/milk9111/skybird/ecs"
	"github.com/milk9111/skybird/ecs/entity"
	"github.com/milk9111/skybird/ecs/render"
	"github.com/milk9111/skybird/ecs/system"
	"github.com/milk9111/skybird/prefabs"
)

type Game struct {
	frames int

	world    *ecs.World
	scene    *entity.Scene
	pipeline *ecs.Scheduler
	renderer *system.RenderSystem
	screen   *render.Screen
	tuning   system.Tuning
	input    *keyboardInput
	seed     uint64

	debug   bool
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	last time.Time
}

func NewGame(debug bool, seed uint64) (*Game, error) {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}

	if err := render.LoadSprites(assets.SpriteNames()...); err != nil {
		return nil, err
	}

	screen, err := render.NewScreen(common.OverlayFontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		tuning: system.DefaultTuning(),
		input:  newKeyboardInput(),
		screen: screen,
		seed:   seed,
		debug:  debug,
	}
	g.tuning.Apply(spec)
	g.renderer = system.NewRenderSystem(&g.tuning)
	g.renderer.Debug = debug
	g.pipeline = system.NewPipeline(&g.tuning, g.input)

	if err := g.reset(spec); err != nil {
		return nil, err
	}

	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// reset rebuilds the world from spec.
func (g *Game) reset(spec *prefabs.WorldSpec) error {
	world := ecs.NewWorld()
	scene, err := entity.BuildWorld(world, spec, g.seed)
	if err != nil {
		return err
	}
	g.world = world
	g.scene = scene
	g.last = time.Time{}
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		g.last = time.Time{}
		return nil
	}

	g.pollReload()

	now := time.Now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.frames++
	g.input.Poll()
	g.pipeline.Update(g.world, system.ClampDelta(dt, g.tuning.MaxDelta))
	g.logEvents()

	return nil
}

func (g *Game) logEvents() {
	for _, evt := range g.world.Events().Drain() {
		if !g.debug {
			continue
		}
		switch evt.Kind {
		case ecs.EventRespawn:
			log.Printf("game: player respawned (%s)", evt.Reason)
		case ecs.EventFinaleStarted:
			log.Printf("game: finale started")
		case ecs.EventFinaleFinished:
			log.Printf("game: finale finished after %d frames", g.frames)
		}
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Changed:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

// reload applies an edited prefab. Tuning changes take effect in place;
// an edited script rebuilds the world so the new swarm shows up.
func (g *Game) reload(name string) {
	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Printf("prefabs: reload %s: %v", name, err)
		return
	}
	g.tuning.Apply(spec)
	if filepath.Ext(name) == ".tengo" {
		if err := g.reset(spec); err != nil {
			log.Printf("prefabs: rebuild after %s: %v", name, err)
			return
		}
	}
	log.Printf("prefabs: reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Target(screen)
	g.renderer.Draw(g.world, g.screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Hazards: %d", g.frames, ebiten.ActualFPS(), len(g.scene.Hazards)))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.tuning.ViewW), int(g.tuning.ViewH)
}
