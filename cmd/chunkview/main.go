// Command chunkview streams the world chunk window headlessly and draws
// it in the terminal, one character per chunk.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/domain/terrain"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
	"github.com/younwookim/snowfort/internal/infrastructure/logging"
)

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Directory holding game.json")
	radius := flag.Int("radius", -1, "Override world.renderDistance")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.NewLoader(*configDir).LoadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *radius >= 0 {
		cfg.World.RenderDistance = *radius
	}
	// the terminal owns stdout, so logs only go to a file when configured
	log, closer, err := logging.New(cfg.Log)
	if err != nil || cfg.Log.File == "" {
		log = logging.Discard()
	}
	if closer != nil {
		defer closer.Close()
	}

	gen, err := system.NewGenerator(cfg.World)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create generator: %v\n", err)
		os.Exit(1)
	}
	defer gen.Close()

	// a zero interval never fires, so the viewer has no enemies
	cfg.Enemy.SpawnInterval = 0
	sim := system.NewSimulation(cfg, gen, system.TerrainConfig{
		DefaultTileIndex: terrain.TileIndex(cfg.World.DefaultTileIndex),
	}, log)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := newViewer(sim, screen, 1.0/float64(cfg.Display.Framerate))
	v.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
		}
		if !v.handle(ev) {
			return
		}
		v.draw()
	}
}
