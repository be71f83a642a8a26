package main

import (
	"flag"
	"io/fs"
	"os"

	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/application/game"
	"github.com/younwookim/snowfort/internal/application/scene/playing"
	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/infrastructure/assets"
	"github.com/younwookim/snowfort/internal/infrastructure/audio"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
	"github.com/younwookim/snowfort/internal/infrastructure/logging"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record run.msgpack)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	assetsFlag := flag.String("assets", "assets", "Directory holding sprites, tiles and audio")
	flag.Parse()

	// .env is optional; it only seeds SNOWFORT_* overrides
	_ = godotenv.Load()

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		logrus.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadGame()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	input, err := openInput(*replayFlag, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("failed to open replay")
	}

	level, err := loadHomeLevel(loader, cfg.World.HomeLevel)
	if err != nil {
		log.WithError(err).Warn("home level unavailable, world is fully generated")
	}

	assetFS := os.DirFS(*assetsFlag)
	am := assets.NewManager(assetFS, log)

	var toggler system.StemToggler
	if stems := startAudio(cfg.Audio, assetFS, log); stems != nil {
		defer speaker.Close()
		defer stems.Close()
		toggler = stems
	}

	scene, err := playing.New(playing.Options{
		Config:     cfg,
		Level:      level,
		Assets:     am,
		Input:      input,
		Stems:      toggler,
		Log:        log,
		RecordPath: *recordFlag,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create world")
	}

	g := game.New(scene, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight,
		game.WithDT(1.0/float64(cfg.Display.Framerate)),
		game.WithLogger(log),
	)

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.WithError(err).Error("game loop stopped")
	}
}

// startAudio mixes the configured stems and starts the speaker.
// It returns nil when audio is disabled or nothing could be loaded.
func startAudio(cfg config.AudioConfig, fsys fs.FS, log logrus.FieldLogger) *audio.Stems {
	if !cfg.Enabled || len(cfg.Stems) == 0 {
		return nil
	}
	stems, err := audio.LoadStems(fsys, cfg.Stems, cfg.MutedDB, log)
	if err != nil {
		log.WithError(err).Warn("music stems unavailable")
		return nil
	}
	if err := speaker.Init(audio.SampleRate, audio.BufferSize); err != nil {
		log.WithError(err).Warn("audio device unavailable")
		_ = stems.Close()
		return nil
	}
	speaker.Play(stems.Streamer())
	return stems
}
