package main

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/snowfort/internal/application/replay"
	"github.com/younwookim/snowfort/internal/application/system"
	"github.com/younwookim/snowfort/internal/infrastructure/config"
)

// openInput returns the live keyboard, or a Replayer when path is set.
// A replay carries its own world seed, which overrides the config so the
// generated terrain matches the recorded run.
func openInput(path string, cfg *config.GameConfig, log logrus.FieldLogger) (system.InputSource, error) {
	if path == "" {
		return system.EbitenInput{}, nil
	}

	data, err := replay.LoadReplay(path)
	if err != nil {
		return nil, err
	}
	if data.Seed != cfg.World.Seed {
		log.WithFields(logrus.Fields{"config": cfg.World.Seed, "replay": data.Seed}).Info("using replay seed")
		cfg.World.Seed = data.Seed
	}
	if data.DT > 0 {
		cfg.Display.Framerate = int(1.0/data.DT + 0.5)
	}

	r := replay.NewReplayer(*data)
	log.WithFields(logrus.Fields{"path": path, "frames": r.TotalFrames(), "level": data.Level}).Info("replaying")
	return r, nil
}

// loadHomeLevel reads the authored home area, if one is configured
func loadHomeLevel(loader *config.Loader, name string) (*system.HomeLevel, error) {
	if name == "" {
		return nil, nil
	}
	lc, err := loader.LoadLevel(name)
	if err != nil {
		return nil, err
	}
	return system.LoadLevel(lc)
}
