package config

import "github.com/spf13/viper"

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.title", "Snowfort")
	v.SetDefault("display.screenWidth", 960)
	v.SetDefault("display.screenHeight", 720)
	v.SetDefault("display.scale", 1)
	v.SetDefault("display.framerate", 60)

	v.SetDefault("world.tileSize", 8.0)
	v.SetDefault("world.chunkSide", 32)
	v.SetDefault("world.renderDistance", 3)
	v.SetDefault("world.defaultTileIndex", 0)
	v.SetDefault("world.generator", "uniform")
	v.SetDefault("world.seed", 1)
	v.SetDefault("world.noiseScale", 8)
	v.SetDefault("world.palette", []uint32{0, 1, 2, 3})
	v.SetDefault("world.cacheChunks", 256)
	v.SetDefault("world.tileset", "tiles/tileset.png")
	v.SetDefault("world.tilesetColumns", 8)
	v.SetDefault("world.homeLevel", "home")

	v.SetDefault("combat.fireInterval", 1.0)
	v.SetDefault("combat.bulletSpeed", 300.0)
	v.SetDefault("combat.collisionThreshold", 3.0)
	v.SetDefault("combat.bulletRange", 4000.0)
	v.SetDefault("combat.towerSize", 48.0)
	v.SetDefault("combat.towerSprite", "tower.png")
	v.SetDefault("combat.bulletSprite", "bullet.png")

	v.SetDefault("player.speed", 200.0)
	v.SetDefault("player.spawnX", 0.0)
	v.SetDefault("player.spawnY", 0.0)
	v.SetDefault("player.size", 48.0)
	v.SetDefault("player.sprite", "player.png")

	v.SetDefault("enemy.spawnInterval", 0.5)
	v.SetDefault("enemy.spawnX", -700.0)
	v.SetDefault("enemy.spawnY", 0.0)
	v.SetDefault("enemy.driftSpeed", 10.0)
	v.SetDefault("enemy.amplitude", 100.0)
	v.SetDefault("enemy.frequency", 5.0)
	v.SetDefault("enemy.maxAlive", 256)
	v.SetDefault("enemy.sprite", "enemy.png")

	v.SetDefault("camera.viewportHeight", 1000.0)
	v.SetDefault("camera.zoomMin", 0.1)
	v.SetDefault("camera.zoomMax", 10.0)
	v.SetDefault("camera.zoomSpeed", 0.2)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.stems", []string{
		"audio/stem_bass.wav",
		"audio/stem_drums.wav",
		"audio/stem_others.wav",
	})
	v.SetDefault("audio.mutedDB", -120.0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.maxSizeMB", 10)
	v.SetDefault("log.maxBackups", 3)
	v.SetDefault("log.maxAgeDays", 7)
}
