package main

import (
	"flag"
	"os"

	"GopherFishing/internal/config"
	"GopherFishing/internal/engine"
	"GopherFishing/internal/logger"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config overlay")
	assetsDir := flag.String("assets", "", "asset directory (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	seed := flag.Int64("seed", 0, "bite timing seed, 0 picks one from the clock")
	flag.Parse()

	logger.InitWith(*debug)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Error("Failed to load config", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}
	if *seed != 0 {
		cfg.Rig.Seed = *seed
	}

	if err := engine.New(cfg).Run(); err != nil {
		logger.Log.Error("Engine stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
