package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock3d/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON configuration file")
	schemaFile := flag.String("schema", "docs/config.schema.json", "path to the configuration JSON schema")
	flag.Parse()

	ctx := context.Background()

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config %s: %v", *configFile, err)
		}
		cfg = loaded
	}

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Flock3D (actor mode)")

	game := simulation.GetNewGame(ctx, cfg)
	defer game.System.Stop(ctx)
	err := ebiten.RunGame(game)
	if err != nil {
		log.Fatal(err)
	}
}
