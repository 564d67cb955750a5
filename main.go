package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spacehunt/client"
	"spacehunt/game"
	"spacehunt/sprites"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults apply when empty)")
	assetDir := flag.String("assets", "", "directory of sprite overrides (PNG or GIF named after the sprite)")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	profileDir := flag.String("profile", "", "capture CPU profiles and traces into this directory on frame drops")
	verbose := flag.Bool("verbose", false, "log the frame rate once a second")
	mute := flag.Bool("mute", false, "disable audio")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := game.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetDir != "" {
		cfg.AssetDir = *assetDir
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting with seed %d", *seed)

	session, err := game.NewSession(cfg, sprites.NewLibrary(cfg.AssetDir), rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	session.Verbose = *verbose

	g, err := client.NewGame(session, client.Options{
		Audio:      !*mute,
		ProfileDir: *profileDir,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.WindowHeight())
	ebiten.SetWindowTitle(game.TitleHeading)
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
