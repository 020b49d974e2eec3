package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"simplequest/internal/config"
	"simplequest/internal/game"
	"simplequest/internal/items"
	"simplequest/internal/party"
	"simplequest/internal/shop"
	"simplequest/internal/tui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the game configuration")
	useTUI := flag.Bool("tui", false, "run in the terminal instead of a window")
	fresh := flag.Bool("new", false, "ignore the save file and start a new party")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)

	// Load item catalog
	catalog := items.MustLoadCatalog(cfg.Assets.Items)

	p, err := loadParty(cfg, catalog, *fresh)
	if err != nil {
		log.Fatal(err)
	}

	session, err := shop.NewSession(shop.NewEnv(cfg, catalog, p), cfg.Assets.SaveFile)
	if err != nil {
		log.Fatal(err)
	}

	if *useTUI {
		if err := tui.New(session).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewShopGame(cfg, session)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// loadParty resumes the saved party, falling back to the configured starting party.
func loadParty(cfg *config.Config, catalog *items.Catalog, fresh bool) (*party.Party, error) {
	if !fresh && cfg.Assets.SaveFile != "" {
		p, err := party.LoadFromFile(cfg.Assets.SaveFile, catalog)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: Failed to load save %s: %v", cfg.Assets.SaveFile, err)
		}
	}
	return party.NewParty(cfg, catalog)
}
