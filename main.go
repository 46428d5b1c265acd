package main

import (
	"context"
	"os"

	"willowmere/internal/api"
	"willowmere/internal/config"
	"willowmere/internal/game"
	"willowmere/internal/logger"
	"willowmere/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.MustLoadConfig("config.yaml")
	log := logger.Setup(cfg)
	client := api.NewClient(cfg, logger.WithComponent(log, "api"))
	ctx := context.Background()

	if health, err := client.Health(ctx); err != nil {
		log.Warn("backend health check failed, starting offline", "error", err)
	} else {
		log.Info("backend reachable", "status", health.Status,
			"npcs_loaded", health.NPCsLoaded, "players_loaded", health.PlayersLoaded)
	}

	// World geometry comes from the backend; config values are the offline
	// fallback.
	tileSize := cfg.GetTileSize()
	mapW, mapH := cfg.World.MapWidth, cfg.World.MapHeight
	if mapInfo, err := client.GetMap(ctx); err != nil {
		log.Warn("map fetch failed, using configured dimensions", "error", err)
	} else {
		if mapInfo.TileSize > 0 {
			tileSize = float64(mapInfo.TileSize)
		}
		if mapInfo.MapSize.Width > 0 && mapInfo.MapSize.Height > 0 {
			mapW, mapH = mapInfo.MapSize.Width, mapInfo.MapSize.Height
		}
	}
	w := world.NewWorld(mapW, mapH, tileSize)

	if chars, err := client.GetCharacters(ctx); err != nil {
		log.Warn("character fetch failed, world starts empty", "error", err)
	} else {
		w.SetNPCs(chars.NPCs)
		log.Info("characters loaded", "npcs", len(chars.NPCs))
	}

	playerID := 0
	playerName := "Player"
	startX := w.PixelWidth() / 2
	startY := w.PixelHeight() / 2
	if player, err := client.GetPlayer(ctx); err != nil {
		log.Warn("player fetch failed, using defaults", "error", err)
	} else {
		playerID = player.ID
		if player.Name != "" {
			playerName = player.Name
		}
		if player.Position.X != 0 || player.Position.Y != 0 {
			startX, startY = w.ClampToBounds(player.Position.X, player.Position.Y, tileSize/2)
		}
	}

	g := game.NewGame(cfg, logger.WithComponent(log, "game"), client, w, playerID, playerName, startX, startY)

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Error("game loop exited", "error", err)
		os.Exit(1)
	}
}
