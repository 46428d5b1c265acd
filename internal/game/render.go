package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	tileColorLight = color.RGBA{86, 125, 70, 255}
	tileColorDark  = color.RGBA{74, 111, 60, 255}
	npcColor       = color.RGBA{200, 160, 60, 255}
	playerColor    = color.RGBA{70, 130, 200, 255}
)

// drawWorld renders the visible tile grid, NPC markers and the player.
func (g *Game) drawWorld(screen *ebiten.Image) {
	tile := int(g.world.TileSize)
	screenW := g.config.GetScreenWidth()
	screenH := g.config.GetScreenHeight()

	startCol := int(g.camera.X) / tile
	startRow := int(g.camera.Y) / tile
	endCol := (int(g.camera.X)+screenW)/tile + 1
	endRow := (int(g.camera.Y)+screenH)/tile + 1

	for row := startRow; row <= endRow && row < g.world.Height; row++ {
		for col := startCol; col <= endCol && col < g.world.Width; col++ {
			clr := tileColorLight
			if (row+col)%2 == 1 {
				clr = tileColorDark
			}
			x, y := g.WorldToScreen(float64(col*tile), float64(row*tile))
			drawFilledRect(screen, x, y, tile, tile, clr)
		}
	}

	half := tile / 2
	for _, npc := range g.world.NPCs {
		x, y := g.WorldToScreen(npc.Position.X, npc.Position.Y)
		if x < -tile || y < -tile || x > screenW+tile || y > screenH+tile {
			continue
		}
		drawFilledRect(screen, x-half, y-half, tile, tile, npcColor)
		drawRectBorder(screen, x-half, y-half, tile, tile, 1, color.Black)
		label := truncateText(npc.Name, 16)
		ebitenutil.DebugPrintAt(screen, label, x-debugTextWidth(label)/2, y-half-debugTextCharHeight)
	}

	px, py := g.WorldToScreen(g.playerX, g.playerY)
	drawFilledRect(screen, px-half, py-half, tile, tile, playerColor)
	drawRectBorder(screen, px-half, py-half, tile, tile, 1, color.White)

	if !g.ui.ModalOpen() {
		ebitenutil.DebugPrintAt(screen, "WASD: move  I: inventory  T: talk  Click NPC: actions  Esc: quit", 8, screenH-debugTextCharHeight-4)
	}
}
