package game

import "math"

// Camera is the top-left corner of the visible world rectangle, in world
// pixels. It follows the player and never shows space beyond the map edge.
type Camera struct {
	X, Y float64
}

// Follow centers the camera on the target, clamped to the map bounds.
func (g *Game) followPlayer() {
	screenW := float64(g.config.GetScreenWidth())
	screenH := float64(g.config.GetScreenHeight())

	g.camera.X = clampFloat(g.playerX-screenW/2, 0, math.Max(0, g.world.PixelWidth()-screenW))
	g.camera.Y = clampFloat(g.playerY-screenH/2, 0, math.Max(0, g.world.PixelHeight()-screenH))
}

// WorldToScreen converts a world position to screen coordinates.
func (g *Game) WorldToScreen(wx, wy float64) (int, int) {
	return int(wx - g.camera.X), int(wy - g.camera.Y)
}

// ScreenToWorld converts a screen position to world coordinates.
func (g *Game) ScreenToWorld(sx, sy int) (float64, float64) {
	return float64(sx) + g.camera.X, float64(sy) + g.camera.Y
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
