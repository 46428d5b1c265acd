package game

import "testing"

func TestCameraFollowsPlayerCentered(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.playerX, g.playerY = 960, 960
	g.followPlayer()

	wantX := 960 - float64(g.config.GetScreenWidth())/2
	wantY := 960 - float64(g.config.GetScreenHeight())/2
	if g.camera.X != wantX || g.camera.Y != wantY {
		t.Errorf("camera = (%v,%v), want (%v,%v)", g.camera.X, g.camera.Y, wantX, wantY)
	}
}

func TestCameraClampedAtMapEdges(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})

	g.playerX, g.playerY = 0, 0
	g.followPlayer()
	if g.camera.X != 0 || g.camera.Y != 0 {
		t.Errorf("camera should clamp at origin, got (%v,%v)", g.camera.X, g.camera.Y)
	}

	g.playerX, g.playerY = g.world.PixelWidth(), g.world.PixelHeight()
	g.followPlayer()
	maxX := g.world.PixelWidth() - float64(g.config.GetScreenWidth())
	maxY := g.world.PixelHeight() - float64(g.config.GetScreenHeight())
	if g.camera.X != maxX || g.camera.Y != maxY {
		t.Errorf("camera should clamp at far edge, got (%v,%v) want (%v,%v)", g.camera.X, g.camera.Y, maxX, maxY)
	}
}

func TestScreenWorldRoundTrip(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.playerX, g.playerY = 960, 960
	g.followPlayer()

	wx, wy := g.ScreenToWorld(120, 80)
	sx, sy := g.WorldToScreen(wx, wy)
	if sx != 120 || sy != 80 {
		t.Errorf("round trip gave (%d,%d), want (120,80)", sx, sy)
	}
}
