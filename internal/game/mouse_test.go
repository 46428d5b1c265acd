package game

import "testing"

func TestConsumeLeftClickIn(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.queueLeftClick(50, 50, 0)

	if g.consumeLeftClickIn(100, 100, 200, 200) {
		t.Error("click outside bounds must not be consumed")
	}
	if !g.consumeLeftClickIn(0, 0, 100, 100) {
		t.Error("click inside bounds should be consumed")
	}
	if g.mouseLeftClickX != 50 || g.mouseLeftClickY != 50 {
		t.Errorf("consumed position = (%d,%d), want (50,50)", g.mouseLeftClickX, g.mouseLeftClickY)
	}
	if g.consumeLeftClickIn(0, 0, 100, 100) {
		t.Error("a click is consumed at most once")
	}
}

func TestConsumeLeftClickInExclusiveUpperBound(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.queueLeftClick(100, 100, 0)

	if g.consumeLeftClickIn(0, 0, 100, 100) {
		t.Error("bounds are [x1,x2): a click at x2 is outside")
	}
	if !g.consumeLeftClickIn(100, 100, 101, 101) {
		t.Error("a click at x1 is inside")
	}
}

func TestConsumeLeftClickOrder(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.queueLeftClick(1, 1, 0)
	g.queueLeftClick(2, 2, 0)

	g.consumeLeftClick()
	if g.mouseLeftClickX != 1 {
		t.Errorf("oldest click first: got x=%d", g.mouseLeftClickX)
	}
	g.consumeLeftClick()
	if g.mouseLeftClickX != 2 {
		t.Errorf("second click next: got x=%d", g.mouseLeftClickX)
	}
	if g.consumeLeftClick() {
		t.Error("queue should be empty")
	}
}

func TestPruneClickQueueDropsStale(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.queueLeftClick(1, 1, 0)
	g.queueLeftClick(2, 2, 400)

	g.pruneClickQueue(600)

	if len(g.mouseLeftClicks) != 1 {
		t.Fatalf("expected 1 fresh click, got %d", len(g.mouseLeftClicks))
	}
	if g.mouseLeftClicks[0].x != 2 {
		t.Errorf("the fresh click should survive, got x=%d", g.mouseLeftClicks[0].x)
	}
}
