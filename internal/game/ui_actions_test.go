package game

import (
	"testing"

	"willowmere/internal/character"
)

func TestActionMenuClampedToViewport(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	npc := testNPC(1, "Mira")
	screenW := g.config.GetScreenWidth()
	screenH := g.config.GetScreenHeight()

	g.ui.actionMenu.OpenAt(npc, screenW-5, screenH-5)

	m := g.ui.actionMenu
	cfg := g.config.UI.ActionMenu
	if m.x+cfg.Width > screenW || m.y+cfg.Height > screenH {
		t.Errorf("menu at (%d,%d) escapes the %dx%d viewport", m.x, m.y, screenW, screenH)
	}
	if m.x < 0 || m.y < 0 {
		t.Errorf("menu at (%d,%d) has negative origin", m.x, m.y)
	}
}

func TestActionMenuTalkOpensChat(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	npc := testNPC(1, "Mira")

	g.ui.actionMenu.OpenAt(npc, 100, 100)
	m := g.ui.actionMenu
	// Click inside the top row
	m.HandleClick(m.x+5, m.y+5)

	if m.visible {
		t.Error("menu should close after choosing an action")
	}
	if !g.ui.chat.open || g.ui.chat.npc.ID != 1 {
		t.Error("talk should open the chat with the menu's NPC")
	}
}

func TestActionMenuInspectOpensCharInfo(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	npc := testNPC(1, "Mira")

	g.ui.actionMenu.OpenAt(npc, 100, 100)
	m := g.ui.actionMenu
	// Click inside the bottom row
	m.HandleClick(m.x+5, m.y+g.config.UI.ActionMenu.Height-5)

	if m.visible {
		t.Error("menu should close after choosing an action")
	}
	if !g.ui.charInfo.visible {
		t.Error("inspect should open the char info popup")
	}
	if g.ui.chat.open {
		t.Error("inspect must not open the chat")
	}
}

func TestActionMenuOutsideClickDismisses(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	npc := testNPC(1, "Mira")

	g.ui.actionMenu.OpenAt(npc, 100, 100)
	g.ui.actionMenu.HandleClick(5, 5)

	if g.ui.actionMenu.visible {
		t.Error("clicking outside should dismiss the menu")
	}
	if g.ui.chat.open || g.ui.charInfo.visible {
		t.Error("outside click must not trigger an action")
	}
}

func TestCharInfoLinesFullStats(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.ui.charInfo.Open(testNPC(1, "Mira"))

	lines := g.ui.charInfo.Lines()
	want := []string{"Mira", "Role: Villager", "Level: 3", "Health: 80", "Relationship: 10"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCharInfoLinesMissingStats(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	npc := &character.Character{ID: 9, Name: "Stranger"}
	g.ui.charInfo.Open(npc)

	lines := g.ui.charInfo.Lines()
	want := []string{"Stranger", "Role: N/A", "Level: N/A", "Health: N/A"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v, want %v (no relationship line)", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCharInfoOpenNilNPC(t *testing.T) {
	g := newTestGame(t, &fakeBackend{})
	g.ui.charInfo.Open(nil)
	if g.ui.charInfo.visible {
		t.Error("nil NPC should not open the popup")
	}
}
