package game

import (
	"fmt"

	"willowmere/internal/character"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ActionMenu is the small popup shown after clicking an NPC, offering the
// Talk and Inspect actions. Only one action menu can be visible at a time.
type ActionMenu struct {
	ui *UISystem

	visible bool
	x, y    int
	npc     *character.Character
}

func NewActionMenu(ui *UISystem) *ActionMenu {
	return &ActionMenu{ui: ui}
}

// OpenAt shows the menu for an NPC near the given screen position, shifted if
// needed so it stays fully on screen. Any previous popup is replaced.
func (m *ActionMenu) OpenAt(npc *character.Character, screenX, screenY int) {
	if npc == nil {
		return
	}
	m.ui.charInfo.Close()
	cfg := m.ui.game.config
	w := cfg.UI.ActionMenu.Width
	h := cfg.UI.ActionMenu.Height
	m.x, m.y = clampRectToViewport(screenX, screenY, w, h, cfg.GetScreenWidth(), cfg.GetScreenHeight())
	m.npc = npc
	m.visible = true
}

func (m *ActionMenu) Close() {
	m.visible = false
	m.npc = nil
}

// HandleClick routes a screen click while the menu is visible. Clicks on a
// row trigger the action; clicks anywhere else dismiss the menu. Either way
// the click is consumed.
func (m *ActionMenu) HandleClick(x, y int) {
	row := m.rowAt(x, y)
	npc := m.npc
	m.Close()
	switch row {
	case 0:
		m.ui.chat.Open(npc)
	case 1:
		m.ui.charInfo.Open(npc)
	}
}

// rowAt returns 0 for the Talk row, 1 for the Inspect row, -1 for outside.
func (m *ActionMenu) rowAt(x, y int) int {
	cfg := m.ui.game.config.UI.ActionMenu
	if !isMouseHoveringBox(x, y, m.x, m.y, m.x+cfg.Width, m.y+cfg.Height) {
		return -1
	}
	return (y - m.y) / (cfg.Height / 2)
}

func (m *ActionMenu) Draw(screen *ebiten.Image) {
	cfg := m.ui.game.config.UI.ActionMenu
	drawFilledRect(screen, m.x, m.y, cfg.Width, cfg.Height, UIColorPanelBg)
	drawRectBorder(screen, m.x, m.y, cfg.Width, cfg.Height, 1, UIColorPanelBorder)

	rowH := cfg.Height / 2
	mouseX, mouseY := ebiten.CursorPosition()
	for i, label := range []string{"Talk", "Inspect"} {
		ry := m.y + i*rowH
		if isMouseHoveringBox(mouseX, mouseY, m.x, ry, m.x+cfg.Width, ry+rowH) {
			drawFilledRect(screen, m.x, ry, cfg.Width, rowH, UIColorRowHover)
		}
		drawCenteredDebugText(screen, label, m.x, ry, cfg.Width, rowH)
	}
}

// CharInfoPopup shows an NPC's name, role and stats. Any input dismisses it.
type CharInfoPopup struct {
	ui *UISystem

	visible bool
	npc     *character.Character
}

func NewCharInfoPopup(ui *UISystem) *CharInfoPopup {
	return &CharInfoPopup{ui: ui}
}

func (p *CharInfoPopup) Open(npc *character.Character) {
	if npc == nil {
		return
	}
	p.npc = npc
	p.visible = true
}

func (p *CharInfoPopup) Close() {
	p.visible = false
	p.npc = nil
}

// Lines renders the stat sheet. Missing numeric stats show as N/A; the
// relationship line only appears when the backend sent one.
func (p *CharInfoPopup) Lines() []string {
	if p.npc == nil {
		return nil
	}
	lines := []string{
		p.npc.Name,
		"Role: " + orUnknown(p.npc.Role),
		"Level: " + statValue(p.npc.Stats.Level),
		"Health: " + statValue(p.npc.Stats.Health),
	}
	if p.npc.Stats.Relationship != nil {
		lines = append(lines, fmt.Sprintf("Relationship: %d", *p.npc.Stats.Relationship))
	}
	return lines
}

func statValue(v *int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *v)
}

func orUnknown(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (p *CharInfoPopup) Draw(screen *ebiten.Image) {
	cfg := p.ui.game.config
	w := cfg.UI.CharInfo.Width
	h := cfg.UI.CharInfo.Height
	x := (cfg.GetScreenWidth() - w) / 2
	y := (cfg.GetScreenHeight() - h) / 2

	drawFilledRect(screen, x, y, w, h, UIColorPanelBg)
	drawRectBorder(screen, x, y, w, h, 2, UIColorPanelBorder)
	for i, line := range p.Lines() {
		ebitenutil.DebugPrintAt(screen, line, x+12, y+10+i*debugTextCharHeight)
	}
}
