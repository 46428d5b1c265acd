package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// UI color constants shared by the panels
var (
	UIColorPanelBg     = color.RGBA{30, 30, 60, 240}
	UIColorPanelBorder = color.RGBA{120, 120, 180, 255}
	UIColorSlotBg      = color.RGBA{20, 20, 40, 200}
	UIColorSlotHover   = color.RGBA{40, 40, 80, 220}
	UIColorRowHover    = color.RGBA{60, 120, 180, 200}
	UIColorPlayerText  = color.RGBA{140, 200, 255, 255}
	UIColorNPCText     = color.RGBA{240, 220, 140, 255}
)

// UISystem coordinates the scene's UI surfaces: the inventory panel, the
// modal chat panel, and the NPC action menu / info popup pair.
//
// Whether the scene is "modal" (player movement suppressed) is derived from
// component state through ModalOpen rather than tracked as separate flags.
type UISystem struct {
	game *Game

	inventory  *InventoryPanel
	actionMenu *ActionMenu
	charInfo   *CharInfoPopup
	chat       *ChatPanel
}

// NewUISystem creates the UI coordinator and its components.
func NewUISystem(g *Game) *UISystem {
	ui := &UISystem{game: g}
	ui.inventory = NewInventoryPanel(ui)
	ui.actionMenu = NewActionMenu(ui)
	ui.charInfo = NewCharInfoPopup(ui)
	ui.chat = NewChatPanel(ui)

	// A closed dialogue always triggers one summarization request. Failure is
	// logged and never blocks the transition.
	ui.chat.onClose = func(npcID int) {
		g.runJob(func() func(*Game) {
			if err := g.backend.CloseChat(g.requestContext(), npcID, g.playerID); err != nil {
				g.logger.Warn("chat close summarization failed", "npc_id", npcID, "error", err)
			}
			return nil
		})
	}
	return ui
}

// ModalOpen reports whether a modal surface is capturing movement input.
// The action menu and info popup are transient popups, not modals.
func (ui *UISystem) ModalOpen() bool {
	return ui.inventory.open || ui.chat.open
}

// PopupVisible reports whether the action menu or info popup is showing.
func (ui *UISystem) PopupVisible() bool {
	return ui.actionMenu.visible || ui.charInfo.visible
}

// Draw renders all UI surfaces. Popups render above the panels.
func (ui *UISystem) Draw(screen *ebiten.Image) {
	if ui.inventory.open {
		ui.inventory.Draw(screen)
	}
	if ui.chat.open {
		ui.chat.Draw(screen)
	}
	if ui.actionMenu.visible {
		ui.actionMenu.Draw(screen)
	}
	if ui.charInfo.visible {
		ui.charInfo.Draw(screen)
	}
}
