package game

import (
	"math"

	"willowmere/internal/game/keytracker"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler routes keyboard and mouse input by scene mode: the open chat
// panel owns the keyboard outright, the inventory panel is next, then the
// transient popups, and finally world movement and interaction.
type InputHandler struct {
	game        *Game
	interactKey keytracker.KeyStateTracker
	typedChars  []rune
}

func NewInputHandler(g *Game) *InputHandler {
	return &InputHandler{game: g}
}

func (h *InputHandler) HandleInput() {
	g := h.game

	if g.ui.chat.open {
		h.handleChatInput()
		return
	}
	if g.ui.inventory.open {
		h.handleInventoryInput()
		return
	}
	if g.ui.charInfo.visible {
		h.handleCharInfoInput()
		return
	}
	if g.ui.actionMenu.visible {
		h.handleActionMenuInput()
		return
	}
	h.handleWorldInput()
}

// handleChatInput feeds the chat panel. Every key belongs to the text input
// while the panel is open, including space and movement keys.
func (h *InputHandler) handleChatInput() {
	g := h.game
	chat := g.ui.chat

	h.typedChars = ebiten.AppendInputChars(h.typedChars[:0])
	if len(h.typedChars) > 0 {
		chat.AppendInput(h.typedChars)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		chat.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		chat.Send()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		chat.Close()
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		chat.Scroll(-int(wheelY) * g.config.UI.Chat.LineHeight)
	}

	// The panel is modal; clicks never reach the world below it.
	for g.consumeLeftClick() {
	}
}

func (h *InputHandler) handleInventoryInput() {
	g := h.game
	inv := g.ui.inventory

	if inpututil.IsKeyJustPressed(ebiten.KeyI) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		inv.Close()
		return
	}

	for i := range inv.slots {
		sx, sy, sw, sh := inv.slotRect(i)
		if g.consumeLeftClickIn(sx, sy, sx+sw, sy+sh) {
			inv.ShowItemInfo(i)
			return
		}
	}
	// A click anywhere else dismisses the item popup but keeps the panel.
	if g.consumeLeftClick() {
		inv.infoOpen = false
	}
}

func (h *InputHandler) handleCharInfoInput() {
	g := h.game
	if g.consumeLeftClick() || anyKeyJustPressed() {
		g.ui.charInfo.Close()
	}
}

func (h *InputHandler) handleActionMenuInput() {
	g := h.game
	menu := g.ui.actionMenu

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		menu.Close()
		return
	}
	if g.consumeLeftClick() {
		menu.HandleClick(g.mouseLeftClickX, g.mouseLeftClickY)
	}
}

func (h *InputHandler) handleWorldInput() {
	g := h.game

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.requestExit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ui.inventory.Toggle()
		return
	}
	if h.interactKey.IsKeyJustPressed(ebiten.KeyT) {
		if npc := g.world.NearestNPC(g.playerX, g.playerY, g.config.GetInteractionRange()); npc != nil {
			g.ui.chat.Open(npc)
		}
		return
	}

	if g.consumeLeftClick() {
		if h.handleWorldClick(g.mouseLeftClickX, g.mouseLeftClickY) {
			return
		}
	}

	h.handleMovement()
}

// handleWorldClick opens the action menu for a clicked NPC. NPCs beyond the
// interaction range are ignored, same as the talk key. Reports whether the
// click hit an interactable NPC.
func (h *InputHandler) handleWorldClick(x, y int) bool {
	g := h.game
	wx, wy := g.ScreenToWorld(x, y)
	npc := g.world.NPCAt(wx, wy)
	if npc == nil {
		return false
	}
	dist := math.Hypot(npc.Position.X-g.playerX, npc.Position.Y-g.playerY)
	if dist > g.config.GetInteractionRange() {
		return false
	}
	g.ui.actionMenu.OpenAt(npc, x, y)
	return true
}

func (h *InputHandler) handleMovement() {
	g := h.game
	speed := g.config.GetMoveSpeed()

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += speed
	}
	if dx == 0 && dy == 0 {
		return
	}

	radius := g.config.GetTileSize() / 2
	// Axis-separated moves so the player slides along blocked directions
	if dx != 0 && g.world.CanMoveTo(g.playerX+dx, g.playerY, radius) {
		g.playerX += dx
	}
	if dy != 0 && g.world.CanMoveTo(g.playerX, g.playerY+dy, radius) {
		g.playerY += dy
	}
	g.playerX, g.playerY = g.world.ClampToBounds(g.playerX, g.playerY, radius)
}

func anyKeyJustPressed() bool {
	return len(inpututil.AppendJustPressedKeys(nil)) > 0
}
