package game

import (
	"fmt"
	"image/color"

	"willowmere/internal/items"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const inventoryPanelMargin = 16

// InventorySlot is one cell of the inventory grid. Empty slots keep their
// index so click handling stays uniform.
type InventorySlot struct {
	Index int
	Empty bool
	Item  *items.Snapshot
}

// InventoryPanel shows the player's items in a fixed grid on the left side of
// the screen. Contents are fetched from the backend every time the panel
// opens; the last fetched snapshot stays cached across close/open so the grid
// is never blank while a refresh is in flight.
type InventoryPanel struct {
	ui *UISystem

	open     bool
	fetching bool
	slots    []InventorySlot

	// Item info popup, anchored near the clicked slot
	infoOpen bool
	infoSlot int
	infoX    int
	infoY    int
}

func NewInventoryPanel(ui *UISystem) *InventoryPanel {
	p := &InventoryPanel{ui: ui}
	p.setInventory(nil)
	return p
}

// Open shows the panel and starts a background refresh. Opening the inventory
// closes the chat panel: the two modal surfaces never overlap.
func (p *InventoryPanel) Open() {
	if p.open {
		return
	}
	if p.ui.chat.open {
		p.ui.chat.Close()
	}
	p.ui.actionMenu.Close()
	p.ui.charInfo.Close()
	p.open = true
	p.infoOpen = false
	p.refresh()
}

// Close hides the panel. Cached slots are kept for the next open.
func (p *InventoryPanel) Close() {
	p.open = false
	p.infoOpen = false
}

func (p *InventoryPanel) Toggle() {
	if p.open {
		p.Close()
	} else {
		p.Open()
	}
}

// refresh re-fetches the player record. On failure the grid falls back to all
// empty slots so a dead backend never leaves stale data on screen.
func (p *InventoryPanel) refresh() {
	if p.fetching {
		return
	}
	p.fetching = true
	g := p.ui.game
	g.runJob(func() func(*Game) {
		player, err := g.backend.GetPlayer(g.requestContext())
		return func(g *Game) {
			inv := g.ui.inventory
			inv.fetching = false
			if err != nil {
				g.logger.Error("inventory fetch failed", "error", err)
				inv.setInventory(nil)
				return
			}
			inv.setInventory(player.Inventory)
		}
	})
}

// setInventory maps the fetched item list onto the fixed slot grid. Items
// beyond the grid capacity are dropped; items with no remaining quantity
// leave their slot empty.
func (p *InventoryPanel) setInventory(inv []items.Snapshot) {
	maxSlots := p.ui.game.config.UI.Inventory.MaxSlots
	slots := make([]InventorySlot, maxSlots)
	for i := range slots {
		slots[i] = InventorySlot{Index: i, Empty: true}
	}
	for i := range inv {
		if i >= maxSlots {
			break
		}
		if inv[i].Quantity <= 0 {
			continue
		}
		item := inv[i]
		slots[i] = InventorySlot{Index: i, Empty: false, Item: &item}
	}
	p.slots = slots
	if p.infoOpen && (p.infoSlot >= len(slots) || slots[p.infoSlot].Empty) {
		p.infoOpen = false
	}
}

// ShowItemInfo opens the item popup for a slot. Empty slots dismiss any open
// popup instead.
func (p *InventoryPanel) ShowItemInfo(slotIndex int) {
	p.infoOpen = false
	if !p.open || slotIndex < 0 || slotIndex >= len(p.slots) || p.slots[slotIndex].Empty {
		return
	}
	sx, sy, sw, _ := p.slotRect(slotIndex)
	popupW, popupH := p.infoSize(p.slots[slotIndex].Item)
	x, y := clampRectToViewport(sx+sw+4, sy,
		popupW, popupH,
		p.ui.game.config.GetScreenWidth(), p.ui.game.config.GetScreenHeight())
	p.infoOpen = true
	p.infoSlot = slotIndex
	p.infoX = x
	p.infoY = y
}

// panelRect is the panel's screen rectangle: the left side of the screen,
// roughly a third of its width.
func (p *InventoryPanel) panelRect() (x, y, w, h int) {
	cfg := p.ui.game.config
	w = cfg.GetScreenWidth() * 35 / 100
	h = cfg.GetScreenHeight() - 2*inventoryPanelMargin
	return inventoryPanelMargin, inventoryPanelMargin, w, h
}

// slotRect is a slot's screen rectangle inside the panel grid.
func (p *InventoryPanel) slotRect(slotIndex int) (x, y, w, h int) {
	cfg := p.ui.game.config.UI.Inventory
	px, py, _, _ := p.panelRect()
	col := slotIndex % cfg.Columns
	row := slotIndex / cfg.Columns
	gridX := px + 12
	gridY := py + 12 + debugTextCharHeight + 8
	return gridX + col*(cfg.SlotSize+4), gridY + row*(cfg.SlotSize+4), cfg.SlotSize, cfg.SlotSize
}

func (p *InventoryPanel) infoSize(item *items.Snapshot) (w, h int) {
	lines := p.infoLines(item)
	w = 0
	for _, line := range lines {
		if lw := debugTextWidth(line); lw > w {
			w = lw
		}
	}
	return w + 16, len(lines)*debugTextCharHeight + 12
}

func (p *InventoryPanel) infoLines(item *items.Snapshot) []string {
	lines := []string{item.Name}
	if item.Type != "" {
		lines = append(lines, "Type: "+item.Type)
	}
	if item.Tradable {
		lines = append(lines, fmt.Sprintf("Price: %d", item.Price))
	} else {
		lines = append(lines, "Not tradable")
	}
	for stat, amount := range item.Effect {
		lines = append(lines, fmt.Sprintf("%s %+d", stat, amount))
	}
	if item.Description != "" {
		lines = append(lines, wrapText(item.Description, 36)...)
	}
	return lines
}

// iconColor derives a stable placeholder tint from the item's icon sheet
// frame until real sheet rendering lands.
func (p *InventoryPanel) iconColor(item *items.Snapshot) color.RGBA {
	cfg := p.ui.game.config.UI.Inventory
	frame := item.IconFrame(cfg.IconSheetWidth, cfg.IconCellSize)
	return color.RGBA{
		R: uint8(60 + (frame*37)%160),
		G: uint8(60 + (frame*61)%160),
		B: uint8(60 + (frame*13)%160),
		A: 255,
	}
}

func (p *InventoryPanel) Draw(screen *ebiten.Image) {
	px, py, pw, ph := p.panelRect()
	drawFilledRect(screen, px, py, pw, ph, UIColorPanelBg)
	drawRectBorder(screen, px, py, pw, ph, 2, UIColorPanelBorder)

	title := "Inventory"
	if p.fetching {
		title = "Inventory (loading...)"
	}
	ebitenutil.DebugPrintAt(screen, title, px+12, py+8)

	mouseX, mouseY := ebiten.CursorPosition()
	for i := range p.slots {
		sx, sy, sw, sh := p.slotRect(i)
		bg := UIColorSlotBg
		if isMouseHoveringBox(mouseX, mouseY, sx, sy, sx+sw, sy+sh) {
			bg = UIColorSlotHover
		}
		drawFilledRect(screen, sx, sy, sw, sh, bg)
		drawRectBorder(screen, sx, sy, sw, sh, 1, UIColorPanelBorder)

		slot := p.slots[i]
		if slot.Empty {
			continue
		}
		drawFilledRect(screen, sx+6, sy+6, sw-12, sh-12, p.iconColor(slot.Item))
		if slot.Item.Quantity > 1 {
			qty := fmt.Sprintf("%d", slot.Item.Quantity)
			ebitenutil.DebugPrintAt(screen, qty, sx+sw-debugTextWidth(qty)-2, sy+sh-debugTextCharHeight)
		}
	}

	if p.infoOpen {
		p.drawItemInfo(screen)
	}
}

func (p *InventoryPanel) drawItemInfo(screen *ebiten.Image) {
	if p.infoSlot >= len(p.slots) || p.slots[p.infoSlot].Empty {
		return
	}
	item := p.slots[p.infoSlot].Item
	w, h := p.infoSize(item)
	drawFilledRect(screen, p.infoX, p.infoY, w, h, UIColorPanelBg)
	drawRectBorder(screen, p.infoX, p.infoY, w, h, 1, UIColorPanelBorder)
	for i, line := range p.infoLines(item) {
		ebitenutil.DebugPrintAt(screen, line, p.infoX+8, p.infoY+6+i*debugTextCharHeight)
	}
}
