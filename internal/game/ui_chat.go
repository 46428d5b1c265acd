package game

import (
	"image"
	"image/color"
	"strings"

	"willowmere/internal/character"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// chatFallbackReply is shown as an NPC line when the chat request fails.
const chatFallbackReply = "Failed to reach the server. Please try again."

type ChatSender int

const (
	SenderPlayer ChatSender = iota
	SenderNPC
)

type ChatMessage struct {
	Sender ChatSender
	Text   string
}

// ChatSession is the dialogue history with one NPC. Sessions outlive the
// panel: closing the chat keeps the history, and a reply that arrives after
// a close or an NPC switch still lands in the right session.
type ChatSession struct {
	NPCID        int
	Messages     []ChatMessage
	ScrollOffset int
}

// ChatPanel is the modal dialogue window. While open it captures all
// keyboard input and suppresses player movement.
type ChatPanel struct {
	ui *UISystem

	open          bool
	npc           *character.Character
	sessions      map[int]*ChatSession
	input         string
	awaitingReply bool

	// onClose fires exactly once per ended dialogue, with the NPC's id.
	onClose func(npcID int)
}

func NewChatPanel(ui *UISystem) *ChatPanel {
	return &ChatPanel{ui: ui, sessions: make(map[int]*ChatSession)}
}

func (p *ChatPanel) session(npcID int) *ChatSession {
	s, ok := p.sessions[npcID]
	if !ok {
		s = &ChatSession{NPCID: npcID}
		p.sessions[npcID] = s
	}
	return s
}

// Open starts or resumes a dialogue. Switching from another NPC ends that
// dialogue first. Opening the chat closes the inventory panel.
func (p *ChatPanel) Open(npc *character.Character) {
	if npc == nil {
		return
	}
	if p.open && p.npc != nil {
		if p.npc.ID == npc.ID {
			return
		}
		p.endDialogue()
	}
	if p.ui.inventory.open {
		p.ui.inventory.Close()
	}
	p.ui.actionMenu.Close()
	p.ui.charInfo.Close()

	p.open = true
	p.npc = npc
	p.input = ""
	p.snapToBottom(p.session(npc.ID))
}

// Close hides the panel and ends the current dialogue, if any.
func (p *ChatPanel) Close() {
	if !p.open {
		return
	}
	p.endDialogue()
	p.open = false
	p.input = ""
}

// endDialogue notifies the close hook for the current NPC. The session and
// its history are kept.
func (p *ChatPanel) endDialogue() {
	if p.npc == nil {
		return
	}
	npcID := p.npc.ID
	p.npc = nil
	if p.onClose != nil {
		p.onClose(npcID)
	}
}

// Send submits the typed message. Blank input is dropped without a network
// call. The player's line appears immediately; the NPC's reply (or the
// failure line) is appended when the request finishes.
func (p *ChatPanel) Send() {
	trimmed := strings.TrimSpace(p.input)
	if trimmed == "" {
		p.input = ""
		return
	}
	if p.awaitingReply || p.npc == nil {
		return
	}
	npcID := p.npc.ID
	p.appendMessage(npcID, SenderPlayer, trimmed)
	p.input = ""
	p.awaitingReply = true

	g := p.ui.game
	g.runJob(func() func(*Game) {
		reply, err := g.backend.Chat(g.requestContext(), npcID, trimmed)
		return func(g *Game) {
			chat := g.ui.chat
			chat.awaitingReply = false
			if err != nil {
				g.logger.Error("chat request failed", "npc_id", npcID, "error", err)
				chat.appendMessage(npcID, SenderNPC, chatFallbackReply)
				return
			}
			chat.appendMessage(npcID, SenderNPC, reply)
		}
	})
}

// appendMessage adds a line to an NPC's session by id, so a late reply never
// leaks into another dialogue. The viewport snaps to the newest line when the
// session is the one on screen.
func (p *ChatPanel) appendMessage(npcID int, sender ChatSender, text string) {
	s := p.session(npcID)
	s.Messages = append(s.Messages, ChatMessage{Sender: sender, Text: text})
	if p.open && p.npc != nil && p.npc.ID == npcID {
		p.snapToBottom(s)
	}
}

// AppendInput adds typed characters, capped at the configured input length.
func (p *ChatPanel) AppendInput(chars []rune) {
	maxChars := p.ui.game.config.UI.Chat.MaxInputChars
	for _, r := range chars {
		if r < ' ' && r != '\t' {
			continue
		}
		if len([]rune(p.input)) >= maxChars {
			return
		}
		p.input += string(r)
	}
}

func (p *ChatPanel) Backspace() {
	runes := []rune(p.input)
	if len(runes) > 0 {
		p.input = string(runes[:len(runes)-1])
	}
}

// Scroll moves the viewport by delta pixels. Positive scrolls down.
func (p *ChatPanel) Scroll(delta int) {
	if p.npc == nil {
		return
	}
	s := p.session(p.npc.ID)
	s.ScrollOffset = clampInt(s.ScrollOffset+delta, 0, p.maxScroll(s))
}

func (p *ChatPanel) snapToBottom(s *ChatSession) {
	s.ScrollOffset = p.maxScroll(s)
}

func (p *ChatPanel) maxScroll(s *ChatSession) int {
	return maxInt(0, p.contentHeight(s)-p.ui.game.config.UI.Chat.ViewportHeight)
}

func (p *ChatPanel) contentHeight(s *ChatSession) int {
	lineCount := 0
	for i := range s.Messages {
		lineCount += len(p.messageLines(&s.Messages[i]))
	}
	return lineCount * p.ui.game.config.UI.Chat.LineHeight
}

// messageLines wraps a message, prefixed with its speaker, into viewport
// width lines.
func (p *ChatPanel) messageLines(msg *ChatMessage) []string {
	prefix := "You: "
	if msg.Sender == SenderNPC {
		name := "???"
		if p.npc != nil {
			name = p.npc.Name
		}
		prefix = name + ": "
	}
	return wrapText(prefix+msg.Text, p.lineChars())
}

// lineChars is how many basicfont glyphs fit on one viewport line.
func (p *ChatPanel) lineChars() int {
	usable := p.ui.game.config.UI.Chat.PanelWidth - 32
	chars := usable / 7
	if chars < 8 {
		chars = 8
	}
	return chars
}

// panelRect anchors the panel to the bottom-right corner of the screen.
func (p *ChatPanel) panelRect() (x, y, w, h int) {
	cfg := p.ui.game.config
	w = cfg.UI.Chat.PanelWidth
	h = cfg.UI.Chat.PanelHeight
	return cfg.GetScreenWidth() - w - 16, cfg.GetScreenHeight() - h - 16, w, h
}

func (p *ChatPanel) Draw(screen *ebiten.Image) {
	px, py, pw, ph := p.panelRect()
	drawFilledRect(screen, px, py, pw, ph, UIColorPanelBg)
	drawRectBorder(screen, px, py, pw, ph, 2, UIColorPanelBorder)

	header := "Chat"
	if p.npc != nil {
		header = "Talking to " + p.npc.Name
	}
	ebitenutil.DebugPrintAt(screen, header, px+12, py+6)

	p.drawHistory(screen, px+12, py+6+debugTextCharHeight+4)
	p.drawInputBox(screen, px, py, pw, ph)
}

func (p *ChatPanel) drawHistory(screen *ebiten.Image, x, y int) {
	if p.npc == nil {
		return
	}
	cfg := p.ui.game.config.UI.Chat
	s := p.session(p.npc.ID)

	viewport := screen.SubImage(image.Rect(x, y, x+cfg.PanelWidth-24, y+cfg.ViewportHeight)).(*ebiten.Image)
	lineY := y - s.ScrollOffset
	for i := range s.Messages {
		msg := &s.Messages[i]
		clr := color.Color(UIColorPlayerText)
		if msg.Sender == SenderNPC {
			clr = UIColorNPCText
		}
		for _, line := range p.messageLines(msg) {
			if lineY+cfg.LineHeight >= y && lineY < y+cfg.ViewportHeight {
				drawColoredTextSegments(viewport, x, lineY, []coloredTextSegment{{text: line, color: clr}})
			}
			lineY += cfg.LineHeight
		}
	}
}

func (p *ChatPanel) drawInputBox(screen *ebiten.Image, px, py, pw, ph int) {
	boxH := debugTextCharHeight + 8
	boxY := py + ph - boxH - 8
	drawFilledRect(screen, px+8, boxY, pw-16, boxH, UIColorSlotBg)
	drawRectBorder(screen, px+8, boxY, pw-16, boxH, 1, UIColorPanelBorder)

	shown := p.input
	if p.awaitingReply {
		shown += " ..."
	} else {
		shown += "_"
	}
	// Keep the tail of long input visible
	maxVisible := (pw - 28) / debugTextCharWidth
	runes := []rune(shown)
	if len(runes) > maxVisible {
		shown = string(runes[len(runes)-maxVisible:])
	}
	ebitenutil.DebugPrintAt(screen, shown, px+14, boxY+4)
}
