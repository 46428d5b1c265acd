package game

import (
	"context"
	"log/slog"
	"time"

	"willowmere/internal/api"
	"willowmere/internal/config"
	"willowmere/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Backend is the slice of the api client the scene needs. Narrowed to an
// interface so tests can run against a stub.
type Backend interface {
	GetPlayer(ctx context.Context) (*api.PlayerData, error)
	Chat(ctx context.Context, npcID int, message string) (string, error)
	CloseChat(ctx context.Context, npcID, playerID int) error
}

// Game is the ebiten game for the town scene. All UI state is owned by the
// update loop goroutine; background network work re-enters through the jobs
// channel drained at the start of Update.
type Game struct {
	config  *config.Config
	logger  *slog.Logger
	backend Backend
	world   *world.World

	camera     Camera
	playerX    float64
	playerY    float64
	playerID   int
	playerName string

	ui    *UISystem
	input *InputHandler

	// Queued pointer clicks (see mouse.go)
	mouseLeftClicks  []queuedClick
	mouseLeftClickX  int
	mouseLeftClickY  int
	mouseLeftClickAt int64

	jobs chan func(*Game)
	// syncJobs makes runJob apply results inline. Test-only.
	syncJobs bool

	exitRequested bool
}

// NewGame assembles the scene. The world must already carry the fetched NPC
// records; startX/startY is the player spawn in world pixels.
func NewGame(cfg *config.Config, logger *slog.Logger, backend Backend, w *world.World, playerID int, playerName string, startX, startY float64) *Game {
	g := &Game{
		config:     cfg,
		logger:     logger,
		backend:    backend,
		world:      w,
		playerX:    startX,
		playerY:    startY,
		playerID:   playerID,
		playerName: playerName,
		jobs:       make(chan func(*Game), 64),
	}
	g.ui = NewUISystem(g)
	g.input = NewInputHandler(g)
	g.followPlayer()
	return g
}

// runJob executes job off the update loop and queues the returned apply
// closure for the next Update. A nil apply means the job had no UI effect
// (fire-and-forget calls).
func (g *Game) runJob(job func() func(*Game)) {
	if g.syncJobs {
		if apply := job(); apply != nil {
			apply(g)
		}
		return
	}
	go func() {
		if apply := job(); apply != nil {
			g.jobs <- apply
		}
	}()
}

// drainJobs applies completed network results to UI state.
func (g *Game) drainJobs() {
	for {
		select {
		case apply := <-g.jobs:
			apply(g)
		default:
			return
		}
	}
}

func (g *Game) updateMouseState() {
	now := time.Now().UnixMilli()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.queueLeftClick(x, y, now)
	}
	g.pruneClickQueue(now)
}

func (g *Game) Update() error {
	if g.exitRequested {
		return ebiten.Termination
	}
	g.drainJobs()
	g.updateMouseState()
	g.input.HandleInput()
	g.followPlayer()
	return nil
}

// requestExit stops the run loop on the next update.
func (g *Game) requestExit() {
	g.exitRequested = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.ui.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// requestContext returns the context for a backend call issued by the scene.
func (g *Game) requestContext() context.Context {
	return context.Background()
}
