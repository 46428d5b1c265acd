package game

type queuedClick struct {
	x, y int
	at   int64
}

// Clicks older than this are stale and dropped.
const clickBufferMs = 500

// consumeLeftClick consumes the oldest queued left-click (no bounds check).
func (g *Game) consumeLeftClick() bool {
	if len(g.mouseLeftClicks) == 0 {
		return false
	}
	click := g.mouseLeftClicks[0]
	g.mouseLeftClicks = g.mouseLeftClicks[1:]
	g.mouseLeftClickX, g.mouseLeftClickY = click.x, click.y
	g.mouseLeftClickAt = click.at
	return true
}

// consumeLeftClickIn consumes the oldest queued left-click inside the bounds.
// Bounds are inclusive-exclusive: [x1,x2) and [y1,y2).
func (g *Game) consumeLeftClickIn(x1, y1, x2, y2 int) bool {
	for i, click := range g.mouseLeftClicks {
		if click.x >= x1 && click.x < x2 && click.y >= y1 && click.y < y2 {
			g.mouseLeftClicks = append(g.mouseLeftClicks[:i], g.mouseLeftClicks[i+1:]...)
			g.mouseLeftClickX, g.mouseLeftClickY = click.x, click.y
			g.mouseLeftClickAt = click.at
			return true
		}
	}
	return false
}

func (g *Game) queueLeftClick(x, y int, at int64) {
	g.mouseLeftClicks = append(g.mouseLeftClicks, queuedClick{x: x, y: y, at: at})
}

func (g *Game) pruneClickQueue(now int64) {
	if len(g.mouseLeftClicks) == 0 {
		return
	}
	keep := g.mouseLeftClicks[:0]
	for _, click := range g.mouseLeftClicks {
		if now-click.at <= clickBufferMs {
			keep = append(keep, click)
		}
	}
	g.mouseLeftClicks = keep
}
