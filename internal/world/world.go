package world

import (
	"math"

	"willowmere/internal/character"
)

// World holds the walkable town map and the NPCs placed on it. Dimensions come
// from the backend map configuration; tile art and TMX layers are rendered
// elsewhere and do not affect movement.
type World struct {
	Width    int // in tiles
	Height   int // in tiles
	TileSize float64

	NPCs []*character.Character
}

// NewWorld creates a world of the given tile dimensions.
func NewWorld(width, height int, tileSize float64) *World {
	return &World{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
	}
}

// SetNPCs replaces the NPC registry with freshly fetched records.
func (w *World) SetNPCs(npcs []character.Character) {
	w.NPCs = make([]*character.Character, len(npcs))
	for i := range npcs {
		npc := npcs[i]
		w.NPCs[i] = &npc
	}
}

// PixelWidth returns the map width in world pixels.
func (w *World) PixelWidth() float64 {
	return float64(w.Width) * w.TileSize
}

// PixelHeight returns the map height in world pixels.
func (w *World) PixelHeight() float64 {
	return float64(w.Height) * w.TileSize
}

// ClampToBounds clamps a position so an entity of the given radius stays
// fully inside the map.
func (w *World) ClampToBounds(x, y, radius float64) (float64, float64) {
	x = math.Max(radius, math.Min(w.PixelWidth()-radius, x))
	y = math.Max(radius, math.Min(w.PixelHeight()-radius, y))
	return x, y
}

// CanMoveTo reports whether an entity of the given radius can occupy (x, y).
// NPCs block movement with a circular footprint of half a tile.
func (w *World) CanMoveTo(x, y, radius float64) bool {
	if x-radius < 0 || y-radius < 0 || x+radius > w.PixelWidth() || y+radius > w.PixelHeight() {
		return false
	}
	npcRadius := w.TileSize / 2
	for _, npc := range w.NPCs {
		dx := npc.Position.X - x
		dy := npc.Position.Y - y
		if math.Sqrt(dx*dx+dy*dy) < radius+npcRadius {
			return false
		}
	}
	return true
}

// NPCAt returns the NPC whose tile-sized footprint contains the world point,
// or nil if the point hits nobody.
func (w *World) NPCAt(x, y float64) *character.Character {
	half := w.TileSize / 2
	for _, npc := range w.NPCs {
		if x >= npc.Position.X-half && x < npc.Position.X+half &&
			y >= npc.Position.Y-half && y < npc.Position.Y+half {
			return npc
		}
	}
	return nil
}

// NearestNPC returns the closest NPC within maxDistance of (x, y), or nil.
func (w *World) NearestNPC(x, y, maxDistance float64) *character.Character {
	var nearest *character.Character
	nearestDistance := maxDistance

	for _, npc := range w.NPCs {
		dx := npc.Position.X - x
		dy := npc.Position.Y - y
		distance := math.Sqrt(dx*dx + dy*dy)
		if distance <= nearestDistance {
			nearest = npc
			nearestDistance = distance
		}
	}
	return nearest
}

// NPCByID returns the NPC with the given id, or nil.
func (w *World) NPCByID(id int) *character.Character {
	for _, npc := range w.NPCs {
		if npc.ID == id {
			return npc
		}
	}
	return nil
}
