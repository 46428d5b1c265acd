package api

import (
	"encoding/json"

	"willowmere/internal/character"
	"willowmere/internal/items"
)

// PlayerData is the /api/player response: the player record plus the
// inventory list used by the inventory panel.
type PlayerData struct {
	character.Character
	Inventory []items.Snapshot `json:"-"`
}

// playerEnvelope captures the raw inventory field separately. The backend
// serves a list of item objects normally, but an empty inventory arrives as
// the string "Inventory is empty." rather than an empty array.
type playerEnvelope struct {
	character.Character
	Inventory json.RawMessage `json:"inventory"`
}

// UnmarshalJSON tolerates both inventory encodings.
func (p *PlayerData) UnmarshalJSON(data []byte) error {
	var env playerEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	p.Character = env.Character

	p.Inventory = nil
	if len(env.Inventory) > 0 {
		var list []items.Snapshot
		if err := json.Unmarshal(env.Inventory, &list); err == nil {
			p.Inventory = list
		}
	}
	return nil
}

// CharactersData is the /api/characters response.
type CharactersData struct {
	NPCs    []character.Character `json:"npcs"`
	Players []character.Character `json:"players"`
}

// MapInfo is the /api/map response. Tileset and TMX loading belong to the
// asset pipeline; the client only consumes the dimensions.
type MapInfo struct {
	MapFile  string   `json:"map_file"`
	Tilesets []string `json:"tilesets"`
	TileSize int      `json:"tile_size"`
	MapSize  MapSize  `json:"map_size"`
}

type MapSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ChatRequest is the /api/chat request body.
type ChatRequest struct {
	NPCID   int    `json:"npc_id"`
	Message string `json:"message"`
}

// ChatResponse is the /api/chat response body.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatCloseRequest is the /api/chat/close request body. The backend schedules
// conversation summarization in the background and the response is ignored.
type ChatCloseRequest struct {
	NPCID    int `json:"npc_id"`
	PlayerID int `json:"player_id"`
}

// HealthResponse is the /api/health response body.
type HealthResponse struct {
	Status        string `json:"status"`
	NPCsLoaded    int    `json:"npcs_loaded"`
	PlayersLoaded int    `json:"players_loaded"`
}
