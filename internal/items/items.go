package items

import (
	"encoding/json"
	"strings"
)

// Snapshot is an immutable view of one inventory entry at fetch time.
// The panel owns it for one display cycle and replaces it wholesale on refresh.
type Snapshot struct {
	ID          int
	Name        string
	Type        string
	Tradable    bool
	Description string
	Price       int
	Effect      map[string]int
	Quantity    int
	IconPos     []int
}

// rawSnapshot mirrors the backend's item payload. The backend emits field names
// in either capitalization depending on code path, so decoding normalizes both
// into the canonical Snapshot before anything reaches the UI layer.
type rawSnapshot map[string]json.RawMessage

// UnmarshalJSON accepts both "Name" and "name" style keys.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	lookup := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		lookup[strings.ToLower(key)] = value
	}

	decode := func(key string, dst interface{}) {
		if value, ok := lookup[key]; ok {
			// Malformed individual fields degrade to their zero value
			_ = json.Unmarshal(value, dst)
		}
	}

	decode("id", &s.ID)
	decode("name", &s.Name)
	decode("type", &s.Type)
	decode("tradable", &s.Tradable)
	decode("description", &s.Description)
	decode("quantity", &s.Quantity)
	decode("iconpos", &s.IconPos)
	decode("icon_pos", &s.IconPos)
	decode("effect", &s.Effect)

	// Price may arrive as int or float
	var price float64
	decode("price", &price)
	s.Price = int(price)

	return nil
}

// IconFrame computes the sprite sheet frame index for an icon coordinate pair.
// The sheet is indexed row-major: frame = row*(sheetWidth/cellSize) + col.
// Missing or short coordinate data defaults to frame 0.
func (s *Snapshot) IconFrame(sheetWidth, cellSize int) int {
	return IconFrame(s.IconPos, sheetWidth, cellSize)
}

// IconFrame is the standalone form of Snapshot.IconFrame.
func IconFrame(iconPos []int, sheetWidth, cellSize int) int {
	if len(iconPos) < 2 || cellSize <= 0 || sheetWidth < cellSize {
		return 0
	}
	col, row := iconPos[0], iconPos[1]
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	perRow := sheetWidth / cellSize
	return row*perRow + col
}
