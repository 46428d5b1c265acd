package character

import (
	"encoding/json"
	"strings"
)

// Position is a world-pixel coordinate pair.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stats holds the displayable attributes of a character. Fields are pointers
// so the info popup can distinguish "absent" from zero: absent Level/Health
// render as "N/A" and an absent Relationship line is omitted entirely.
type Stats struct {
	Level        *int
	Health       *int
	Relationship *int
}

// UnmarshalJSON accepts both capitalizations of stat keys; the backend emits
// "Level"/"Health"/"Relationship" but older payloads used lowercase.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	lookup := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		lookup[strings.ToLower(key)] = value
	}

	decodeInt := func(key string) *int {
		value, ok := lookup[key]
		if !ok {
			return nil
		}
		var n int
		if err := json.Unmarshal(value, &n); err != nil {
			return nil
		}
		return &n
	}

	s.Level = decodeInt("level")
	s.Health = decodeInt("health")
	s.Relationship = decodeInt("relationship")
	return nil
}

// Character is the canonical record for both NPCs and the player,
// as served by /api/characters.
type Character struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Sprite   string   `json:"sprite"`
	Position Position `json:"position"`
	Stats    Stats    `json:"stats"`
}
