package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"willowmere/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL
	cfg.Backend.RequestTimeoutSeconds = 2

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(cfg, logger), server
}

func TestGetPlayer(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/player", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": 1, "name": "Aldric", "role": "Player",
			"position": {"x": 500, "y": 500},
			"inventory": [
				{"Quantity": 2, "Name": "Health Potion", "Price": 10, "IconPos": [0, 0]},
				{"quantity": 1, "name": "Wood Shield", "price": 25, "icon_pos": [3, 2]}
			]
		}`))
	}))

	player, err := client.GetPlayer(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, player.ID)
	assert.Equal(t, "Aldric", player.Name)
	require.Len(t, player.Inventory, 2)
	assert.Equal(t, "Health Potion", player.Inventory[0].Name)
	assert.Equal(t, 2, player.Inventory[0].Quantity)
	assert.Equal(t, "Wood Shield", player.Inventory[1].Name)
	assert.Equal(t, 25, player.Inventory[1].Price)
}

func TestGetPlayerEmptyInventoryString(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "name": "Aldric", "role": "Player", "inventory": "Inventory is empty."}`))
	}))

	player, err := client.GetPlayer(context.Background())
	require.NoError(t, err)
	assert.Empty(t, player.Inventory)
}

func TestGetCharacters(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/characters", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"npcs": [{"id": 101, "name": "Garrick", "role": "Merchant",
				"position": {"x": 320, "y": 320},
				"stats": {"Level": 5, "Health": 80, "Relationship": 30}}],
			"players": [{"id": 1, "name": "Aldric", "role": "Player"}]
		}`))
	}))

	chars, err := client.GetCharacters(context.Background())
	require.NoError(t, err)

	require.Len(t, chars.NPCs, 1)
	require.Len(t, chars.Players, 1)
	npc := chars.NPCs[0]
	assert.Equal(t, "Garrick", npc.Name)
	require.NotNil(t, npc.Stats.Relationship)
	assert.Equal(t, 30, *npc.Stats.Relationship)
}

func TestGetMap(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/map", r.URL.Path)
		_, _ = w.Write([]byte(`{"map_file": "/assets/map/world_map.tmx",
			"tilesets": ["/assets/map/base.png"],
			"tile_size": 32, "map_size": {"width": 60, "height": 60}}`))
	}))

	info, err := client.GetMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 32, info.TileSize)
	assert.Equal(t, 60, info.MapSize.Width)
	assert.Equal(t, 60, info.MapSize.Height)
}

func TestChat(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 101, req.NPCID)
		assert.Equal(t, "hello", req.Message)

		_, _ = w.Write([]byte(`{"reply": "Welcome!"}`))
	}))

	reply, err := client.Chat(context.Background(), 101, "hello")
	require.NoError(t, err)
	assert.Equal(t, "Welcome!", reply)
}

func TestChatServerError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Chat error"}`, http.StatusInternalServerError)
	}))

	_, err := client.Chat(context.Background(), 101, "hello")
	assert.Error(t, err)
}

func TestChatTransportError(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.Chat(context.Background(), 101, "hello")
	assert.Error(t, err)
}

func TestCloseChat(t *testing.T) {
	var got ChatCloseRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/close", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status": "accepted"}`))
	}))

	err := client.CloseChat(context.Background(), 101, 1)
	require.NoError(t, err)
	assert.Equal(t, 101, got.NPCID)
	assert.Equal(t, 1, got.PlayerID)
}

func TestHealth(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "healthy", "npcs_loaded": 3, "players_loaded": 1}`))
	}))

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 3, health.NPCsLoaded)
}
