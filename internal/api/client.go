package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"willowmere/internal/config"
)

// Client talks to the game backend. All methods are safe to call from worker
// goroutines; the client holds no mutable state beyond the http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a backend client from config.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.GetRequestTimeout(),
		},
		logger: logger,
	}
}

// Health probes /api/health. Used at startup; a failure is reported but the
// client still starts with an empty scene.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/api/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetPlayer fetches the player record and current inventory snapshot.
func (c *Client) GetPlayer(ctx context.Context) (*PlayerData, error) {
	var player PlayerData
	if err := c.getJSON(ctx, "/api/player", &player); err != nil {
		return nil, err
	}
	return &player, nil
}

// GetCharacters fetches all NPC and player records.
func (c *Client) GetCharacters(ctx context.Context) (*CharactersData, error) {
	var characters CharactersData
	if err := c.getJSON(ctx, "/api/characters", &characters); err != nil {
		return nil, err
	}
	return &characters, nil
}

// GetMap fetches the map configuration.
func (c *Client) GetMap(ctx context.Context) (*MapInfo, error) {
	var info MapInfo
	if err := c.getJSON(ctx, "/api/map", &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Chat sends one player message to an NPC and returns the reply text.
// Any transport error or non-2xx status is a failure.
func (c *Client) Chat(ctx context.Context, npcID int, message string) (string, error) {
	body, err := c.postJSON(ctx, "/api/chat", ChatRequest{NPCID: npcID, Message: message})
	if err != nil {
		return "", err
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse chat response: %w", err)
	}
	return chatResp.Reply, nil
}

// CloseChat signals that the dialogue with an NPC ended so the backend can
// summarize and persist conversation memory. The response body is ignored.
func (c *Client) CloseChat(ctx context.Context, npcID, playerID int) error {
	_, err := c.postJSON(ctx, "/api/chat/close", ChatCloseRequest{NPCID: npcID, PlayerID: playerID})
	return err
}

func (c *Client) getJSON(ctx context.Context, path string, dst interface{}) error {
	requestID := uuid.NewString()
	c.logger.Debug("backend request", "method", "GET", "path", path, "request_id", requestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s returned status %d: %s", path, resp.StatusCode, truncate(body))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	requestID := uuid.NewString()
	c.logger.Debug("backend request", "method", "POST", "path", path, "request_id", requestID)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("POST %s returned status %d: %s", path, resp.StatusCode, truncate(body))
	}
	return body, nil
}

func truncate(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
