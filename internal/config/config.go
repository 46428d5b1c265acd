package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all client configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	World    WorldConfig    `yaml:"world"`
	Movement MovementConfig `yaml:"movement"`
	Backend  BackendConfig  `yaml:"backend"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	TileSize  int `yaml:"tile_size"`
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`
}

type MovementConfig struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	InteractionRange float64 `yaml:"interaction_range"`
}

type BackendConfig struct {
	BaseURL               string `yaml:"base_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

type UIConfig struct {
	Inventory  InventoryConfig  `yaml:"inventory"`
	Chat       ChatConfig       `yaml:"chat"`
	ActionMenu ActionMenuConfig `yaml:"action_menu"`
	CharInfo   CharInfoConfig   `yaml:"char_info"`
}

type InventoryConfig struct {
	MaxSlots       int `yaml:"max_slots"`
	Columns        int `yaml:"columns"`
	SlotSize       int `yaml:"slot_size"`
	IconCellSize   int `yaml:"icon_cell_size"`
	IconSheetWidth int `yaml:"icon_sheet_width"`
}

type ChatConfig struct {
	PanelWidth     int `yaml:"panel_width"`
	PanelHeight    int `yaml:"panel_height"`
	ViewportHeight int `yaml:"viewport_height"`
	LineHeight     int `yaml:"line_height"`
	MaxInputChars  int `yaml:"max_input_chars"`
}

type ActionMenuConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CharInfoConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns a configuration with every field set to its fallback value.
func Default() *Config {
	var config Config
	config.applyDefaults()
	return &config
}

// applyDefaults fills in zero-valued fields with usable fallbacks so a sparse
// config file still produces a runnable client.
func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 960
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 640
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Willowmere"
	}
	if c.World.TileSize <= 0 {
		c.World.TileSize = 32
	}
	if c.World.MapWidth <= 0 {
		c.World.MapWidth = 60
	}
	if c.World.MapHeight <= 0 {
		c.World.MapHeight = 60
	}
	if c.Movement.MoveSpeed <= 0 {
		c.Movement.MoveSpeed = 2.5
	}
	if c.Movement.InteractionRange <= 0 {
		c.Movement.InteractionRange = 64
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = "http://localhost:8000"
	}
	if c.Backend.RequestTimeoutSeconds <= 0 {
		c.Backend.RequestTimeoutSeconds = 15
	}
	if c.UI.Inventory.MaxSlots <= 0 {
		c.UI.Inventory.MaxSlots = 32
	}
	if c.UI.Inventory.Columns <= 0 {
		c.UI.Inventory.Columns = 8
	}
	if c.UI.Inventory.SlotSize <= 0 {
		c.UI.Inventory.SlotSize = 48
	}
	if c.UI.Inventory.IconCellSize <= 0 {
		c.UI.Inventory.IconCellSize = 32
	}
	if c.UI.Inventory.IconSheetWidth <= 0 {
		c.UI.Inventory.IconSheetWidth = 512
	}
	if c.UI.Chat.PanelWidth <= 0 {
		c.UI.Chat.PanelWidth = 520
	}
	if c.UI.Chat.PanelHeight <= 0 {
		c.UI.Chat.PanelHeight = 360
	}
	if c.UI.Chat.ViewportHeight <= 0 {
		c.UI.Chat.ViewportHeight = 252
	}
	if c.UI.Chat.LineHeight <= 0 {
		c.UI.Chat.LineHeight = 16
	}
	if c.UI.Chat.MaxInputChars <= 0 {
		c.UI.Chat.MaxInputChars = 240
	}
	if c.UI.ActionMenu.Width <= 0 {
		c.UI.ActionMenu.Width = 120
	}
	if c.UI.ActionMenu.Height <= 0 {
		c.UI.ActionMenu.Height = 64
	}
	if c.UI.CharInfo.Width <= 0 {
		c.UI.CharInfo.Width = 220
	}
	if c.UI.CharInfo.Height <= 0 {
		c.UI.CharInfo.Height = 140
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTileSize() float64 {
	return float64(c.World.TileSize)
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetInteractionRange() float64 {
	return c.Movement.InteractionRange
}

func (c *Config) GetRequestTimeout() time.Duration {
	return time.Duration(c.Backend.RequestTimeoutSeconds) * time.Second
}
