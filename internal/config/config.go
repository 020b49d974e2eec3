package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	UI      UIConfig      `yaml:"ui"`
	Economy EconomyConfig `yaml:"economy"`
	Assets  AssetsConfig  `yaml:"assets"`
	Shops   []ShopConfig  `yaml:"shops"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type UIConfig struct {
	QuantityStep int `yaml:"quantity_step"` // vertical step of the sell quantity picker
	GridColumns  int `yaml:"grid_columns"`
	RowHeight    int `yaml:"row_height"`
	PanelWidth   int `yaml:"panel_width"`
}

type EconomyConfig struct {
	StartingMoney    int      `yaml:"starting_money"`
	MoneyName        string   `yaml:"money_name"`
	SellRatio        float64  `yaml:"sell_ratio"`
	StartingItems    []string `yaml:"starting_items"`
	StartingEquipped []string `yaml:"starting_equipped"`
}

type AssetsConfig struct {
	Items    string `yaml:"items"`
	Icons    string `yaml:"icons"`
	SaveFile string `yaml:"save_file"`
}

// ShopConfig describes one shop session: what it stocks and how it marks prices.
type ShopConfig struct {
	Key             string   `yaml:"key"`
	Name            string   `yaml:"name"`
	PriceMultiplier float64  `yaml:"price_multiplier"`
	Products        []string `yaml:"products"`
}

// Defaults applied by Validate when a value is left out of the file.
const (
	DefaultQuantityStep = 10
	DefaultSellRatio    = 0.2
	DefaultMoneyName    = "G"
	DefaultRowHeight    = 20
	DefaultPanelWidth   = 260
)

// LoadConfig loads the configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
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

// Validate fills in defaults and rejects values no shop session could run with.
func (c *Config) Validate() error {
	if c.UI.QuantityStep <= 0 {
		c.UI.QuantityStep = DefaultQuantityStep
	}
	if c.UI.GridColumns <= 0 {
		c.UI.GridColumns = 1
	}
	if c.UI.RowHeight <= 0 {
		c.UI.RowHeight = DefaultRowHeight
	}
	if c.UI.PanelWidth <= 0 {
		c.UI.PanelWidth = DefaultPanelWidth
	}
	if c.Economy.StartingMoney < 0 {
		return fmt.Errorf("economy.starting_money must not be negative, got %d", c.Economy.StartingMoney)
	}
	if c.Economy.SellRatio <= 0 {
		c.Economy.SellRatio = DefaultSellRatio
	}
	if c.Economy.MoneyName == "" {
		c.Economy.MoneyName = DefaultMoneyName
	}

	seen := make(map[string]bool, len(c.Shops))
	for i := range c.Shops {
		shop := &c.Shops[i]
		if shop.Key == "" {
			return fmt.Errorf("shops[%d]: missing key", i)
		}
		if seen[shop.Key] {
			return fmt.Errorf("shops[%d]: duplicate key %q", i, shop.Key)
		}
		seen[shop.Key] = true
		if shop.Name == "" {
			shop.Name = shop.Key
		}
		if shop.PriceMultiplier <= 0 {
			shop.PriceMultiplier = 1
		}
		if len(shop.Products) == 0 {
			return fmt.Errorf("shop %q: no products", shop.Key)
		}
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetShop returns the shop definition registered under key.
func (c *Config) GetShop(key string) (*ShopConfig, bool) {
	for i := range c.Shops {
		if c.Shops[i].Key == key {
			return &c.Shops[i], true
		}
	}
	return nil, false
}
