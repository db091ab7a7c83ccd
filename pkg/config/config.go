package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ScraperConfig holds the settings every retailer driver and extractor
// reads. It is loaded once and passed by value; nothing mutates it after
// startup.
type ScraperConfig struct {
	Workers             string `yaml:"workers"`
	Headless            bool   `yaml:"headless"`
	AllowFoil           bool   `yaml:"allow_foil"`
	AllowOutOfStock     bool   `yaml:"allow_out_of_stock"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
	DecklistPath        string `yaml:"decklist_path"`
	OutputPath          string `yaml:"output_path"`
	HistoryDB           string `yaml:"history_db"`
}

// FetchTimeout returns the per-keyword fetch timeout as a duration,
// defaulting to 5 seconds when unset.
func (c ScraperConfig) FetchTimeout() time.Duration {
	if c.FetchTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// RetailerConfig holds settings specific to one storefront.
type RetailerConfig struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"`
}

// Config is the complete structure for the config.yml file.
type Config struct {
	Scraper   ScraperConfig `yaml:"scraper"`
	Retailers struct {
		F2F      RetailerConfig `yaml:"f2f"`
		WIZ      RetailerConfig `yaml:"wizards_tower"`
		Games401 RetailerConfig `yaml:"games_401"`
	} `yaml:"retailers"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
}

// LoadConfig reads and parses the YAML config file. A missing or broken
// config prevents any work from starting, so it is fatal.
func LoadConfig(filepath string) *Config {
	data, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Error unmarshalling config YAML: %v", err)
	}
	return &cfg
}
