package main

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr           string `json:"addr" env:"REVERSI_ADDR" envDefault:":8080"`
	TickIntervalMs int    `json:"tick_interval_ms" env:"REVERSI_TICK_INTERVAL_MS" envDefault:"50"`
	LogMoves       bool   `json:"log_moves" env:"REVERSI_LOG_MOVES" envDefault:"false"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		TickIntervalMs: 50,
		LogMoves:       false,
	}
}

// LoadConfig applies environment overrides on top of the defaults.
func LoadConfig() Config {
	config := DefaultConfig()
	if err := env.Parse(&config); err != nil {
		log.Printf("[backend] config env parse failed, using defaults: %v", err)
		return DefaultConfig()
	}
	return config
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
