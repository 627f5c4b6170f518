package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ziadkadry99/cosmic-code/internal/config"
	"github.com/ziadkadry99/cosmic-code/internal/db"
	"github.com/ziadkadry99/cosmic-code/internal/launches"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `cosmic init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	if verbose {
		log.Printf("config: loaded %s (port=%d, particles=%d, wrap=%s)",
			cfgFile, cfg.Server.Port, cfg.Particles.Count, cfg.Particles.Wrap)
	}
	return cfg, nil
}

// openLaunchStore opens the launch log under the configured data directory.
func openLaunchStore(cfg *config.Config) (*launches.Store, *db.DB, error) {
	dbPath := filepath.Join(cfg.DataDir, "cosmic.db")
	database, err := db.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return launches.NewStore(database), database, nil
}

// seedOrClock returns seed, or a clock-derived seed when seed is zero.
func seedOrClock(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}
