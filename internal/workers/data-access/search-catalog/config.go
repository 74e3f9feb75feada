// internal/workers/data-access/search-catalog/config.go
package searchcatalog

import (
	"time"

	"guidance-workers/internal/common/config"
)

type Config struct {
	Timeout      time.Duration
	CareerIndex  string
	ProgramIndex string
	CacheTTL     time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:      30 * time.Second,
		CareerIndex:  cfg.Catalog.CareerIndex,
		ProgramIndex: cfg.Catalog.ProgramIndex,
		CacheTTL:     time.Duration(cfg.Catalog.CacheTTL) * time.Second,
	}
}
