// internal/workers/guidance/match-careers/config.go
package matchcareers

import (
	"time"

	"guidance-workers/internal/common/config"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/workers/guidance"
)

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
	Options  matching.Options
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout:  30 * time.Second,
		CacheTTL: time.Duration(cfg.Catalog.CacheTTL) * time.Second,
		Options:  guidance.Options(cfg.Matching),
	}
}
