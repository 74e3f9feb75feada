// internal/workers/guidance/check-program-eligibility/config.go
package checkprogrameligibility

import (
	"time"

	"guidance-workers/internal/common/config"
	"guidance-workers/internal/matching"
	"guidance-workers/internal/workers/guidance"
)

type Config struct {
	Timeout time.Duration
	Options matching.Options
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout: 30 * time.Second,
		Options: guidance.Options(cfg.Matching),
	}
}
