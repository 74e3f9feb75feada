// internal/workers/assessment/summarize-grades/config.go
package summarizegrades

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
