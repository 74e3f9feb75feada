// internal/workers/notification/send-recommendation/config.go
package sendrecommendation

import (
	"time"

	"guidance-workers/internal/common/config"
)

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	AWSRegion    string
	SMSPriority  string
	Timeout      time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	priority := cfg.Notifications.SMS.PriorityThreshold
	if priority == "" {
		priority = "high"
	}
	return &Config{
		EmailEnabled: cfg.Notifications.Email.Enabled,
		SMSEnabled:   cfg.Notifications.SMS.Enabled,
		FromEmail:    cfg.Notifications.Email.FromEmail,
		AWSRegion:    cfg.Notifications.AWS.Region,
		SMSPriority:  priority,
		Timeout:      30 * time.Second,
	}
}
