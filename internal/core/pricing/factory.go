package pricing

import (
	"fmt"
)

// SourceConfig selects where rate configuration comes from.
type SourceConfig struct {
	RateSource string `json:"rateSource"` // default, file
	ConfigPath string `json:"configPath"` // required when RateSource is file
}

// CreateRateProvider creates a rate provider based on configuration
func CreateRateProvider(cfg *SourceConfig) (RateProvider, error) {
	switch cfg.RateSource {
	case "default", "":
		return NewDefaultProvider(), nil
	case "file":
		if cfg.ConfigPath == "" {
			return nil, fmt.Errorf("rate source %q requires a config path", cfg.RateSource)
		}
		return NewFileProvider(cfg.ConfigPath), nil
	default:
		return nil, fmt.Errorf("unknown rate source: %s", cfg.RateSource)
	}
}
