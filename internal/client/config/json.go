package config

import (
	"encoding/json"
	"os"

	"github.com/engajamento/engaja/internal/flagx"
	"github.com/engajamento/engaja/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. Durations accept
// either "30s"-style strings or integer nanoseconds via timex.Duration.
type jsonConfig struct {
	ServerURL       string         `json:"server_url"`
	StorageDSN      string         `json:"storage_dsn"`
	HTTPTimeout     timex.Duration `json:"http_timeout"`
	InvalidStatuses []int          `json:"invalid_statuses"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config.
// No file flag means no JSON stage. Read or unmarshal failures panic; the
// config file is operator-provided and a broken one should stop startup.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.StorageDSN != "" {
		cfg.StorageDSN = jc.StorageDSN
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if len(jc.InvalidStatuses) > 0 {
		cfg.InvalidStatuses = mergeStatuses([]int{401}, jc.InvalidStatuses)
	}
}
