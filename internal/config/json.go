package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/apptrack/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file overwrite the running config.
type JsonConfig struct {
	DBPath   *string `json:"db_path"`
	LogLevel *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, no JSON is loaded.
// Read or unmarshal errors panic (caller should recover if desired), since a
// config file that was explicitly pointed at but cannot be used is a setup
// mistake, not a runtime condition.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
