package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/rentadmin/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero-value
// fields are treated as absent so a partial config file only overrides the
// keys it names.
type JsonConfig struct {
	APIBaseURL      string `json:"api_base_url"`
	TokenFile       string `json:"token_file"`
	DefaultPageSize int    `json:"default_page_size"`
	LogBackend      string `json:"log_backend"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given no JSON is
// loaded. Read or unmarshal errors panic, intended usage is
// defaults -> parseJson -> parseFlags at process start.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.DefaultPageSize > 0 {
		cfg.DefaultPageSize = jc.DefaultPageSize
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
}
