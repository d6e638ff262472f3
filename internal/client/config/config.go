package config

// Config holds runtime settings for the admin CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - TokenFile: path of the file the bearer token is persisted in.
//   - DefaultPageSize: rows per page a fresh screen starts with.
//   - LogBackend: "zap" or "slog".
type Config struct {
	APIBaseURL      string
	TokenFile       string
	DefaultPageSize int
	LogBackend      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.TokenFile = "admin.token"
	c.DefaultPageSize = 5
	c.LogBackend = "zap"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
