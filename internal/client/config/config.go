package config

import "time"

// Config holds runtime settings for the SkillSphere CLI.
//
// Fields:
//   - ServerURL: base URL of the backend REST API, including the /api prefix.
//   - DataDir: directory holding the local SQLite database.
//   - DatabaseFile: database file name inside DataDir.
//   - RequestTimeout: per-request timeout for backend calls.
//   - NotificationTTL: how long a toast notification stays visible.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL       string        `env:"SERVER_URL"`
	DataDir         string        `env:"DATA_DIR"`
	DatabaseFile    string        `env:"DATABASE_FILE"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL"`
	LogLevel        string        `env:"LOG_LEVEL"`
}

// EnvPrefix is prepended to every environment variable name read by parseEnv.
const EnvPrefix = "SKILLSPHERE_"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080/api"
	c.DataDir = "~/.skillsphere"
	c.DatabaseFile = "skillsphere.db"
	c.RequestTimeout = 10 * time.Second
	c.NotificationTTL = 3 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (optionally seeded from a .env file) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
