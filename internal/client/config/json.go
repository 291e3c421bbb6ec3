package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/skillsphere/internal/flagx"
	"github.com/dmitrijs2005/skillsphere/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Zero values mean "not set" and leave the runtime Config untouched.
type JsonConfig struct {
	ServerURL       string         `json:"server_url"`
	DataDir         string         `json:"data_dir"`
	DatabaseFile    string         `json:"database_file"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	NotificationTTL timex.Duration `json:"notification_ttl"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file whose path
// comes from -c or -config. Without either flag it does nothing.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
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

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NotificationTTL.Duration > 0 {
		cfg.NotificationTTL = jc.NotificationTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
