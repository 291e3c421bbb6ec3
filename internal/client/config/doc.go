// Package config loads runtime configuration for the SkillSphere CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with SKILLSPHERE_ (see parseEnv); a
//     dotenv file passed with -e or -env-file is loaded first and never
//     overrides variables already set in the process.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   local data directory
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8080/api",
//	  "data_dir": "~/.skillsphere",
//	  "database_file": "skillsphere.db",
//	  "request_timeout": "10s",
//	  "notification_ttl": "3s",
//	  "log_level": "info"
//	}
//
// # Environment
//
//	SKILLSPHERE_SERVER_URL, SKILLSPHERE_DATA_DIR, SKILLSPHERE_DATABASE_FILE,
//	SKILLSPHERE_REQUEST_TIMEOUT, SKILLSPHERE_NOTIFICATION_TTL, SKILLSPHERE_LOG_LEVEL
package config
