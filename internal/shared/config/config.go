package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. None of it reaches the scoring
// math; thresholds there are constants.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	LogJSON         bool
	LogDebug        bool
	MaxTextBytes    int
	MinTextChars    int
}

// Load reads configuration from the process-wide viper instance so flags
// bound by the CLI take part in resolution.
func Load() Config {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v: defaults, then an optional .env file,
// then environment variables.
func LoadFrom(v *viper.Viper) Config {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "dev")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOG_JSON", true)
	v.SetDefault("LOG_DEBUG", false)
	v.SetDefault("MAX_TEXT_BYTES", 200000)
	v.SetDefault("MIN_TEXT_CHARS", 50)

	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(v, ".env", "cmd/.env")
	v.AutomaticEnv()

	return Config{
		Port:            v.GetString("PORT"),
		Env:             normalizeEnv(v.GetString("ENV")),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LogJSON:         v.GetBool("LOG_JSON"),
		LogDebug:        v.GetBool("LOG_DEBUG"),
		MaxTextBytes:    positive(v.GetInt("MAX_TEXT_BYTES"), 200000),
		MinTextChars:    positive(v.GetInt("MIN_TEXT_CHARS"), 50),
	}
}

func positive(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
