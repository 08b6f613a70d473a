package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings controls a single hearth-version invocation.
type Settings struct {
	// DocumentPath is the site configuration consulted for the fallback tag.
	DocumentPath string
	// Dir is the working directory for version-control commands.
	Dir string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

const (
	// EnvPrefix prefixes environment variables that override settings.
	EnvPrefix = "HEARTH"

	keyConfig   = "config"
	keyDir      = "dir"
	keyLogLevel = "log_level"

	defaultLogLevel = "info"
)

// LoadSettings merges defaults, HEARTH_* environment variables and the given flags.
// Flags named config, dir and log-level are bound when present.
func LoadSettings(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyConfig, DefaultDocumentFilename)
	v.SetDefault(keyDir, "")
	v.SetDefault(keyLogLevel, defaultLogLevel)

	if flags != nil {
		bindings := map[string]string{
			keyConfig:   "config",
			keyDir:      "dir",
			keyLogLevel: "log-level",
		}

		for key, name := range bindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	settings := &Settings{
		DocumentPath: v.GetString(keyConfig),
		Dir:          v.GetString(keyDir),
		LogLevel:     v.GetString(keyLogLevel),
	}

	if err := ValidateLogLevel(settings.LogLevel); err != nil {
		return nil, err
	}

	return settings, nil
}

// ValidateLogLevel ensures the user-provided log level matches the supported set.
func ValidateLogLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", level)
	}
}
