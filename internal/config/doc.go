// Package config covers the two inputs of hearth-version: the documentation
// site configuration (an mkdocs-style YAML document queried by dotted path)
// and the tool settings (flags and HEARTH_* environment variables via viper).
package config
