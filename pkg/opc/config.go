package opc

import (
	"os"
	"strings"
)

// Config contains the packaging engine's ambient options.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error).
	LogLevel string
	// PrettyXML indents XML items written on save. Off by default so that
	// saved bodies round-trip without injected whitespace.
	PrettyXML bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warn",
		PrettyXML: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// OPC_LOG_LEVEL
	if val := os.Getenv("OPC_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// OPC_PRETTY_XML
	if val := os.Getenv("OPC_PRETTY_XML"); val != "" {
		config.PrettyXML = parseBool(val)
	}

	return config
}

// parseBool parses a boolean value from a string.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
