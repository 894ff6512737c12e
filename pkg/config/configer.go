// Package config handles process level configuration for the lairman
// daemons: ports, file paths and other environment driven knobs. Business
// rule settings live in pkg/settings, not here.
package config

type Configer interface {
	LoadFromPath(path string) error
	Load() error
	GetKey(key string) string
	MustGetKey(key string) string
	GetKeyWithDefault(key, defaultValue string) string
	GetIntKeyWithDefault(key string, defaultValue int) int
}

// Keys understood by the lairman daemons.
const (
	KeyPort          = "LAIRMAND_PORT"
	KeySettingsPath  = "LAIRMAND_SETTINGS"
	KeyDBPath        = "LAIRMAND_DB"
	KeyUpkeepMinutes = "LAIRMAND_UPKEEP_MINUTES"
	KeyLogLevel      = "LAIRMAND_LOG_LEVEL"
)
