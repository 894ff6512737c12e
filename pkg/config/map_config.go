package config

import (
	"fmt"
	"strconv"

	"github.com/apex/log"
)

// MapConfig is a fixed in-memory Configer for tests.
type MapConfig struct {
	configValues map[string]string
}

func NewMapConfig(entries map[string]string) *MapConfig {
	c := &MapConfig{configValues: map[string]string{}}

	for key, entry := range entries {
		c.configValues[key] = entry
	}

	return c
}

func (c *MapConfig) LoadFromPath(_ string) error {
	return fmt.Errorf("LoadFromPath not supported for MapConfig")
}

func (c *MapConfig) Load() error {
	return nil
}

func (c *MapConfig) GetKey(key string) string {
	return c.configValues[key]
}

func (c *MapConfig) MustGetKey(key string) string {
	val := c.GetKey(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (c *MapConfig) GetKeyWithDefault(key, defaultValue string) string {
	val := c.GetKey(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func (c *MapConfig) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(c.GetKey(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}
