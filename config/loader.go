package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ConfigFileName is the name of the project config file.
const ConfigFileName = "dwhforge.yaml"

// ConfigFileNameAlt is the alternate name of the project config file.
const ConfigFileNameAlt = "dwhforge.yml"

// Load reads project configuration in increasing priority: built-in
// defaults, the config file, then DWHFORGE_-prefixed environment
// variables. An empty path searches the working directory for
// dwhforge.yaml or dwhforge.yml; no config file is not an error.
func Load(path string) (*ProjectConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"base_dir":     defaultBaseDir(),
		"layers":       []string{"bronze", "silver", "gold"},
		"dictionary":   "dictionary.csv",
		"type_mapping": "type_mapping.csv",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile(".")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// DWHFORGE_DATABASE_NAME -> database_name
	if err := k.Load(env.Provider("DWHFORGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DWHFORGE_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg ProjectConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func findConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func defaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "projects"
	}
	return filepath.Join(home, "projects")
}
