package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOverrides mirrors the optional on-disk config file. Only fields the
// file sets override the built-in defaults.
type fileOverrides struct {
	Client  *ClientConfig  `yaml:"client"`
	Netcode *NetcodeConfig `yaml:"netcode"`
}

// LoadFile applies overrides from a YAML config file. A missing file is not
// an error; defaults stand.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	overrides := fileOverrides{Client: &C, Netcode: &Netcode}
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
