package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the tool configuration merged from the YAML files in the
// config directory. Manifest files themselves are plain requirements
// text, not YAML.
type Config struct {
	Manifests []string `yaml:"manifests" json:"manifests,omitempty"`
	Pip       Command  `yaml:"pip" json:"pip"`
	IndexURL  string   `yaml:"index_url" json:"index_url,omitempty"`
}

// Command is a shell command, written in YAML either as a bare string or
// as a mapping with an explicit require_root.
type Command struct {
	Command     string `yaml:"command" json:"command"`
	RequireRoot bool   `yaml:"require_root" json:"require_root"`
}

func (c *Command) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		c.Command = value.Value
		c.RequireRoot = false
		return nil
	case yaml.MappingNode:
		var aux struct {
			Command     string `yaml:"command"`
			RequireRoot *bool  `yaml:"require_root"`
		}
		if err := value.Decode(&aux); err != nil {
			return err
		}
		c.Command = aux.Command
		if aux.RequireRoot != nil {
			c.RequireRoot = *aux.RequireRoot
		} else {
			c.RequireRoot = false
		}
		return nil
	default:
		return fmt.Errorf("invalid command node kind: %d", value.Kind)
	}
}
