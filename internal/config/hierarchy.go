package config

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed settings/*.yaml
var settingsFiles embed.FS

// HierarchySettings carries the naming-convention parameters shared by
// the drive-name materializer and the folder path builder.
type HierarchySettings struct {
	Delimiter        string `yaml:"delimiter"`
	PathSeparator    string `yaml:"path_separator"`
	MaxAncestorDepth int    `yaml:"max_ancestor_depth"`
}

// LoadHierarchySettings reads the embedded hierarchy settings file.
func LoadHierarchySettings() (*HierarchySettings, error) {
	data, err := settingsFiles.ReadFile("settings/hierarchy.yaml")
	if err != nil {
		return nil, fmt.Errorf("read hierarchy settings: %w", err)
	}

	var settings HierarchySettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal hierarchy settings: %w", err)
	}

	if settings.Delimiter == "" {
		return nil, fmt.Errorf("hierarchy settings: delimiter must not be empty")
	}
	if settings.PathSeparator == "" {
		settings.PathSeparator = " " + settings.Delimiter + " "
	}
	if settings.MaxAncestorDepth <= 0 {
		settings.MaxAncestorDepth = 32
	}

	return &settings, nil
}
