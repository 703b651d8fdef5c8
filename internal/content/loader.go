package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// Load loads the game content.
// Search order: customPath -> ~/.questcv/content.yaml -> ./configs/content.yaml -> embedded default
func Load(customPath string) (*Content, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read content %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userPath := userContentPath("content.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if c, err := parse(data, userPath); err == nil {
				return c, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/content.yaml"); err == nil {
		if c, err := parse(data, "configs/content.yaml"); err == nil {
			return c, nil
		}
	}

	// Use embedded default YAML
	return parse(defaultContentYAML, "embedded default")
}

func parse(data []byte, source string) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content %s: %w", source, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content %s: %w", source, err)
	}
	return &c, nil
}

// userContentPath returns the path to the user content file, or empty if home
// is unavailable.
func userContentPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".questcv", filename)
}
