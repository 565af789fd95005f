package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for catalog files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown catalog format")

// Load reads a catalog from a .toml or .yaml file, or from a directory of .txt files.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Catalog{}, fmt.Errorf("catalog path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to stat catalog: %w", err)
	}

	var cat Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case info.IsDir():
		cat, err = loadTextDir(path)
	case ext == ".toml":
		_, err = toml.DecodeFile(path, &cat)
	case ext == ".yaml" || ext == ".yml":
		cat, err = loadYAML(path)
	default:
		return Catalog{}, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}

	cat = cat.normalize()
	if err := cat.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return cat, nil
}

func loadYAML(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
