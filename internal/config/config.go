package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/assetref/pkg/assetref"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "assetref.yaml"

// Environment variables that override assetref.yaml.
const (
	EnvRoot         = "ASSETREF_ROOT"
	EnvOutput       = "ASSETREF_OUTPUT"
	EnvSpriteFilter = "ASSETREF_SPRITE_FILTER"
	EnvWorkers      = "ASSETREF_WORKERS"
)

// SearchConfig toggles the built-in file kinds.
type SearchConfig struct {
	Prefabs   bool `yaml:"prefabs"`
	Scenes    bool `yaml:"scenes"`
	Materials bool `yaml:"materials"`
	Assets    bool `yaml:"assets"`
}

type ProjectConfig struct {
	Root            string       `yaml:"root"`
	Search          SearchConfig `yaml:"search"`
	ExtraExtensions []string     `yaml:"extra_extensions,omitempty"`
	SpriteFilter    bool         `yaml:"sprite_filter"`
	Output          string       `yaml:"output"`
	Workers         int          `yaml:"workers"`
}

// Default returns the configuration used when no assetref.yaml exists.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Root: assetref.DefaultRootDirectory,
		Search: SearchConfig{
			Prefabs: true,
			Scenes:  true,
		},
		Output:  assetref.DefaultReportPath,
		Workers: 1,
	}
}

// Load reads assetref.yaml from projectDir. Fields missing from the file
// keep their default values.
func Load(projectDir string) (*ProjectConfig, error) {
	configPath := filepath.Join(projectDir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", assetref.ErrInvalidConfig, ConfigFileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load with a missing file treated as the defaults.
func LoadOrDefault(projectDir string) (*ProjectConfig, error) {
	cfg, err := Load(projectDir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to projectDir/assetref.yaml.
func Save(projectDir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(projectDir, ConfigFileName), data, 0644)
}

// LoadDotEnv loads projectDir/.env into the process environment. A missing
// file is not an error. Variables already set are left untouched.
func LoadDotEnv(projectDir string) error {
	envPath := filepath.Join(projectDir, ".env")
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(envPath); err != nil {
		return fmt.Errorf("%w: failed to load %s: %w", assetref.ErrInvalidConfig, envPath, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookupNonEmpty(lookup, EnvRoot); ok {
		c.Root = v
	}
	if v, ok := lookupNonEmpty(lookup, EnvOutput); ok {
		c.Output = v
	}
	if v, ok := lookupNonEmpty(lookup, EnvSpriteFilter); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be a boolean, got %q", assetref.ErrInvalidConfig, EnvSpriteFilter, v)
		}
		c.SpriteFilter = b
	}
	if v, ok := lookupNonEmpty(lookup, EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", assetref.ErrInvalidConfig, EnvWorkers, v)
		}
		c.Workers = n
	}
	return c.Validate()
}

func lookupNonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// Validate checks value ranges.
func (c *ProjectConfig) Validate() error {
	if c.Workers < 0 || c.Workers > assetref.MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", assetref.ErrInvalidConfig, assetref.MaxWorkers, c.Workers)
	}
	if strings.TrimSpace(c.Root) == "" {
		return fmt.Errorf("%w: root cannot be empty", assetref.ErrInvalidConfig)
	}
	return nil
}

// Extensions returns the selectors enabled by the toggles followed by the
// extra extensions, in that order.
func (c *ProjectConfig) Extensions() []string {
	exts := []string{}
	if c.Search.Prefabs {
		exts = append(exts, assetref.SelectorPrefab)
	}
	if c.Search.Scenes {
		exts = append(exts, assetref.SelectorScene)
	}
	if c.Search.Materials {
		exts = append(exts, assetref.SelectorMaterial)
	}
	if c.Search.Assets {
		exts = append(exts, assetref.SelectorAsset)
	}
	for _, e := range c.ExtraExtensions {
		if strings.TrimSpace(e) != "" {
			exts = append(exts, e)
		}
	}
	return exts
}

// SearchOptions converts the configuration into scanner options. Root is
// interpreted relative to the project directory by the caller.
func (c *ProjectConfig) SearchOptions() assetref.SearchOptions {
	return assetref.SearchOptions{
		Extensions:       c.Extensions(),
		DeepSpriteFilter: c.SpriteFilter,
		RootDirectory:    c.Root,
		Workers:          c.Workers,
	}
}
