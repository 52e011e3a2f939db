package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"boardgames/catalog"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const cfgFile = "boardgames/config.yaml"

// AI configures the alpha-beta search of a computer side.
type AI struct {
	Depth      int     `yaml:"depth,omitempty"` // 0 uses the game's default depth
	Goroutines int     `yaml:"goroutines,omitempty"`
	Seed       *uint64 `yaml:"seed,omitempty"` // nil breaks ties by move order
	Prescan    bool    `yaml:"prescan,omitempty"`
}

type Arena struct {
	Games     int    `yaml:"games"` // per match-up
	MaxTurns  int    `yaml:"max_turns"`
	OutputDir string `yaml:"output_dir"`
}

type Config struct {
	LogLevel string        `yaml:"log_level"`
	AI       AI            `yaml:"ai"`
	Games    map[string]AI `yaml:"games,omitempty"` // per-game overrides of AI
	Arena    Arena         `yaml:"arena"`
}

func Default() Config {
	return Config{
		LogLevel: zerolog.InfoLevel.String(),
		AI: AI{
			Goroutines: runtime.NumCPU(),
		},
		Arena: Arena{
			Games:     10,
			MaxTurns:  500,
			OutputDir: filepath.Join(xdg.DataHome, "boardgames", "experiments"),
		},
	}
}

// Load reads the config file from the XDG config directories, or returns
// the defaults when there is none.
func Load() (*Config, error) {
	path, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		c := Default()
		return &c, nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid config %s", path)
	}
	return &c, nil
}

// Save writes c to the user's XDG config directory and returns the path.
func (c *Config) Save() (string, error) {
	path, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", errors.Wrap(err, "failed to locate config")
	}
	return path, c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "failed to write config")
}

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var result *multierror.Error
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		result = multierror.Append(result, fmt.Errorf("log_level: %q is not a level", c.LogLevel))
	}
	result = multierror.Append(result, c.AI.validate("ai")...)
	for name, ai := range c.Games {
		if _, err := catalog.Lookup(name); err != nil {
			result = multierror.Append(result, fmt.Errorf("games: %w", err))
		}
		result = multierror.Append(result, ai.validate("games."+name)...)
	}
	if c.Arena.Games < 1 {
		result = multierror.Append(result, fmt.Errorf("arena.games: must be at least 1, got %d", c.Arena.Games))
	}
	if c.Arena.MaxTurns < 1 {
		result = multierror.Append(result, fmt.Errorf("arena.max_turns: must be at least 1, got %d", c.Arena.MaxTurns))
	}
	if c.Arena.OutputDir == "" {
		result = multierror.Append(result, errors.New("arena.output_dir: must not be empty"))
	}
	return result.ErrorOrNil()
}

func (a AI) validate(prefix string) []error {
	var errs []error
	if a.Depth < 0 {
		errs = append(errs, fmt.Errorf("%s.depth: must not be negative, got %d", prefix, a.Depth))
	}
	if a.Goroutines < 0 {
		errs = append(errs, fmt.Errorf("%s.goroutines: must not be negative, got %d", prefix, a.Goroutines))
	}
	return errs
}

// Level returns the configured log level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// AIFor returns the search settings of the named game: the game's overrides
// over the shared settings, with the catalog depth when none is set. A game
// that prescans by default always does.
func (c *Config) AIFor(e catalog.Entry) AI {
	ai := c.AI
	if o, ok := c.Games[e.Name]; ok {
		if o.Depth > 0 {
			ai.Depth = o.Depth
		}
		if o.Goroutines > 0 {
			ai.Goroutines = o.Goroutines
		}
		if o.Seed != nil {
			ai.Seed = o.Seed
		}
		ai.Prescan = ai.Prescan || o.Prescan
	}
	if ai.Depth == 0 {
		ai.Depth = e.Depth
	}
	ai.Prescan = ai.Prescan || e.Prescan
	if ai.Goroutines == 0 {
		ai.Goroutines = 1
	}
	return ai
}
