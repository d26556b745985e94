package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/conway/internal/game"
	"github.com/san-kum/conway/internal/grid"
)

const (
	DefaultAlive   = "#"
	DefaultDead    = " "
	DefaultDelay   = 100 * time.Millisecond
	DefaultPattern = "glider"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Alive       string        `yaml:"alive"`
	Dead        string        `yaml:"dead"`
	Delay       time.Duration `yaml:"delay"`
	View        game.View     `yaml:"view"`
	Width       uint64        `yaml:"width"`
	Height      uint64        `yaml:"height"`
	Pattern     string        `yaml:"pattern"`
	Generations int           `yaml:"generations"`
	Syntax      SyntaxConfig  `yaml:"syntax"`
}

// SyntaxConfig names the characters used when reading pattern files.
type SyntaxConfig struct {
	Alive   string `yaml:"alive"`
	Dead    string `yaml:"dead"`
	Comment string `yaml:"comment"`
}

func DefaultConfig() *Config {
	return &Config{
		Alive:   DefaultAlive,
		Dead:    DefaultDead,
		Delay:   DefaultDelay,
		View:    game.Centered,
		Pattern: DefaultPattern,
		Syntax: SyntaxConfig{
			Alive:   string(grid.ReadCharAlive),
			Dead:    string(grid.ReadCharDead),
			Comment: string(grid.CommentChar),
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the glyphs are single distinct characters and the
// remaining values are in range.
func (c *Config) Validate() error {
	alive, err := singleRune("alive", c.Alive)
	if err != nil {
		return err
	}
	dead, err := singleRune("dead", c.Dead)
	if err != nil {
		return err
	}
	if alive == dead {
		return fmt.Errorf("%w: alive and dead glyphs must differ, both are %q", ErrInvalidConfig, alive)
	}
	if !c.View.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, game.ErrUnknownView)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %v", ErrInvalidConfig, c.Delay)
	}
	if c.Width > math.MaxInt64 || c.Height > math.MaxInt64 {
		return fmt.Errorf("%w: width and height must not exceed %d, got %dx%d",
			ErrInvalidConfig, uint64(math.MaxInt64), c.Width, c.Height)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalidConfig, c.Generations)
	}
	_, err = c.GridSyntax()
	return err
}

// Settings converts the config into game settings. Validate must pass first.
func (c *Config) Settings() game.Settings {
	alive, _ := utf8.DecodeRuneInString(c.Alive)
	dead, _ := utf8.DecodeRuneInString(c.Dead)
	return game.Settings{
		CharAlive: alive,
		CharDead:  dead,
		Delay:     c.Delay,
		View:      c.View,
	}
}

func (c *Config) GridSyntax() (grid.Syntax, error) {
	alive, err := singleRune("syntax.alive", c.Syntax.Alive)
	if err != nil {
		return grid.Syntax{}, err
	}
	dead, err := singleRune("syntax.dead", c.Syntax.Dead)
	if err != nil {
		return grid.Syntax{}, err
	}
	comment, err := singleRune("syntax.comment", c.Syntax.Comment)
	if err != nil {
		return grid.Syntax{}, err
	}
	if alive == dead || alive == comment || dead == comment {
		return grid.Syntax{}, fmt.Errorf("%w: syntax characters must differ, got %q %q %q", ErrInvalidConfig, alive, dead, comment)
	}
	return grid.Syntax{Alive: alive, Dead: dead, Comment: comment}, nil
}

func singleRune(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s must be a single character, got %q", ErrInvalidConfig, field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
