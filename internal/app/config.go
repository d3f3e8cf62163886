package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"lifeview/internal/core"
	"lifeview/internal/log"
	"lifeview/internal/render"
)

// ErrUnknownEngine is returned when the configured engine is not registered.
var ErrUnknownEngine = errors.New("unknown engine")

// Colors holds the palette as hex strings.
type Colors struct {
	Grid  string `yaml:"grid"`
	Dead  string `yaml:"dead"`
	Alive string `yaml:"alive"`
}

// Config represents the runtime parameters for the application.
type Config struct {
	Engine        string  `yaml:"engine"`
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	CellSize      int     `yaml:"cell_size"`
	FPS           float64 `yaml:"fps"`
	Seed          int64   `yaml:"seed"`
	InitMode      string  `yaml:"init_mode"`
	Density       float64 `yaml:"density"`
	ReseedDensity float64 `yaml:"reseed_density"`
	Paused        bool    `yaml:"paused"`
	Colors        Colors  `yaml:"colors"`
	LogLevel      string  `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := render.DefaultPalette()
	return &Config{
		Engine:        "life",
		Width:         64,
		Height:        64,
		CellSize:      10,
		FPS:           5,
		InitMode:      core.InitRandom.String(),
		Density:       0.5,
		ReseedDensity: 0.3,
		Colors: Colors{
			Grid:  render.Hex(p.Grid),
			Dead:  render.Hex(p.Dead),
			Alive: render.Hex(p.Alive),
		},
		LogLevel: log.LevelInfo.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&c.Engine, "engine", c.Engine, "simulation engine to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "target generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid (0 picks one from the clock)")
	fs.StringVar(&c.InitMode, "init", c.InitMode, "initial grid: empty, random or pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell density of the initial random grid")
	fs.Float64Var(&c.ReseedDensity, "reseed-density", c.ReseedDensity, "live cell density used by the random control")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with playback paused")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn, error or none")
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Marshal encodes the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, ok := core.Engines()[c.Engine]; !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownEngine, c.Engine, core.EngineNames())
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size %d must be positive", c.CellSize)
	}
	if err := core.ValidateFPS(c.FPS); err != nil {
		return err
	}
	if _, ok := core.ParseInitMode(c.InitMode); !ok {
		return fmt.Errorf("init mode %q: want empty, random or pattern", c.InitMode)
	}
	for name, d := range map[string]float64{"density": c.Density, "reseed density": c.ReseedDensity} {
		if d < 0 || d > 1 {
			return fmt.Errorf("%s %v must be within [0, 1]", name, d)
		}
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("log level %q not recognised", c.LogLevel)
	}
	return nil
}

// Size returns the configured grid dimensions.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Viewport returns the configured cell geometry.
func (c *Config) Viewport() render.Viewport { return render.Viewport{CellSize: c.CellSize} }

// CanvasSize returns the backing-store size for the configured grid.
func (c *Config) CanvasSize() (int, int) { return c.Viewport().CanvasSize(c.Size()) }

// Palette parses the configured colors.
func (c *Config) Palette() (render.Palette, error) {
	var p render.Palette
	var err error
	if p.Grid, err = render.ParseHex(c.Colors.Grid); err != nil {
		return p, err
	}
	if p.Dead, err = render.ParseHex(c.Colors.Dead); err != nil {
		return p, err
	}
	if p.Alive, err = render.ParseHex(c.Colors.Alive); err != nil {
		return p, err
	}
	return p, nil
}

// Logger builds a logger at the configured level.
func (c *Config) Logger() *log.Logger {
	level, _ := log.ParseLevel(c.LogLevel)
	return log.New(os.Stderr, level)
}

// SeedSource yields the configured seed first and then successive values,
// so reseeds are reproducible. A zero seed falls back to the clock.
func (c *Config) SeedSource() func() int64 {
	next := c.Seed
	return func() int64 {
		if c.Seed == 0 {
			return time.Now().UnixNano()
		}
		s := next
		next++
		return s
	}
}

// Factory resolves the configured engine into a factory.
func (c *Config) Factory() (core.Factory, error) {
	build, ok := core.Engines()[c.Engine]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, c.Engine)
	}
	return build(c.Size(), c.SeedSource()), nil
}

// NewController validates cfg and builds a controller drawing onto canvas.
func (c *Config) NewController(host FrameHost, canvas render.Canvas, surface Surface, logger *log.Logger) (*Controller, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	factory, err := c.Factory()
	if err != nil {
		return nil, err
	}
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}
	mode, _ := core.ParseInitMode(c.InitMode)
	return NewController(Options{
		Engine:        factory(mode, c.Density),
		Factory:       factory,
		Host:          host,
		Canvas:        canvas,
		Surface:       surface,
		Logger:        logger,
		Viewport:      c.Viewport(),
		Palette:       palette,
		FPS:           c.FPS,
		ReseedDensity: c.ReseedDensity,
	})
}
