package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"codeberg.org/mutker/filterdash/internal/errors"
	"codeberg.org/mutker/filterdash/internal/health"
	"codeberg.org/mutker/filterdash/internal/logger"
	"codeberg.org/mutker/filterdash/internal/series"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Interval      int             `mapstructure:"interval"`
	Theme         string          `mapstructure:"theme"`
	Range         string          `mapstructure:"range"`
	Once          bool            `mapstructure:"once"`
	Debug         bool            `mapstructure:"debug"`
	Verbose       bool            `mapstructure:"verbose"`
	LogLevel      string          `mapstructure:"log_level"`
	LogFile       string          `mapstructure:"log_file"`
	NearTermLimit int             `mapstructure:"near_term_limit"`
	Device        DeviceConfig    `mapstructure:"device"`
	Thresholds    ThresholdConfig `mapstructure:"thresholds"`
	Baseline      []AnchorConfig  `mapstructure:"baseline"`
}

type DeviceConfig struct {
	MaxUses     int               `mapstructure:"max_uses"`
	CurrentUses int               `mapstructure:"current_uses"`
	PressurePSI float64           `mapstructure:"pressure_psi"`
	FlowRateGPM float64           `mapstructure:"flow_rate_gpm"`
	Uptime      time.Duration     `mapstructure:"uptime"`
	Firmware    string            `mapstructure:"firmware"`
	Components  []ComponentConfig `mapstructure:"components"`
	KPIs        []KPIConfig       `mapstructure:"kpis"`
}

type ComponentConfig struct {
	Name   string `mapstructure:"name"`
	Status string `mapstructure:"status"`
}

type KPIConfig struct {
	Title  string  `mapstructure:"title"`
	Unit   string  `mapstructure:"unit"`
	Before float64 `mapstructure:"before"`
	After  float64 `mapstructure:"after"`
}

type ThresholdConfig struct {
	LifeCritical float64 `mapstructure:"life_critical"`
	LifeWarning  float64 `mapstructure:"life_warning"`
	PressureLow  float64 `mapstructure:"pressure_low"`
	PressureHigh float64 `mapstructure:"pressure_high"`
}

type AnchorConfig struct {
	Uses int     `mapstructure:"uses"`
	Life float64 `mapstructure:"life"`
}

// Loader reads configuration from defaults, a TOML file, FILTERDASH_*
// environment variables and command line flags, in increasing priority.
type Loader struct {
	v    *viper.Viper
	opts options
	mu   sync.Mutex
}

// NewLoader returns a Loader with the given options applied.
func NewLoader(opts ...Option) (*Loader, error) {
	errFactory := errors.New()

	o := options{
		envPrefix:   defaultEnvPrefix,
		searchPaths: defaultSearchPaths(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidArgument, err)
		}
	}

	return &Loader{v: viper.New(), opts: o}, nil
}

// Load is a shorthand for NewLoader followed by Loader.Load.
func Load(args []string, opts ...Option) (*Config, error) {
	l, err := NewLoader(opts...)
	if err != nil {
		return nil, err
	}
	return l.Load(args)
}

func defaultSearchPaths() []string {
	var paths []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, defaultConfigName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", defaultConfigName))
	}

	return append(paths, "/etc/"+defaultConfigName)
}

// Load parses args (without the program name) and reads the configuration.
func (l *Loader) Load(args []string) (*Config, error) {
	errFactory := errors.New()
	v := l.v

	setDefaults(v)

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrParseFlags, err)
	}
	if err := bindFlags(v, fs); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	v.SetEnvPrefix(l.opts.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := l.readFile(fs); err != nil {
		return nil, err
	}

	cfg, err := l.decode()
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("file", v.ConfigFileUsed()).
		Int("interval", cfg.Interval).
		Str("range", cfg.Range).
		Msg("Configuration loaded")

	return cfg, nil
}

func (l *Loader) readFile(fs *pflag.FlagSet) error {
	errFactory := errors.New()
	v := l.v

	path := l.opts.configPath
	if f := fs.Lookup("config"); f != nil && f.Changed {
		path = f.Value.String()
	}
	if path == "" {
		path = os.Getenv(l.opts.envPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(defaultConfigType)
		if err := v.ReadInConfig(); err != nil {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName(defaultConfigName)
	v.SetConfigType(defaultConfigType)
	for _, p := range l.opts.searchPaths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errFactory.Wrap(errors.ErrReadConfig, err)
		}
		logger.Debug().Msg("No configuration file found, using defaults")
	}

	return nil
}

func (l *Loader) decode() (*Config, error) {
	errFactory := errors.New()

	l.mu.Lock()
	defer l.mu.Unlock()

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrUnmarshalConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path of the configuration file in use, if any.
func (l *Loader) ConfigFile() string {
	return l.v.ConfigFileUsed()
}

// Watch implements Watcher. It is a no-op when no file was loaded.
func (l *Loader) Watch(ctx context.Context, callback func(*Config)) error {
	if l.v.ConfigFileUsed() == "" {
		logger.Debug().Msg("No configuration file to watch")
		return nil
	}

	l.v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil || e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}

		cfg, err := l.decode()
		if err != nil {
			logger.Warn().Err(err).Str("file", e.Name).Msg("Ignoring invalid configuration change")
			return
		}

		logger.Info().Str("file", e.Name).Msg("Configuration reloaded")
		callback(cfg)
	})
	l.v.WatchConfig()

	return nil
}

// Validate checks settings that must hold before the dashboard starts.
// The device's usage rating is checked by the health model on every
// refresh instead, so a bad reading shows up on screen.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}

	switch c.Theme {
	case ThemeDark, ThemeLight:
	default:
		return errFactory.WithData(errors.ErrInvalidTheme, c.Theme)
	}

	if _, err := series.ParseRange(c.Range); err != nil {
		return err
	}

	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}

	if err := c.HealthThresholds().Validate(); err != nil {
		return err
	}

	if c.NearTermLimit < 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, "near_term_limit must not be negative")
	}

	if b := c.SeriesBaseline(); b != nil {
		if err := b.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// RefreshInterval returns Interval as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Interval) * time.Second
}

// SelectedRange returns the configured initial range. Validate has
// already rejected unknown names.
func (c *Config) SelectedRange() series.Range {
	r, err := series.ParseRange(c.Range)
	if err != nil {
		return series.FullRated
	}
	return r
}

// Reading converts the device section into a health.Reading.
func (c *Config) Reading() health.Reading {
	d := c.Device

	components := make([]health.Component, len(d.Components))
	for i, comp := range d.Components {
		components[i] = health.Component{
			Name:   comp.Name,
			Status: health.ComponentStatus(strings.ToUpper(strings.TrimSpace(comp.Status))),
		}
	}

	kpis := make([]health.QualityKPI, len(d.KPIs))
	for i, k := range d.KPIs {
		kpis[i] = health.QualityKPI{Title: k.Title, Unit: k.Unit, Before: k.Before, After: k.After}
	}

	return health.Reading{
		MaxUses:     d.MaxUses,
		CurrentUses: d.CurrentUses,
		PressurePSI: d.PressurePSI,
		Components:  components,
		KPIs:        kpis,
		System: health.SystemInfo{
			Uptime:      d.Uptime,
			FlowRateGPM: d.FlowRateGPM,
			Firmware:    d.Firmware,
		},
	}
}

// HealthThresholds converts the thresholds section.
func (c *Config) HealthThresholds() health.Thresholds {
	return health.Thresholds{
		LifeCritical: c.Thresholds.LifeCritical,
		LifeWarning:  c.Thresholds.LifeWarning,
		PressureLow:  c.Thresholds.PressureLow,
		PressureHigh: c.Thresholds.PressureHigh,
	}
}

// SeriesBaseline returns the configured baseline curve, or nil when the
// built-in curve should be used.
func (c *Config) SeriesBaseline() series.Baseline {
	if len(c.Baseline) == 0 {
		return nil
	}

	b := make(series.Baseline, len(c.Baseline))
	for i, a := range c.Baseline {
		b[i] = series.Point{X: a.Uses, Y: a.Life}
	}
	return b
}

// SeriesOptions returns the builder options the configuration asks for.
func (c *Config) SeriesOptions() []series.Option {
	opts := []series.Option{series.WithNearTermLimit(c.NearTermLimit)}
	if b := c.SeriesBaseline(); b != nil {
		opts = append(opts, series.WithBaseline(b))
	}
	return opts
}

// Live holds the most recent configuration and can be shared between the
// watcher and the dashboard.
type Live struct {
	cur atomic.Pointer[Config]
}

func NewLive(cfg *Config) *Live {
	l := &Live{}
	l.cur.Store(cfg)
	return l
}

func (l *Live) Store(cfg *Config) {
	l.cur.Store(cfg)
}

func (l *Live) Current() *Config {
	return l.cur.Load()
}

// Reading returns the device reading of the current configuration.
func (l *Live) Reading() (health.Reading, error) {
	cfg := l.cur.Load()
	if cfg == nil {
		return health.Reading{}, errors.New().WithMessage(errors.ErrInvalidConfig, "no configuration loaded")
	}
	return cfg.Reading(), nil
}
