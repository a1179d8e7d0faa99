// Package config holds the global defaults of the scale engine.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

const (
	// DefaultPaddingRatio is the share of a continuous domain's length
	// added on each side.
	DefaultPaddingRatio = 0.1

	// DefaultNumberOfTicks is the default tick count of both grids.
	DefaultNumberOfTicks = 5
)

// DefaultTimeLayouts returns the layouts strings are parsed with on time
// axes, in the order they are tried.
func DefaultTimeLayouts() []string {
	return []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
		"2006-01",
		"2006",
	}
}

// Defaults are used wherever a chart does not override them.
type Defaults struct {
	PaddingRatio float64 `mapstructure:"padding_ratio"`
	Ticks        Ticks   `mapstructure:"ticks"`

	// TimeLayouts are tried in order when a string has to be read as a
	// time. Layouts without a zone are read as UTC.
	TimeLayouts []string `mapstructure:"time_layouts"`
}

// Ticks are the default number of ticks of the X and Y grid.
type Ticks struct {
	X int `mapstructure:"x"`
	Y int `mapstructure:"y"`
}

// Default returns the built-in defaults.
func Default() Defaults {
	return Defaults{
		PaddingRatio: DefaultPaddingRatio,
		Ticks:        Ticks{X: DefaultNumberOfTicks, Y: DefaultNumberOfTicks},
		TimeLayouts:  DefaultTimeLayouts(),
	}
}

// SetDefaults registers the built-in defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("padding_ratio", d.PaddingRatio)
	v.SetDefault("ticks.x", d.Ticks.X)
	v.SetDefault("ticks.y", d.Ticks.Y)
	v.SetDefault("time_layouts", d.TimeLayouts)
}

// Load reads the defaults from v.
func Load(v *viper.Viper) (Defaults, error) {
	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, errors.Wrap(err, "failed to unmarshal defaults")
	}
	if err := d.Validate(); err != nil {
		return Defaults{}, err
	}
	return d, nil
}

// LoadFile reads the defaults from the configuration file at path,
// overridable by SCALES_* environment variables. Unset keys keep their
// built-in value.
func LoadFile(path string) (Defaults, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Defaults{}, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return Load(v)
}

// New returns a viper instance with the built-in defaults and environment
// overrides (SCALES_PADDING_RATIO, SCALES_TICKS_X, ...). SCALES_TIME_LAYOUTS
// is a comma separated list.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("scales")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Validate rejects negative padding and tick counts and an empty list of
// time layouts.
func (d Defaults) Validate() error {
	if d.PaddingRatio < 0 {
		return errors.Newf("padding ratio must not be negative, got %g", d.PaddingRatio)
	}
	if d.Ticks.X < 0 || d.Ticks.Y < 0 {
		return errors.Newf("tick counts must not be negative, got x=%d y=%d", d.Ticks.X, d.Ticks.Y)
	}
	if len(d.TimeLayouts) == 0 {
		return errors.New("at least one time layout is required")
	}
	return nil
}
