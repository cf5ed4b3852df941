package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"tableflip.dev/calnav/pkg/calendar"
	"tableflip.dev/calnav/pkg/timeutil"
)

const (
	keyDragThreshold   = "drag-threshold"
	keySwipeThreshold  = "swipe-threshold"
	keyModeThreshold   = "mode-threshold"
	keyStartMode       = "start-mode"
	keyUTCOffset       = "utc-offset"
	keyCellWidthUnits  = "cell-width-units"
	keyCellHeightUnits = "cell-height-units"
	keyPrefsPath       = "prefs-path"
)

// Config holds the user-tunable knobs of the calendar.
type Config struct {
	// File is the config file that was read, empty when only defaults and
	// environment were used.
	File string

	DragThreshold  float64
	SwipeThreshold float64
	ModeThreshold  float64
	StartMode      calendar.Mode
	Location       *time.Location

	// CellWidthUnits and CellHeightUnits convert terminal cells into
	// gesture-delta units.
	CellWidthUnits  float64
	CellHeightUnits float64

	PrefsPath string
}

// Thresholds returns the gesture thresholds for the engine.
func (c *Config) Thresholds() calendar.Thresholds {
	return calendar.Thresholds{
		Drag:  c.DragThreshold,
		Swipe: c.SwipeThreshold,
		Mode:  c.ModeThreshold,
	}
}

// Now returns the current time at the configured location.
func (c *Config) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// LoadConfig reads .calnav.yaml from $CALNAV_CONFIG_PATH or the working
// directory, overlaid with CALNAV_* environment variables.
func LoadConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName(".calnav") // .yaml is implicit
	if override := os.Getenv("CALNAV_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return decode(v)
}

// ReadConfigFile loads a specific config file.
func ReadConfigFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("store: read config %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyDragThreshold, calendar.DefaultDragThreshold)
	v.SetDefault(keySwipeThreshold, calendar.DefaultSwipeThreshold)
	v.SetDefault(keyModeThreshold, calendar.DefaultModeThreshold)
	v.SetDefault(keyStartMode, calendar.ModeMonth.String())
	v.SetDefault(keyUTCOffset, "")
	v.SetDefault(keyCellWidthUnits, 10)
	v.SetDefault(keyCellHeightUnits, 25)
	v.SetDefault(keyPrefsPath, "~/.calnav")
	v.SetEnvPrefix("CALNAV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	mode, err := calendar.ParseMode(v.GetString(keyStartMode))
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", keyStartMode, err)
	}
	loc, err := timeutil.ParseOffset(v.GetString(keyUTCOffset))
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", keyUTCOffset, err)
	}
	cfg := &Config{
		File:            v.ConfigFileUsed(),
		DragThreshold:   v.GetFloat64(keyDragThreshold),
		SwipeThreshold:  v.GetFloat64(keySwipeThreshold),
		ModeThreshold:   v.GetFloat64(keyModeThreshold),
		StartMode:       mode,
		Location:        loc,
		CellWidthUnits:  v.GetFloat64(keyCellWidthUnits),
		CellHeightUnits: v.GetFloat64(keyCellHeightUnits),
		PrefsPath:       v.GetString(keyPrefsPath),
	}
	for key, val := range map[string]float64{
		keyDragThreshold:   cfg.DragThreshold,
		keySwipeThreshold:  cfg.SwipeThreshold,
		keyModeThreshold:   cfg.ModeThreshold,
		keyCellWidthUnits:  cfg.CellWidthUnits,
		keyCellHeightUnits: cfg.CellHeightUnits,
	} {
		if val < 0 {
			return nil, fmt.Errorf("store: %s must not be negative, got %v", key, val)
		}
	}
	return cfg, nil
}
