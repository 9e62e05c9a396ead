package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/toasty/internal/toast"
)

const appName = "toasty"

type Config struct {
	Icons         string              `koanf:"icons"` // "nerd", "unicode", or "none"
	Notifications NotificationsConfig `koanf:"notifications"`
	Sounds        SoundsConfig        `koanf:"sounds"`
	LogLevel      string              `koanf:"log_level"` // zerolog level name (default: "info")
}

// NotificationsConfig holds the notification provider settings.
// Pointer fields distinguish "unset" from an explicit zero/false.
type NotificationsConfig struct {
	Position         string                      `koanf:"position"`          // one of the six anchors (default: "top-right")
	MaxNotifications *int                        `koanf:"max_notifications"` // visible bound (default: 5, 0 shows nothing)
	DefaultDuration  int                         `koanf:"default_duration"`  // ms for NORMAL priority (default: 5000)
	PauseOnHover     *bool                       `koanf:"pause_on_hover"`    // default: true
	EnableUndo       *bool                       `koanf:"enable_undo"`       // default: true
	MaxUndo          int                         `koanf:"max_undo"`          // 0 = unbounded
	AllowMarkdown    *bool                       `koanf:"allow_markdown"`    // default: true
	EnableHistory    bool                        `koanf:"enable_history"`
	MaxHistory       int                         `koanf:"max_history"` // default: 50
	SoundEnabled     bool                        `koanf:"sound_enabled"`
	DesktopEnabled   bool                        `koanf:"desktop_enabled"`
	DragThreshold    float64                     `koanf:"drag_threshold"` // logical units (default: 100)
	CustomTypes      map[string]CustomTypeConfig `koanf:"custom_types"`
}

// CustomTypeConfig declares an extra notification type.
type CustomTypeConfig struct {
	Priority   string `koanf:"priority"` // default priority key (default: "NORMAL")
	Background string `koanf:"background"`
	Foreground string `koanf:"foreground"`
	Border     string `koanf:"border"`
	Sound      string `koanf:"sound"`    // sound file overriding [sounds].default
	Duration   *int   `koanf:"duration"` // ms for NORMAL priority, 0 = until closed (default: default_duration)
}

// SoundsConfig maps notification types to sound files.
type SoundsConfig struct {
	Default string   `koanf:"default"`
	Success string   `koanf:"success"`
	Error   string   `koanf:"error"`
	Warning string   `koanf:"warning"`
	Info    string   `koanf:"info"`
	Volume  *float64 `koanf:"volume"` // 0.0-1.0 (default: 1.0)
}

// Load reads the config files in priority order (last wins). An explicit
// path, when given, is loaded last and must exist.
func Load(explicit string) (*Config, error) {
	paths := getConfigPaths()
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		paths = append(paths, explicit)
	}
	return loadPaths(paths)
}

func loadPaths(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Expand ~ in sound paths
	s := &cfg.Sounds
	for _, p := range []*string{&s.Default, &s.Success, &s.Error, &s.Warning, &s.Info} {
		*p = expandPath(*p)
	}
	for key, ct := range cfg.Notifications.CustomTypes {
		ct.Sound = expandPath(ct.Sound)
		cfg.Notifications.CustomTypes[key] = ct
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/toasty/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// ToastOptions converts the notification section to manager options with
// defaults applied. Collaborators (clock, alerter, history, logger) are
// left for the caller to fill in.
func (c *Config) ToastOptions() toast.Options {
	n := c.Notifications
	opts := toast.DefaultOptions()

	opts.Position = toast.ParsePosition(n.Position)
	if n.MaxNotifications != nil && *n.MaxNotifications >= 0 {
		opts.MaxVisible = *n.MaxNotifications
	}
	if n.DefaultDuration > 0 {
		opts.DefaultDuration = time.Duration(n.DefaultDuration) * time.Millisecond
	}
	if n.PauseOnHover != nil {
		opts.PauseOnHover = *n.PauseOnHover
	}
	if n.EnableUndo != nil {
		opts.EnableUndo = *n.EnableUndo
	}
	if n.MaxUndo > 0 {
		opts.MaxUndo = n.MaxUndo
	}
	if n.AllowMarkdown != nil {
		opts.AllowMarkdown = *n.AllowMarkdown
	}
	opts.EnableHistory = n.EnableHistory
	opts.MaxHistory = c.HistoryLimit()
	opts.SoundEnabled = n.SoundEnabled
	opts.DesktopEnabled = n.DesktopEnabled
	if n.DragThreshold > 0 {
		opts.DragThreshold = n.DragThreshold
	}

	if len(n.CustomTypes) > 0 {
		opts.CustomTypes = make(map[string]toast.Type, len(n.CustomTypes))
		for key, ct := range n.CustomTypes {
			prio, _ := toast.ParsePriority(ct.Priority)
			t := toast.Type{
				Style: toast.Style{
					Background: ct.Background,
					Foreground: ct.Foreground,
					Border:     ct.Border,
				},
				DefaultPriority: prio,
			}
			if ct.Duration != nil && *ct.Duration >= 0 {
				d := time.Duration(*ct.Duration) * time.Millisecond
				t.Duration = &d
			}
			opts.CustomTypes[strings.ToUpper(key)] = t
		}
	}

	return opts
}

// HistoryLimit returns max_history with its default applied.
func (c *Config) HistoryLimit() int {
	if c.Notifications.MaxHistory <= 0 {
		return 50
	}
	return c.Notifications.MaxHistory
}

// SoundFor returns the sound file for a type key, falling back to the
// default sound. Empty when nothing is configured.
func (c *Config) SoundFor(typeKey string) string {
	var path string
	switch strings.ToUpper(typeKey) {
	case toast.TypeSuccess:
		path = c.Sounds.Success
	case toast.TypeError:
		path = c.Sounds.Error
	case toast.TypeWarning:
		path = c.Sounds.Warning
	case toast.TypeInfo:
		path = c.Sounds.Info
	default:
		for key, ct := range c.Notifications.CustomTypes {
			if strings.EqualFold(key, typeKey) {
				path = ct.Sound
				break
			}
		}
	}
	if path == "" {
		path = c.Sounds.Default
	}
	return path
}

// Volume returns the sound volume clamped to 0.0-1.0 (default: 1.0).
func (c *Config) Volume() float64 {
	if c.Sounds.Volume == nil {
		return 1
	}
	return min(max(*c.Sounds.Volume, 0), 1)
}
