package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const envPrefix = "UIKIT"

// Config holds application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui" toml:"ui"`
	Table TableConfig `mapstructure:"table" toml:"table"`
	Data  DataConfig  `mapstructure:"data" toml:"data"`
	Log   LogConfig   `mapstructure:"log" toml:"log"`
}

// UIConfig holds presentation preferences.
type UIConfig struct {
	DarkMode bool   `mapstructure:"dark_mode" toml:"dark_mode"`
	Locale   string `mapstructure:"locale" toml:"locale"`
	Size     string `mapstructure:"size" toml:"size"`
}

// TableConfig holds defaults for the demo table.
type TableConfig struct {
	EmptyMessage  string `mapstructure:"empty_message" toml:"empty_message"`
	SelectionMode string `mapstructure:"selection_mode" toml:"selection_mode"`
}

// DataConfig points at an optional user dataset (csv or json).
type DataConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LogConfig controls the log file. An empty path discards logs.
type LogConfig struct {
	Path  string `mapstructure:"path" toml:"path"`
	Level string `mapstructure:"level" toml:"level"`
}

// Path returns the config file location. UIKIT_CONFIG wins over the default.
func Path() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "uikit", "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ui.dark_mode", true)
	v.SetDefault("ui.locale", "")
	v.SetDefault("ui.size", "md")
	v.SetDefault("table.empty_message", "No data to display")
	v.SetDefault("table.selection_mode", "multiple")
	v.SetDefault("data.path", "")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
}

// Load reads configuration from file and env. Env var overrides use prefix UIKIT_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	path := Path()
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// a missing file is fine, a broken one is not
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.dark_mode", cfg.UI.DarkMode)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.size", cfg.UI.Size)
	v.Set("table.empty_message", cfg.Table.EmptyMessage)
	v.Set("table.selection_mode", cfg.Table.SelectionMode)
	v.Set("data.path", cfg.Data.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Encode writes cfg as TOML, preceded by a comment naming the config file.
func Encode(w io.Writer, cfg Config) error {
	if _, err := fmt.Fprintf(w, "# %s\n", Path()); err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
