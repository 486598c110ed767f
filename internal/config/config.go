// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ColonelBlimp/crashtrace/internal/signames"
)

const (
	AppName       = "crashtrace"
	ConfigType    = "yaml"
	DefaultConfig = `# Crash Trace Configuration

# Output
output_path: ""         # File for crash backtraces ("" = stderr)
                        # Opened lazily on the first crash; if it cannot be
                        # opened, output falls back to stderr

# Signals to intercept (symbolic names, SIG prefix optional)
signals:
  - ILL
  - SEGV
  - BUS
  - FPE

# Backtrace
max_frames: 64          # Frame cap for the stack walk (1-1024)
demangle: true          # Demangle $s/$S-prefixed symbol names

# Diagnostics
debug: false            # Enable debug output
`
)

// Settings holds all application configuration
type Settings struct {
	// Output
	OutputPath string `mapstructure:"output_path"`

	// Signals to intercept, as symbolic names
	Signals []string `mapstructure:"signals"`

	// Backtrace
	MaxFrames int  `mapstructure:"max_frames"`
	Demangle  bool `mapstructure:"demangle"`

	// Diagnostics
	Debug bool `mapstructure:"debug"`
}

// Init initializes Viper with defaults and config file.
// Config file search order: current directory, then ~/.config/crashtrace/
func Init() error {
	// Set defaults
	viper.SetDefault("output_path", "")
	viper.SetDefault("signals", []string{"ILL", "SEGV", "BUS", "FPE"})
	viper.SetDefault("max_frames", 64)
	viper.SetDefault("demangle", true)
	viper.SetDefault("debug", false)

	// Support both config.yaml and .config.yaml
	viper.SetConfigType(ConfigType)

	// Priority order: current directory first, then XDG config
	viper.AddConfigPath(".")

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	viper.AddConfigPath(filepath.Join(configDir, AppName))

	// Try .config.yaml first (hidden file), then config.yaml
	viper.SetConfigName(".config")
	if err = viper.ReadInConfig(); err != nil {
		// Try config.yaml as fallback
		viper.SetConfigName("config")
		err = viper.ReadInConfig()
	}

	// Read config file - if not found, create default in XDG config dir
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// No config found - create default in ~/.config/crashtrace/
			xdgConfigPath := filepath.Join(configDir, AppName)
			if err = ensureConfigExists(xdgConfigPath); err != nil {
				return err
			}
			// Read the newly created config
			if err = viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		} else {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func ensureConfigExists(configPath string) error {
	configFile := filepath.Join(configPath, "config.yaml")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err = os.MkdirAll(configPath, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err = os.WriteFile(configFile, []byte(DefaultConfig), 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}
	return nil
}

// Get returns the current settings
func Get() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Validate checks that all settings are within acceptable ranges
func (s *Settings) Validate() error {
	var errs []error

	if s.MaxFrames < 1 || s.MaxFrames > 1024 {
		errs = append(errs, fmt.Errorf("max_frames must be between 1 and 1024, got %d", s.MaxFrames))
	}

	if len(s.Signals) == 0 {
		errs = append(errs, errors.New("signals must name at least one signal"))
	}
	for _, name := range s.Signals {
		if _, err := signames.Lookup(name); err != nil {
			errs = append(errs, fmt.Errorf("signals: %w", err))
		}
	}

	// output_path is deliberately not validated: the file is opened
	// lazily at crash time and an unopenable path degrades to stderr.

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
