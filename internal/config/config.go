// Package config loads CLI settings from defaults, an optional receipt.yaml,
// RECEIPT_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Input     string
	Template  string
	OutputDir string
	Strategy  string
	Open      bool
	Currency  string

	Log    LogConfig
	Chrome ChromeConfig
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level    string
	Encoding string
}

// ChromeConfig tunes the headless browser used by the html strategy.
type ChromeConfig struct {
	Path         string
	NoSandbox    bool
	AutoDownload bool
	Timeout      time.Duration
}

// Viper keys.
const (
	KeyInput        = "input"
	KeyTemplate     = "template"
	KeyOutputDir    = "output_dir"
	KeyStrategy     = "strategy"
	KeyOpen         = "open"
	KeyCurrency     = "currency"
	KeyLogLevel     = "log.level"
	KeyLogEncoding  = "log.encoding"
	KeyChromePath   = "chrome.path"
	KeyNoSandbox    = "chrome.no_sandbox"
	KeyAutoDownload = "chrome.auto_download"
	KeyTimeout      = "chrome.timeout"
)

// SetDefaults registers the built-in values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyInput, "products.csv")
	v.SetDefault(KeyTemplate, "template.html")
	v.SetDefault(KeyOutputDir, "output")
	v.SetDefault(KeyStrategy, "html")
	v.SetDefault(KeyOpen, true)
	v.SetDefault(KeyCurrency, "₽")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogEncoding, "console")
	v.SetDefault(KeyChromePath, "")
	v.SetDefault(KeyNoSandbox, false)
	v.SetDefault(KeyAutoDownload, false)
	v.SetDefault(KeyTimeout, 30*time.Second)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("RECEIPT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads path into v. An empty path looks for receipt.yaml in the
// working directory and tolerates its absence.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("receipt")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load extracts a Config from v.
func Load(v *viper.Viper) Config {
	return Config{
		Input:     v.GetString(KeyInput),
		Template:  v.GetString(KeyTemplate),
		OutputDir: v.GetString(KeyOutputDir),
		Strategy:  v.GetString(KeyStrategy),
		Open:      v.GetBool(KeyOpen),
		Currency:  v.GetString(KeyCurrency),
		Log: LogConfig{
			Level:    v.GetString(KeyLogLevel),
			Encoding: v.GetString(KeyLogEncoding),
		},
		Chrome: ChromeConfig{
			Path:         strings.TrimSpace(v.GetString(KeyChromePath)),
			NoSandbox:    v.GetBool(KeyNoSandbox),
			AutoDownload: v.GetBool(KeyAutoDownload),
			Timeout:      v.GetDuration(KeyTimeout),
		},
	}
}
