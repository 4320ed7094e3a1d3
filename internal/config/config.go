package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	uvc "github.com/kevmo314/uvc-util"
)

const envPrefix = "UVC_UTIL"

type Config struct {
	USB struct {
		Timeout            time.Duration `mapstructure:"timeout"`
		DetachKernelDriver bool          `mapstructure:"detach_kernel_driver"`
	} `mapstructure:"usb"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	// Select names the device used when no selection flag ran. At most one
	// field is expected to be set.
	Select struct {
		Name          string `mapstructure:"name"`
		Index         int    `mapstructure:"index"`
		VendorProduct string `mapstructure:"vendor_product"`
		LocationID    string `mapstructure:"location_id"`
	} `mapstructure:"select"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("usb.timeout", uvc.DefaultTimeout)
	v.SetDefault("usb.detach_kernel_driver", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
	v.SetDefault("select.name", "")
	v.SetDefault("select.index", -1)
	v.SetDefault("select.vendor_product", "")
	v.SetDefault("select.location_id", "")
}

// LoadConfig reads path, or when path is empty the first of ./uvc-util.yaml
// and $HOME/.config/uvc-util/uvc-util.yaml. A missing search path file is not
// an error. UVC_UTIL_ environment variables override file values, e.g.
// UVC_UTIL_USB_TIMEOUT=2s.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("uvc-util")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "uvc-util"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.level(); err != nil {
		return nil, err
	}
	if f := cfg.Log.Format; f != "text" && f != "json" {
		return nil, fmt.Errorf("config: log.format %q: want text or json", f)
	}
	return &cfg, nil
}

// Options returns the device options the configuration selects.
func (c *Config) Options() uvc.Options {
	return uvc.Options{
		Timeout:            c.USB.Timeout,
		DetachKernelDriver: c.USB.DetachKernelDriver,
	}
}

func (c *Config) level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return l, nil
}

// Handler builds the slog handler the configuration describes, writing to w.
// debug lowers the level to slog.LevelDebug.
func (c *Config) Handler(w io.Writer, debug bool) slog.Handler {
	level, err := c.level()
	if err != nil {
		level = slog.LevelWarn
	}
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
