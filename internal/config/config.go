// Package config defines the optimizer's settings and binds them to command
// line flags and OPTIMIZE_IMAGES_* environment variables. No config file is read.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/creasty/defaults"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/image-optimizer/internal/encode"
	"github.com/ironsheep/image-optimizer/internal/imaging"
)

// EnvPrefix is prepended to every environment variable the config reads.
const EnvPrefix = "OPTIMIZE_IMAGES"

// DefaultPaths is the image list processed when no paths are given.
var DefaultPaths = []string{
	"img/9.jpg",
	"img/IMG_0290.jpg",
	"img/IMG_0261.jpg",
	"img/IMG_0276.jpg",
	"img/IMG_0295-Pano.jpg",
	"img/IMG_0295-Pano-2.jpg",
	"img/intro-bg.jpg",
	"img/me.jpg",
	"img/IMG_0268.jpg",
	"img/IMG_0272.jpg",
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `mapstructure:"log-level" json:"level" yaml:"level" default:"info"`

	// Format is console or json.
	Format string `mapstructure:"log-format" json:"format" yaml:"format" default:"console" validate:"oneof=console json"`

	// File, when set, receives a JSON copy of every log entry.
	File string `mapstructure:"log-file" json:"file" yaml:"file"`

	// MaxSize is the size in megabytes at which the log file is rotated.
	MaxSize int `mapstructure:"log-max-size" json:"maxSize" yaml:"max-size" default:"10" validate:"gte=0"`

	// MaxBackups is the number of rotated log files to keep.
	MaxBackups int `mapstructure:"log-max-backups" json:"maxBackups" yaml:"max-backups" default:"3" validate:"gte=0"`
}

// Config holds everything a batch run needs.
type Config struct {
	// Root resolves relative image paths.
	Root string `mapstructure:"root" json:"root" yaml:"root" default:"."`

	// Paths are the images to process, in order.
	Paths []string `mapstructure:"-" json:"paths" yaml:"paths"`

	// Background is the hex color transparent pixels are flattened onto.
	Background string `mapstructure:"background" json:"background" yaml:"background" default:"#ffffff"`

	// JPEGEncoder selects vips (progressive) or native (baseline).
	JPEGEncoder string `mapstructure:"jpeg-encoder" json:"jpegEncoder" yaml:"jpeg-encoder" default:"vips"`

	// Resizer selects the imaging, bild or nfnt Lanczos implementation.
	Resizer string `mapstructure:"resizer" json:"resizer" yaml:"resizer" default:"imaging"`

	// WebP enables the WebP sibling for every optimized image.
	WebP bool `mapstructure:"webp" json:"webp" yaml:"webp" default:"true"`

	// FlattenWebP composites WebP input over Background like the JPEG path.
	FlattenWebP bool `mapstructure:"flatten-webp" json:"flattenWebp" yaml:"flatten-webp"`

	// Report, when set, is the JSON or YAML file the run summary is written to.
	Report string `mapstructure:"report" json:"report" yaml:"report"`

	LogConfig `mapstructure:",squash" json:"log" yaml:"log"`
}

// Default returns a Config populated from its default tags and the default
// path list.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		// Only reachable with a malformed default tag.
		panic(fmt.Sprintf("config: invalid default tag: %v", err))
	}
	cfg.Paths = append([]string(nil), DefaultPaths...)
	return cfg
}

// RegisterFlags adds every setting to fs with its default value.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("root", d.Root, "directory relative image paths are resolved against")
	fs.String("background", d.Background, "hex color transparent pixels are flattened onto")
	fs.String("jpeg-encoder", d.JPEGEncoder, "jpeg encoder: vips (progressive) or native (baseline)")
	fs.String("resizer", d.Resizer, "resize backend: imaging, bild or nfnt")
	fs.Bool("webp", d.WebP, "write a .webp sibling for every optimized image")
	fs.Bool("flatten-webp", d.FlattenWebP, "flatten transparency onto the background for webp output too")
	fs.String("report", d.Report, "write a JSON or YAML run report to this file")
	fs.String("log-level", d.Level, "log level: debug, info, warn or error")
	fs.String("log-format", d.Format, "log format: console or json")
	fs.String("log-file", d.File, "also write JSON logs to this file, rotated by size")
	fs.Int("log-max-size", d.MaxSize, "log file size in megabytes before rotation")
	fs.Int("log-max-backups", d.MaxBackups, "rotated log files to keep")
}

// Load builds a Config from flags registered with RegisterFlags and the
// environment. Flags set on the command line win over environment variables,
// which win over defaults. Non-empty paths replace DefaultPaths.
func Load(fs *pflag.FlagSet, paths []string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(paths) > 0 {
		cfg.Paths = append([]string(nil), paths...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once. Enumerations backed by a
// constructor are checked through it; the rest use validate tags.
func (c *Config) Validate() error {
	var errs error

	if _, err := imaging.ParseColor(c.Background); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("background: %w", err))
	}
	if _, err := encode.NewJPEGEncoder(c.JPEGEncoder); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("jpeg-encoder: %w", err))
	}
	if _, err := imaging.NewResizer(c.Resizer); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("resizer: %w", err))
	}
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("log-level: %w", err))
	}
	errs = multierr.Append(errs, checkTags(c))
	if c.Report != "" {
		switch strings.ToLower(filepath.Ext(c.Report)) {
		case ".json", ".yaml", ".yml":
		default:
			errs = multierr.Append(errs, fmt.Errorf("report: unsupported extension %q (want .json, .yaml or .yml)", filepath.Ext(c.Report)))
		}
	}

	return errs
}

// ResolvedPaths returns Paths with relative entries joined onto Root.
func (c *Config) ResolvedPaths() []string {
	out := make([]string, len(c.Paths))
	for i, p := range c.Paths {
		if filepath.IsAbs(p) || c.Root == "" {
			out[i] = p
			continue
		}
		out[i] = filepath.Join(c.Root, p)
	}
	return out
}
