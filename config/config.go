package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidMetric is wrapped by every metric configuration error.
var ErrInvalidMetric = errors.New("invalid metric configuration")

type Log struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

type Output struct {
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Table  string `mapstructure:"table" yaml:"table"`
	Report string `mapstructure:"report" yaml:"report"`
}

// Provider selects how a family of metrics is computed: "builtin" runs in
// process, "service" calls URL.
type Provider struct {
	Type    string        `mapstructure:"type" yaml:"type" validate:"oneof=builtin service"`
	URL     string        `mapstructure:"url" yaml:"url" validate:"required_if=Type service,omitempty,url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
}

type Providers struct {
	Sentiment   Provider `mapstructure:"sentiment" yaml:"sentiment"`
	Readability Provider `mapstructure:"readability" yaml:"readability"`
}

type Charts struct {
	Renderer    string        `mapstructure:"renderer" yaml:"renderer" validate:"oneof=png service"`
	URL         string        `mapstructure:"url" yaml:"url" validate:"required_if=Renderer service,omitempty,url"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
	WidthIn     float64       `mapstructure:"width_in" yaml:"width_in" validate:"gt=0"`
	HeightIn    float64       `mapstructure:"height_in" yaml:"height_in" validate:"gt=0"`
	DPI         int           `mapstructure:"dpi" yaml:"dpi" validate:"gt=0"`
	RotationDeg float64       `mapstructure:"rotation_deg" yaml:"rotation_deg"`
	XCaption    string        `mapstructure:"x_caption" yaml:"x_caption"`
}

// Metric is one entry of the ordered metric list.
type Metric struct {
	Name  string `mapstructure:"name" yaml:"name" validate:"required"`
	Kind  string `mapstructure:"kind" yaml:"kind" validate:"metric_kind"`
	Color string `mapstructure:"color" yaml:"color" validate:"chart_color"`
}

type Root struct {
	Log       Log       `mapstructure:"log" yaml:"log"`
	Workers   int       `mapstructure:"workers" yaml:"workers" validate:"min=1"`
	Output    Output    `mapstructure:"output" yaml:"output"`
	Providers Providers `mapstructure:"providers" yaml:"providers"`
	Charts    Charts    `mapstructure:"charts" yaml:"charts"`
	Metrics   []Metric  `mapstructure:"metrics" yaml:"metrics" validate:"min=1,unique=Name,dive"`
}

// DefaultMetrics is the metric list charted when the configuration names
// none.
func DefaultMetrics() []Metric {
	return []Metric{
		{Name: "Polarity", Kind: "polarity", Color: "IndianRed"},
		{Name: "Subjectivity", Kind: "subjectivity", Color: "DarkTurquoise"},
		{Name: "SMOG index", Kind: "smog_index", Color: "GoldenRod"},
		{Name: "Number of words", Kind: "lexicon_count", Color: "LightBlue"},
		{Name: "Lexical variety", Kind: "lexical_variety", Color: "DarkSeaGreen"},
	}
}

// Load reads the configuration. An explicit path must exist; without one,
// speechcharts.yaml is looked up in the working directory and in
// config/<CONFIG_ENV>/, and defaults are used when neither is found.
// SPEECHCHARTS_* environment variables (and a .env file) override both.
func Load(path string) (*Root, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		env := os.Getenv("CONFIG_ENV")
		if env == "" {
			env = "dev"
		}
		v.SetConfigName("speechcharts")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join("config", env))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("speechcharts")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Metrics) == 0 {
		cfg.Metrics = DefaultMetrics()
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Root {
	v := viper.New()
	setDefaults(v)
	var cfg Root
	// defaults alone always decode
	_ = v.Unmarshal(&cfg)
	cfg.Metrics = DefaultMetrics()
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("workers", 4)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.table", "")
	v.SetDefault("output.report", "")

	for _, p := range []string{"providers.sentiment", "providers.readability"} {
		v.SetDefault(p+".type", "builtin")
		v.SetDefault(p+".url", "")
		v.SetDefault(p+".timeout", "30s")
	}

	v.SetDefault("charts.renderer", "png")
	v.SetDefault("charts.url", "")
	v.SetDefault("charts.timeout", "60s")
	v.SetDefault("charts.width_in", 10)
	v.SetDefault("charts.height_in", 5)
	v.SetDefault("charts.dpi", 150)
	v.SetDefault("charts.rotation_deg", 40)
	v.SetDefault("charts.x_caption", "")
}
