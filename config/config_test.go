package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves into a fresh directory so no stray speechcharts.yaml or .env
// is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdir(t)

	c, err := Load("")
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, ".", c.Output.Dir)
	assert.Equal(t, ProviderBuiltin, c.Providers.Sentiment.Type)
	assert.Equal(t, 30*time.Second, c.Providers.Readability.Timeout)
	assert.Equal(t, RendererPNG, c.Charts.Renderer)
	assert.Equal(t, 10.0, c.Charts.WidthIn)
	assert.Equal(t, 5.0, c.Charts.HeightIn)
	assert.Equal(t, 150, c.Charts.DPI)
	assert.Equal(t, 40.0, c.Charts.RotationDeg)
	assert.Equal(t, DefaultMetrics(), c.Metrics)
	assert.Equal(t, c, Default())
}

func TestLoadFile(t *testing.T) {
	dir := chdir(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
workers: 2
output:
  dir: charts
charts:
  x_caption: Inaugural addresses
providers:
  sentiment:
    type: service
    url: http://localhost:8000
    timeout: 5s
metrics:
  - {name: Flesch reading ease, kind: flesch_reading_ease, color: SteelBlue}
  - {name: Gunning fog, kind: gunning_fog, color: "#336699"}
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, 2, c.Workers)
	assert.Equal(t, "charts", c.Output.Dir)
	assert.Equal(t, "Inaugural addresses", c.Charts.XCaption)
	assert.Equal(t, 150, c.Charts.DPI)
	assert.Equal(t, ProviderService, c.Providers.Sentiment.Type)
	assert.Equal(t, 5*time.Second, c.Providers.Sentiment.Timeout)
	assert.Equal(t, []Metric{
		{Name: "Flesch reading ease", Kind: "flesch_reading_ease", Color: "SteelBlue"},
		{Name: "Gunning fog", Kind: "gunning_fog", Color: "#336699"},
	}, c.Metrics)
}

func TestLoadLookupAndEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "speechcharts.yaml"), []byte("workers: 3\n"), 0o644))
	t.Setenv("SPEECHCHARTS_OUTPUT_DIR", "/tmp/out")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, "/tmp/out", c.Output.Dir)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	chdir(t)
	_, err := Load("nope.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Root)
		metric bool
	}{
		{"zero workers", func(c *Root) { c.Workers = 0 }, false},
		{"service without url", func(c *Root) { c.Providers.Readability.Type = ProviderService }, false},
		{"unknown provider", func(c *Root) { c.Providers.Sentiment.Type = "oracle" }, false},
		{"unknown renderer", func(c *Root) { c.Charts.Renderer = "svg" }, false},
		{"zero dpi", func(c *Root) { c.Charts.DPI = 0 }, false},
		{"report needs png", func(c *Root) {
			c.Charts.Renderer, c.Charts.URL, c.Output.Report = RendererService, "http://viz", "r.pdf"
		}, false},
		{"no metrics", func(c *Root) { c.Metrics = nil }, true},
		{"unknown kind", func(c *Root) { c.Metrics[0].Kind = "sarcasm" }, true},
		{"duplicate name", func(c *Root) { c.Metrics[1].Name = c.Metrics[0].Name }, true},
		{"empty name", func(c *Root) { c.Metrics[0].Name = "" }, true},
		{"unknown color", func(c *Root) { c.Metrics[0].Color = "Plaid" }, true},
		{"same chart file", func(c *Root) {
			c.Metrics[0].Name, c.Metrics[1].Name = "SMOG index", "SMOG_index"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			if tt.metric {
				assert.ErrorIs(t, err, ErrInvalidMetric)
			} else {
				assert.NotErrorIs(t, err, ErrInvalidMetric)
			}
		})
	}
}

func TestValidateNamesChartFileClash(t *testing.T) {
	c := Default()
	c.Metrics = []Metric{
		{Name: "SMOG index", Kind: "smog_index", Color: "GoldenRod"},
		{Name: "SMOG_index", Kind: "gunning_fog", Color: "LightBlue"},
	}
	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalidMetric)
	assert.Contains(t, err.Error(), "SMOG_index.png")
}
