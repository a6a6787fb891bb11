package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/speech-analytics/speechcharts/charts"
	"github.com/speech-analytics/speechcharts/metrics"
)

const (
	ProviderBuiltin = "builtin"
	ProviderService = "service"

	RendererPNG     = "png"
	RendererService = "service"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// report fields by their configuration keys
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("metric_kind", func(fl validator.FieldLevel) bool {
			return metrics.Describe(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("chart_color", func(fl validator.FieldLevel) bool {
			_, err := charts.ParseColor(fl.Field().String())
			return err == nil
		})
		validate = v
	})
	return validate
}

// Validate checks the configuration before any input is read. Every problem
// is reported; metric list problems wrap ErrInvalidMetric.
func (c *Root) Validate() error {
	var errs []error

	if err := structValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			errs = append(errs, fieldError(fe))
		}
	}

	// distinct names may still share a chart file, "SMOG index" and
	// "SMOG_index" both draw SMOG_index.png
	files := make(map[string]string, len(c.Metrics))
	for _, m := range c.Metrics {
		file := metrics.Definition{Name: m.Name}.FileName()
		if other, ok := files[file]; ok && other != m.Name {
			errs = append(errs, fmt.Errorf("%w: metrics %q and %q both write %s", ErrInvalidMetric, other, m.Name, file))
			continue
		}
		files[file] = m.Name
	}

	if c.Output.Report != "" && c.Charts.Renderer != RendererPNG {
		errs = append(errs, fmt.Errorf("output.report needs the %q renderer", RendererPNG))
	}

	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	// Namespace is "Root.metrics[0].kind"; drop the type name.
	_, key, _ := strings.Cut(fe.Namespace(), ".")

	var msg string
	switch fe.Tag() {
	case "required", "required_if":
		msg = "is required"
	case "min", "gt", "gte":
		msg = fmt.Sprintf("must be %s %s, got %v", map[string]string{"min": ">=", "gt": ">", "gte": ">="}[fe.Tag()], fe.Param(), fe.Value())
	case "oneof":
		msg = fmt.Sprintf("must be one of %s, got %q", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "unique":
		msg = "names must be unique"
	case "metric_kind":
		msg = fmt.Sprintf("unknown kind %q", fe.Value())
	case "chart_color":
		msg = fmt.Sprintf("unknown color %q", fe.Value())
	default:
		msg = fmt.Sprintf("failed %q check", fe.Tag())
	}

	if key == "metrics" || strings.HasPrefix(key, "metrics[") {
		if key == "metrics" && fe.Tag() == "min" {
			return fmt.Errorf("%w: no metrics configured", ErrInvalidMetric)
		}
		return fmt.Errorf("%w: %s %s", ErrInvalidMetric, key, msg)
	}
	return fmt.Errorf("%s %s", key, msg)
}
