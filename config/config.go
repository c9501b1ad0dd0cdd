package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rebalance/core"
	"github.com/katalvlaran/rebalance/filter"
)

// Config is the full option surface of the rebalancing engine.
type Config struct {
	// Resolution is the decision period in ticks.
	Resolution int `yaml:"resolution" validate:"required,gt=0"`

	// EffectiveTimeMean and EffectiveTimeStd parameterize the Gaussian
	// transfer time, in ticks.
	EffectiveTimeMean *float64 `yaml:"effective_time_mean" validate:"required"`
	EffectiveTimeStd  *float64 `yaml:"effective_time_std" validate:"required,gte=0"`

	SupplyWaterMarkRatio *float64 `yaml:"supply_water_mark_ratio" validate:"required,gte=0,lte=1"`
	DemandWaterMarkRatio *float64 `yaml:"demand_water_mark_ratio" validate:"required,gte=0,lte=1"`

	ActionScope ActionScope `yaml:"action_scope"`

	// Filters are appended after ActionScope.Filters.
	Filters []Filter `yaml:"filters" validate:"dive"`

	ExtraCostMode *core.CostMode `yaml:"extra_cost_mode" validate:"required,known"`

	// Seed feeds the transfer-time sampler; 0 selects the default seed.
	Seed uint64 `yaml:"seed"`
}

// ActionScope holds the scope ratios and the filter chain.
type ActionScope struct {
	Low     *float64 `yaml:"low" validate:"required,gte=0,lte=1"`
	High    *float64 `yaml:"high" validate:"required,gte=0,lte=1"`
	Filters []Filter `yaml:"filters" validate:"dive"`
}

// Filter is one configured pipeline stage.
type Filter struct {
	Type    *filter.Kind `yaml:"type" validate:"required,known"`
	Num     int          `yaml:"num" validate:"gt=0"`
	Windows int          `yaml:"windows,omitempty" validate:"gte=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("known", validateKnown); err != nil {
		panic(fmt.Sprintf("config: register known validation: %v", err))
	}
}

// validateKnown accepts enum values whose Valid method reports true.
func validateKnown(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(interface{ Valid() bool })
	return ok && v.Valid()
}

// Default returns the options of the reference bike-share scenario.
func Default() Config {
	mode := core.CostSource
	distance, requirements := filter.KindDistance, filter.KindRequirements

	return Config{
		Resolution:           20,
		EffectiveTimeMean:    ptr(20.0),
		EffectiveTimeStd:     ptr(3.0),
		SupplyWaterMarkRatio: ptr(0.8),
		DemandWaterMarkRatio: ptr(0.001),
		ActionScope: ActionScope{
			Low:  ptr(0.1),
			High: ptr(0.9),
			Filters: []Filter{
				{Type: &distance, Num: 20},
				{Type: &requirements, Num: 20},
			},
		},
		ExtraCostMode: &mode,
	}
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: empty document: %w", core.ErrConfiguration)
		}
		return Config{}, fmt.Errorf("config: decode: %w: %w", core.ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks tags first, then the rules tags cannot express.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config: nil: %w", core.ErrConfiguration)
	}
	if err := validate.Struct(c); err != nil {
		return translate(err)
	}
	for i, f := range c.allFilters() {
		if *f.Type == filter.KindTripsWindow && f.Windows <= 0 {
			return fmt.Errorf("config: filter %d (%s): windows must be > 0: %w", i, *f.Type, core.ErrConfiguration)
		}
	}

	return nil
}

// FilterSpecs returns the pipeline stages in execution order:
// action_scope.filters, then top-level filters.
// Call it on a validated Config.
func (c *Config) FilterSpecs() []filter.Spec {
	all := c.allFilters()
	out := make([]filter.Spec, len(all))
	for i, f := range all {
		out[i] = filter.Spec{Kind: *f.Type, Num: f.Num, Windows: f.Windows}
	}

	return out
}

func (c *Config) allFilters() []Filter {
	out := make([]Filter, 0, len(c.ActionScope.Filters)+len(c.Filters))
	out = append(out, c.ActionScope.Filters...)

	return append(out, c.Filters...)
}

// translate folds validator failures into one ErrConfiguration error.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w: %w", core.ErrConfiguration, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s violates %s", fieldPath(fe), rule))
	}

	return fmt.Errorf("config: %s: %w", strings.Join(msgs, "; "), core.ErrConfiguration)
}

// fieldPath drops the root type name from a validator namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Namespace()
	}
	return path
}

func ptr[T any](v T) *T { return &v }
