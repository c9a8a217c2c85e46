// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/pricelab/pricelab/pkg/constants"
	"github.com/pricelab/pricelab/pkg/pricing"
	"github.com/pricelab/pricelab/pkg/survey"
	"github.com/pricelab/pricelab/pkg/validation"
	"github.com/spf13/viper"
)

// Grid floor policies. The source dashboards start the price grid at the
// variable cost; some variants start it at the minimum acceptable price.
const (
	GridFloorVariableCost = "variableCost"
	GridFloorMinPrice     = "minPrice"
)

// Configuration holds all configuration for pricelab.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds the demand, cost, segmentation, and survey parameters for
// one independent analysis.
type Scenario struct {
	Name            string
	Active          bool
	Demand          pricing.DemandParameters
	Cost            pricing.CostParameters
	GridSize        int
	GridFloor       string // variableCost (default) or minPrice
	SpecifiedPrices []float64
	Segments        []pricing.Segment
	Survey          *SurveyConfig
	PSMCurve        []survey.CurvePoint
}

// SurveyConfig holds the sampling parameters and the anchor prices whose
// confidence intervals are derived from the margin of error.
type SurveyConfig struct {
	SampleSize     int
	PopulationSize int
	Proportion     float64
	ZScore         float64
	Anchors        []Anchor
}

// Anchor is a named price around which a confidence interval is reported.
type Anchor struct {
	Name  string
	Price float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader, used by the HTTP server.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills in per-scenario defaults that the YAML may omit.
func (c *Configuration) ApplyDefaults() {
	for i := range c.Scenarios {
		scenario := &c.Scenarios[i]
		if scenario.GridSize < constants.MinGridSize {
			scenario.GridSize = constants.DefaultGridSize
		}
		if scenario.GridFloor == "" {
			scenario.GridFloor = GridFloorVariableCost
		}
		if scenario.Survey != nil {
			if scenario.Survey.Proportion == 0 {
				scenario.Survey.Proportion = constants.DefaultProportion
			}
			if scenario.Survey.ZScore == 0 {
				scenario.Survey.ZScore = constants.DefaultZScore
			}
		}
	}
}

// GridFloorValue resolves the configured grid floor policy to a price.
func (s *Scenario) GridFloorValue() (float64, error) {
	switch s.GridFloor {
	case "", GridFloorVariableCost:
		return s.Cost.VariableCost, nil
	case GridFloorMinPrice:
		return s.Demand.MinPrice, nil
	default:
		return 0, fmt.Errorf("unknown grid floor policy %q, expected %s or %s",
			s.GridFloor, GridFloorVariableCost, GridFloorMinPrice)
	}
}

// SurveyOptions converts the survey configuration to the statistics module's
// options.
func (sc *SurveyConfig) SurveyOptions() survey.Options {
	return survey.Options{
		Proportion:     sc.Proportion,
		ZScore:         sc.ZScore,
		PopulationSize: sc.PopulationSize,
	}
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard failures are left to the engine, which reports them
// with the offending inputs.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Scenarios) == 0 {
		warnings = append(warnings, "Configuration defines no scenarios")
	}

	activeCount := 0
	for _, scenario := range c.Scenarios {
		if !scenario.Active {
			continue
		}
		activeCount++

		warnings = append(warnings, validation.ValidateDemandParameters(scenario.Name, scenario.Demand)...)
		warnings = append(warnings, validation.ValidateCostParameters(scenario.Name, scenario.Demand, scenario.Cost)...)

		for _, seg := range scenario.Segments {
			warnings = append(warnings, validation.ValidateSegment(scenario.Name, seg)...)
		}

		if scenario.Survey != nil {
			warnings = append(warnings, validation.ValidateSurvey(scenario.Name, scenario.Survey.SampleSize, scenario.Survey.SurveyOptions())...)
		}

		if len(scenario.PSMCurve) > 0 {
			warnings = append(warnings, validation.ValidatePSMCurve(scenario.Name, scenario.PSMCurve)...)
		}

		if _, err := scenario.GridFloorValue(); err != nil {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s': %s", scenario.Name, err))
		}
	}

	if len(c.Scenarios) > 0 && activeCount == 0 {
		warnings = append(warnings, "No scenarios are active")
	}

	return warnings
}
