package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/rothcompare/internal/calculation"
	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/rpgo/rothcompare/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct {
	// Now supplies the date used to derive current_age from birth_date.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// DecodeFile reads a YAML file without applying defaults or validating, so
// callers can override fields first.
func (ip *InputParser) DecodeFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Decode(data)
}

// Parse decodes, defaults and validates a YAML document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config, err := ip.Decode(data)
	if err != nil {
		return nil, err
	}

	ip.ApplyDefaults(config)

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Decode unmarshals a YAML document. Optional ages and limits that are written
// out as 0 are rejected here, since a zero field otherwise means "use the default".
func (ip *InputParser) Decode(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var explicit struct {
		Parameters struct {
			SocialSecurityAge *int `yaml:"social_security_age"`
			MaxAge            *int `yaml:"max_age"`
			Solver            struct {
				MaxIterations *int `yaml:"max_iterations"`
			} `yaml:"solver"`
		} `yaml:"parameters"`
	}
	if err := yaml.Unmarshal(data, &explicit); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for name, v := range map[string]*int{
		"social_security_age":   explicit.Parameters.SocialSecurityAge,
		"max_age":               explicit.Parameters.MaxAge,
		"solver.max_iterations": explicit.Parameters.Solver.MaxIterations,
	} {
		if v != nil && *v <= 0 {
			return nil, fmt.Errorf("%w: %s must be positive when set (omit it to use the default)", domain.ErrInvalidParameters, name)
		}
	}

	return &config, nil
}

// ApplyDefaults fills optional fields: the 2025 MFS brackets, solver bounds, the
// Social Security age, the age ceiling and, from birth_date, the current age.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if len(config.TaxBrackets) == 0 {
		config.TaxBrackets = calculation.DefaultBrackets2025MFS()
	}
	p := &config.Parameters
	if p.CurrentAge == 0 && p.BirthDate != nil {
		now := time.Now
		if ip.Now != nil {
			now = ip.Now
		}
		p.CurrentAge = dateutil.Age(*p.BirthDate, now())
	}
	*p = p.WithDefaults()
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Parameters.Validate(); err != nil {
		return err
	}
	if err := ip.validateAges(&config.Parameters); err != nil {
		return err
	}
	if err := calculation.ValidateBrackets(config.TaxBrackets); err != nil {
		return err
	}
	return nil
}

// validateAges checks age ordering beyond what the simulators require
func (ip *InputParser) validateAges(p *domain.SimulationParameters) error {
	if p.RetirementAge >= p.MaxAge {
		return fmt.Errorf("retirement age (%d) must be less than max age (%d)", p.RetirementAge, p.MaxAge)
	}
	if p.MaxAge > 130 {
		return fmt.Errorf("max age cannot exceed 130")
	}
	if p.AnnualGrowthRate.GreaterThan(decimal.NewFromFloat(0.5)) {
		return fmt.Errorf("annual growth rate above 50%% looks like a percentage; use a fraction such as 0.05")
	}
	return nil
}

// CreateExampleConfiguration returns the reference scenario: a 23 year old
// saving $20,000 a year on a $100,000 salary, retiring at 65.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Parameters: domain.SimulationParameters{
			StartingBalance:             decimal.Zero,
			AnnualContribution:          decimal.NewFromInt(20000),
			AnnualGrowthRate:            decimal.NewFromFloat(0.05),
			CurrentAge:                  23,
			RetirementAge:               65,
			AnnualRetirementExpenses:    decimal.NewFromInt(125000),
			AnnualSocialSecurityBenefit: decimal.NewFromInt(15000),
			SocialSecurityAge:           domain.DefaultSocialSecurityAge,
			StandardDeduction:           decimal.NewFromInt(15000), // married filing separately
			AnnualGrossSalary:           decimal.NewFromInt(100000),
			MaxAge:                      domain.DefaultMaxAge,
			Solver: domain.SolverSettings{
				Tolerance:     domain.DefaultSolverTolerance,
				MaxIterations: domain.DefaultSolverMaxIterations,
			},
		},
		TaxBrackets: calculation.DefaultBrackets2025MFS(),
	}
}

// SaveToFile writes a configuration as YAML.
func SaveToFile(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
