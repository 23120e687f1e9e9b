package main

import (
	"fmt"
	"os"

	"github.com/rpgo/rothcompare/internal/calculation"
	"github.com/rpgo/rothcompare/internal/config"
	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/rpgo/rothcompare/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// decimalOverrides maps flag names to the parameter each one replaces.
var decimalOverrides = []struct {
	flag  string
	usage string
	field func(*domain.SimulationParameters) *decimal.Decimal
}{
	{"starting-balance", "Balance at the current age", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.StartingBalance }},
	{"contribution", "Annual contribution before retirement", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.AnnualContribution }},
	{"growth-rate", "Annual growth rate as a fraction (0.05 = 5%)", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.AnnualGrowthRate }},
	{"expenses", "Annual after-tax retirement expenses", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.AnnualRetirementExpenses }},
	{"social-security", "Annual Social Security benefit", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.AnnualSocialSecurityBenefit }},
	{"deduction", "Standard deduction applied to traditional withdrawals", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.StandardDeduction }},
	{"salary", "Annual gross salary used for the Roth haircut", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.AnnualGrossSalary }},
	{"tolerance", "Gross-up solver tolerance in dollars", func(p *domain.SimulationParameters) *decimal.Decimal { return &p.Solver.Tolerance }},
}

// intOverrides with positive set cannot be 0, which would read as "use the default".
var intOverrides = []struct {
	flag     string
	usage    string
	positive bool
	field    func(*domain.SimulationParameters) *int
}{
	{"current-age", "Age in the first simulated year", false, func(p *domain.SimulationParameters) *int { return &p.CurrentAge }},
	{"retirement-age", "Age of the growth-only retirement year", false, func(p *domain.SimulationParameters) *int { return &p.RetirementAge }},
	{"ss-age", "Social Security is received from the year after this age", true, func(p *domain.SimulationParameters) *int { return &p.SocialSecurityAge }},
	{"max-age", "Simulation stops before this age", true, func(p *domain.SimulationParameters) *int { return &p.MaxAge }},
	{"max-iterations", "Gross-up solver iteration limit", true, func(p *domain.SimulationParameters) *int { return &p.Solver.MaxIterations }},
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Project both accounts and report the comparison",
		Long: `Project a traditional 401(k) and a Roth IRA from the same parameters.

Parameters come from --config (YAML) or the built-in example scenario, and
any parameter flag overrides the loaded value. Console formats print to
stdout; csv, csv-summary, json, pdf and all write files to --output.`,
		Example: `  rothcompare compare
  rothcompare compare --config plan.yaml --format all --output reports
  rothcompare compare --growth-rate 0.06 --expenses 90000 --format summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}

			engine, err := calculation.NewCalculationEngineWithBrackets(cfg.TaxBrackets)
			if err != nil {
				return err
			}
			engine.SetLogger(loggerFromFlags(cmd))

			results, err := engine.RunComparison(cmd.Context(), cfg.Parameters)
			if err != nil {
				return err
			}
			if n := results.Traditional.Summary.UnconvergedYears; n > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d traditional withdrawal year(s) are approximate\n", n)
			}

			format, _ := cmd.Flags().GetString("format")
			switch output.NormalizeFormatName(format) {
			case "console", "summary":
				return output.Render(cmd.OutOrStdout(), results, format)
			}

			dir, _ := cmd.Flags().GetString("output")
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			files, err := output.GenerateReport(results, format, dir)
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", f)
			}
			return err
		},
	}

	cmd.Flags().StringP("config", "c", "", "YAML configuration file (defaults to the example scenario)")
	cmd.Flags().StringP("format", "f", "console", "Output format: console, summary, csv, csv-summary, json, pdf or all")
	cmd.Flags().StringP("output", "o", ".", "Directory for file formats")
	for _, o := range decimalOverrides {
		cmd.Flags().String(o.flag, "", o.usage)
	}
	for _, o := range intOverrides {
		cmd.Flags().Int(o.flag, 0, o.usage)
	}
	return cmd
}

// loadConfiguration reads --config (or the example scenario), applies flag
// overrides, then fills defaults and validates once, so a flag can replace a
// missing or invalid file value.
func loadConfiguration(cmd *cobra.Command) (*domain.Configuration, error) {
	parser := config.NewInputParser()

	var cfg *domain.Configuration
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := parser.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = parser.CreateExampleConfiguration()
	}

	if err := applyOverrides(cmd, &cfg.Parameters); err != nil {
		return nil, err
	}
	parser.ApplyDefaults(cfg)
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cmd *cobra.Command, p *domain.SimulationParameters) error {
	flags := cmd.Flags()
	for _, o := range decimalOverrides {
		if !flags.Changed(o.flag) {
			continue
		}
		raw, _ := flags.GetString(o.flag)
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid --%s %q: %w", o.flag, raw, err)
		}
		*o.field(p) = v
	}
	for _, o := range intOverrides {
		if !flags.Changed(o.flag) {
			continue
		}
		v, _ := flags.GetInt(o.flag)
		if o.positive && v <= 0 {
			return fmt.Errorf("%w: --%s must be positive (omit it to use the default)", domain.ErrInvalidParameters, o.flag)
		}
		*o.field(p) = v
	}
	return nil
}
