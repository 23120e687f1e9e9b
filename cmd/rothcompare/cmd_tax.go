package main

import (
	"fmt"

	"github.com/rpgo/rothcompare/internal/calculation"
	"github.com/rpgo/rothcompare/internal/config"
	"github.com/rpgo/rothcompare/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newTaxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax <taxable-income>",
		Short: "Compute federal tax on a taxable income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			income, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			taxCalc, err := taxCalculatorFromFlags(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Taxable income:  %s\n", output.FormatCurrency(income))
			fmt.Fprintf(out, "Tax:             %s\n", output.FormatCurrency(taxCalc.CalculateTax(income)))
			fmt.Fprintf(out, "Marginal rate:   %s\n", output.FormatPercentage(taxCalc.MarginalRate(income)))
			fmt.Fprintf(out, "Effective rate:  %s\n", output.FormatPercentage(taxCalc.EffectiveRate(income)))
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Take tax brackets from this YAML configuration")
	return cmd
}

func newGrossUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grossup <net-amount>",
		Short: "Find the pre-tax withdrawal that nets an amount after tax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			deduction, err := decimalFlag(cmd, "deduction")
			if err != nil {
				return err
			}
			tolerance, err := decimalFlag(cmd, "tolerance")
			if err != nil {
				return err
			}
			maxIterations, _ := cmd.Flags().GetInt("max-iterations")

			taxCalc, err := taxCalculatorFromFlags(cmd)
			if err != nil {
				return err
			}
			result := calculation.NewWithdrawalSolver(taxCalc, tolerance, maxIterations).Solve(net, deduction)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Net target:  %s\n", output.FormatCurrency(net))
			fmt.Fprintf(out, "Gross:       %s\n", output.FormatCurrency(result.Gross))
			fmt.Fprintf(out, "Tax:         %s\n", output.FormatCurrency(result.Tax))
			fmt.Fprintf(out, "Net:         %s\n", output.FormatCurrency(result.Net()))
			fmt.Fprintf(out, "Iterations:  %d\n", result.Iterations)
			if !result.Converged {
				fmt.Fprintf(out, "WARNING: did not converge within %d iterations\n", maxIterations)
			}
			return nil
		},
	}
	cmd.Flags().String("deduction", "15000", "Deduction taken off the withdrawal before tax")
	cmd.Flags().String("tolerance", "0.01", "Stop when the net is within this many dollars")
	cmd.Flags().Int("max-iterations", 100, "Iteration limit")
	cmd.Flags().StringP("config", "c", "", "Take tax brackets from this YAML configuration")
	return cmd
}

func newBracketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Print the tax bracket table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			taxCalc, err := taxCalculatorFromFlags(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range taxCalc.Brackets {
				upper := "and up"
				if !b.Unbounded() {
					upper = "to " + output.FormatCurrency(b.Max)
				}
				fmt.Fprintf(out, "%8s  %s %s\n", output.FormatPercentage(b.Rate), output.FormatCurrency(b.Min), upper)
			}
			return nil
		},
	}
	cmd.Flags().StringP("config", "c", "", "Take tax brackets from this YAML configuration")
	return cmd
}

// taxCalculatorFromFlags uses the brackets from --config when given and the
// 2025 MFS table otherwise.
func taxCalculatorFromFlags(cmd *cobra.Command) (*calculation.BracketTaxCalculator, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return calculation.NewDefaultTaxCalculator(), nil
	}
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return calculation.NewBracketTaxCalculator(cfg.TaxBrackets)
}

func parseAmount(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	if v.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount cannot be negative: %s", raw)
	}
	return v, nil
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return v, nil
}
