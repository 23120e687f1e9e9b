package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/rothcompare/internal/domain"
	"github.com/rpgo/rothcompare/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rothcompare version "+version+"\n", out)
}

func TestTaxCmd(t *testing.T) {
	out, _, err := run(t, "tax", "100000")
	require.NoError(t, err)
	assert.Contains(t, out, "$16,914.00")
	assert.Contains(t, out, "22.00%")
	assert.Contains(t, out, "16.91%")
}

func TestTaxCmd_InvalidAmount(t *testing.T) {
	_, _, err := run(t, "tax", "lots")
	assert.Error(t, err)

	_, _, err = run(t, "tax", "-5")
	assert.Error(t, err)
}

func TestGrossUpCmd(t *testing.T) {
	out, _, err := run(t, "grossup", "110000", "--deduction", "15000")
	require.NoError(t, err)
	assert.Contains(t, out, "Gross:       $130,588.15")
	assert.Contains(t, out, "Tax:         $20,588.15")
	assert.NotContains(t, out, "WARNING")
}

func TestGrossUpCmd_IterationLimit(t *testing.T) {
	out, _, err := run(t, "grossup", "110000", "--max-iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Iterations:  1")
	assert.Contains(t, out, "WARNING: did not converge within 1 iterations")
}

func TestBracketsCmd(t *testing.T) {
	out, _, err := run(t, "brackets")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "$0.00 to $11,925.00")
	assert.Contains(t, lines[6], "37.00%")
	assert.Contains(t, lines[6], "and up")
}

func TestInitThenCompare(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yaml")

	out, _, err := run(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, _, err = run(t, "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "init", path, "--force")
	require.NoError(t, err)

	out, _, err = run(t, "compare", "--config", path, "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Traditional 401(k):")
	assert.Contains(t, out, "Roth IRA:")
	assert.Contains(t, out, "Result: ")
}

func TestCompareCmd_DefaultScenarioConsole(t *testing.T) {
	out, stderr, err := run(t, "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "YEAR BY YEAR")
	assert.Contains(t, out, "$130,588.15")
	assert.Empty(t, stderr)
}

func TestCompareCmd_Verbose(t *testing.T) {
	_, stderr, err := run(t, "compare", "--format", "summary", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "INFO")
	assert.NotContains(t, stderr, "DEBUG")
}

func TestCompareCmd_WritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	out, _, err := run(t, "compare", "--format", "all", "--output", dir)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Wrote "))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestCompareCmd_Overrides(t *testing.T) {
	out, _, err := run(t, "compare", "--format", "summary",
		"--starting-balance", "1000", "--contribution", "0", "--growth-rate", "0",
		"--current-age", "64", "--retirement-age", "64", "--expenses", "500",
		"--social-security", "0", "--max-age", "70")
	require.NoError(t, err)
	// 1000 less 500 a year from 65 runs dry at 66 for the Roth account
	assert.Contains(t, out, "Depleted At Age:    66")
}

func TestCompareCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"Unknown format", []string{"compare", "--format", "xlsx", "--output", t.TempDir()}, output.ErrUnsupportedFormat},
		{"Zero salary", []string{"compare", "--salary", "0"}, domain.ErrInvalidParameters},
		{"Bad decimal", []string{"compare", "--growth-rate", "five"}, nil},
		{"Missing config", []string{"compare", "--config", filepath.Join(t.TempDir(), "none.yaml")}, os.ErrNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestCompareCmd_SolverWarnings(t *testing.T) {
	_, stderr, err := run(t, "compare", "--format", "summary", "--max-iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "WARN ")
	// one per distribution year, ages 66 through 109; the engine's own total is not counted
	assert.Contains(t, stderr, "\n44 traditional withdrawal year(s) are approximate\n")
}

func TestCompareCmd_FlagsOverrideInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	doc := "parameters:\n" +
		"  annual_contribution: 20000\n" +
		"  annual_growth_rate: 0.05\n" +
		"  current_age: 23\n" +
		"  retirement_age: 65\n" +
		"  annual_retirement_expenses: 125000\n" +
		"  annual_social_security_benefit: 15000\n" +
		"  standard_deduction: 15000\n" +
		"  annual_gross_salary: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	_, _, err := run(t, "compare", "--config", path, "--format", "summary")
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)

	out, _, err := run(t, "compare", "--config", path, "--salary", "100000", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Roth IRA:")
}

func TestCompareCmd_RejectsZeroOptionalInts(t *testing.T) {
	for _, flag := range []string{"--ss-age", "--max-age", "--max-iterations"} {
		t.Run(flag, func(t *testing.T) {
			_, _, err := run(t, "compare", "--format", "summary", flag, "0")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidParameters)
			assert.Contains(t, err.Error(), flag+" must be positive")
		})
	}
}
