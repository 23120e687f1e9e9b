package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rothcompare",
		Short: "Compare a traditional 401(k) with a Roth IRA",
		Long: `rothcompare projects the same savings plan through a traditional (pre-tax)
401(k) and a Roth (post-tax) IRA, year by year until the age ceiling.

Traditional withdrawals are grossed up so that the after-tax amount covers
retirement expenses; Roth contributions are reduced by the effective tax
rate on salary.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().Bool("debug", false, "Log every simulated year to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(),
		newCompareCmd(),
		newTaxCmd(),
		newGrossUpCmd(),
		newBracketsCmd(),
	)
	return rootCmd
}
