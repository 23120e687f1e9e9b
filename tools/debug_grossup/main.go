package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/rothcompare/internal/calculation"
	"github.com/rpgo/rothcompare/internal/config"
	"github.com/rpgo/rothcompare/internal/domain"
)

// debug_grossup prints the gross-up solver trace for the first distribution
// year of a configuration, one row per iteration limit, to show how fast the
// withdrawal converges.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_grossup <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine, err := calc.NewCalculationEngineWithBrackets(cfg.TaxBrackets)
	if err != nil {
		panic(err)
	}
	res, err := engine.RunComparison(context.Background(), cfg.Parameters)
	if err != nil {
		panic(err)
	}

	var first *domain.YearRecord
	for i, r := range res.Traditional.Records {
		if r.Phase == domain.PhaseDistribution {
			first = &res.Traditional.Records[i]
			break
		}
	}
	if first == nil {
		fmt.Println("no distribution years")
		return
	}
	params := res.Parameters
	net := calc.RetirementNeed(params, first.Age)

	// Header
	fmt.Println("MaxIterations,Gross,Tax,Net,Shortfall,Converged")
	for limit := 1; limit <= params.Solver.MaxIterations; limit++ {
		solver := calc.NewWithdrawalSolver(engine.TaxCalc, params.Solver.Tolerance, limit)
		r := solver.Solve(net, params.StandardDeduction)
		fmt.Printf("%d,%s,%s,%s,%s,%t\n", limit, r.Gross.StringFixed(2), r.Tax.StringFixed(2), r.Net().StringFixed(2), net.Sub(r.Net()).StringFixed(4), r.Converged)
		if r.Converged {
			break
		}
	}
	fmt.Printf("age %d: target %s, withdrawal %s, tax %s\n", first.Age, net.StringFixed(2), first.Withdrawal.StringFixed(2), first.TaxPaid.StringFixed(2))
}
