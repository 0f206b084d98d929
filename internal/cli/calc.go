package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"magicalc/internal/calculator"
	"magicalc/internal/common"
	"magicalc/internal/models"
)

// Formula actions by the tier that unlocks them. Pro and Pro+ formulas are
// separate sets; one does not include the other.
var proFormulas = map[string]bool{
	"quadratic": true, "pythagoras": true, "circle-area": true, "sphere-volume": true,
}

var proPlusFormulas = map[string]bool{
	"fourier": true, "laplace": true, "differential": true, "quantum": true,
}

// Calc reads one calculator input and evaluates it. Three tokens form a
// binary expression ("2 + 3"), two tokens a scientific function call
// ("sqrt 16"), and a single token a premium formula action. Successful
// evaluations are recorded in history and rewarded with magic points.
func (a *App) Calc(ctx context.Context) error {
	line, err := getSimpleText(a.reader, "Enter expression (e.g. '2 + 3', 'sqrt 16' or a formula name)", os.Stdout)
	if err != nil {
		return err
	}

	parts := strings.Fields(line)
	switch len(parts) {
	case 3:
		return a.calcBinary(ctx, parts[0], parts[1], parts[2])
	case 2:
		return a.calcScientific(ctx, parts[0], parts[1])
	case 1:
		return a.calcFormula(ctx, parts[0])
	default:
		printlnFn("Could not parse the expression")
		return nil
	}
}

func (a *App) calcBinary(ctx context.Context, left, op, right string) error {
	x, err1 := strconv.ParseFloat(left, 64)
	y, err2 := strconv.ParseFloat(right, 64)
	if err1 != nil || err2 != nil {
		printlnFn("Operands must be numbers")
		return nil
	}

	result, err := calculator.Evaluate(x, op, y)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	rendered := calculator.FormatResult(result)
	expression := fmt.Sprintf("%s %s %s", left, op, right)
	printlnFn(fmt.Sprintf("%s = %s", expression, rendered))

	a.rewardCalculation(ctx, expression, rendered, "calculations", rewardCalculation)

	// Each calculation also earns the user's house standings points.
	if acc, err := a.currentAccount(ctx); err == nil && acc.HasBeenSorted {
		a.standings.Add(acc.House, rewardCalculation)
	}
	return nil
}

func (a *App) calcScientific(ctx context.Context, fn, arg string) error {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		printlnFn("Operand must be a number")
		return nil
	}

	result, err := calculator.Scientific(fn, v)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	rendered := calculator.FormatResult(result)
	expression := fmt.Sprintf("%s(%s)", fn, arg)
	printlnFn(fmt.Sprintf("%s = %s", expression, rendered))

	a.rewardCalculation(ctx, expression, rendered, "scientific", rewardScientific)
	return nil
}

func (a *App) calcFormula(ctx context.Context, formula string) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		return err
	}

	var result string
	var reward int
	switch {
	case proFormulas[formula]:
		if !a.ent.IsFeatureAllowed(acc, models.TierPro) {
			printlnFn("This feature is available to Pro and Pro+ subscribers only")
			return common.ErrFeatureLocked
		}
		result = calculator.ProFormula(formula)
		reward = rewardProFormula
	case proPlusFormulas[formula]:
		if !a.ent.IsFeatureAllowed(acc, models.TierProPlus) {
			printlnFn("This feature is available to Pro+ subscribers only")
			return common.ErrFeatureLocked
		}
		result = calculator.ProPlusFormula(formula)
		reward = rewardProPlusFormula
	default:
		printlnFn("Unknown formula:", formula)
		return nil
	}

	printlnFn(result)
	a.rewardCalculation(ctx, formula, result, "equations", reward)
	return nil
}

// rewardCalculation records the evaluation in history, bumps the progress
// counter, and accrues the magic-point reward. Failures are logged, not
// surfaced; the result was already shown to the user.
func (a *App) rewardCalculation(ctx context.Context, expression, result, category string, reward int) {
	if err := a.ledger.AppendHistory(ctx, a.userName, expression, result); err != nil {
		a.log.Warn(ctx, "failed to record history", "error", err)
	}
	if err := a.ledger.IncrementProgress(ctx, a.userName, category, 1); err != nil {
		a.log.Warn(ctx, "failed to record progress", "error", err)
	}
	if _, err := a.ledger.Accrue(ctx, a.userName, reward); err != nil {
		a.log.Warn(ctx, "failed to accrue points", "error", err)
	}
}

// History prints the account's calculation records, most recent first.
func (a *App) History(ctx context.Context) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(acc.History) == 0 {
		printlnFn("History is empty")
		return nil
	}
	for _, rec := range acc.History {
		printlnFn(fmt.Sprintf("%s  %s = %s", rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.Expression, rec.Result))
	}
	return nil
}
