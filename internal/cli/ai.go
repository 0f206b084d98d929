package cli

import (
	"context"
	"os"

	"magicalc/internal/common"
	"magicalc/internal/models"
	"magicalc/internal/responder"
)

// AI prompts for a query and answers it with the canned responder. The
// feature is gated to Pro-tier subscribers; each served reply is recorded
// in history and rewarded.
func (a *App) AI(ctx context.Context) error {
	acc, err := a.currentAccount(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if !a.ent.IsFeatureAllowed(acc, models.TierPro) {
		printlnFn("The AI assistant is available to Pro and Pro+ subscribers only")
		return common.ErrFeatureLocked
	}

	query, err := getSimpleText(a.reader, "Enter your question", os.Stdout)
	if err != nil {
		return err
	}
	if query == "" {
		printlnFn("Please enter a question")
		return nil
	}

	reply := responder.ProcessQuery(query)
	printlnFn(reply)

	a.rewardCalculation(ctx, "AI: "+query, reply, "aiRequests", rewardAIQuery)
	return nil
}
