package services

import (
	"time"

	"magicalc/internal/models"
	"magicalc/internal/timeutil"
)

// Entitlements derives subscription status and feature visibility from an
// account and the current time. It holds no mutable state.
type Entitlements struct {
	clock timeutil.Clock
}

// NewEntitlements builds the entitlement engine on the given clock.
func NewEntitlements(clock timeutil.Clock) *Entitlements {
	return &Entitlements{clock: clock}
}

// ResolveStatus reports the account's tier, whether gated features are
// currently usable, and the number of whole-or-partial days remaining.
// Admins are always active; for everyone else the subscription is active
// only while the expiry is strictly in the future. An expiry of exactly
// now counts as expired.
func (e *Entitlements) ResolveStatus(acc models.Account) models.SubscriptionStatus {
	if acc.IsAdmin {
		return models.SubscriptionStatus{Tier: acc.Tier, Active: true}
	}

	now := e.clock.Now()
	remaining := acc.SubscriptionEnd.Sub(now)

	days := int((remaining + 24*time.Hour - time.Nanosecond) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}

	return models.SubscriptionStatus{
		Tier:          acc.Tier,
		Active:        remaining > 0,
		DaysRemaining: days,
	}
}

// IsFeatureAllowed reports whether the account may use a feature of the
// given tier. Basic features are open to everyone. Pro features need an
// active subscription on the Pro or ProPlus tier. ProPlus features need
// the ProPlus tier exactly: Pro and ProPlus expose disjoint premium sets,
// not nested ones.
func (e *Entitlements) IsFeatureAllowed(acc models.Account, feature models.Tier) bool {
	switch feature {
	case models.TierBasic:
		return true
	case models.TierPro:
		status := e.ResolveStatus(acc)
		return status.Active && (acc.Tier == models.TierPro || acc.Tier == models.TierProPlus)
	case models.TierProPlus:
		status := e.ResolveStatus(acc)
		return status.Active && acc.Tier == models.TierProPlus
	default:
		return false
	}
}
