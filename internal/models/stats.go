package models

// SystemStats is a pure aggregation over the whole account collection,
// shown on the admin panel.
type SystemStats struct {
	TotalUsers           int `json:"totalUsers"`
	AdminUsers           int `json:"adminUsers"`
	RegularUsers         int `json:"regularUsers"`
	SortedUsers          int `json:"sortedUsers"`
	TotalCalculations    int `json:"totalCalculations"`
	TotalMagicPoints     int `json:"totalMagicPoints"`
	BasicSubscriptions   int `json:"basicSubscriptions"`
	ProSubscriptions     int `json:"proSubscriptions"`
	ProPlusSubscriptions int `json:"proPlusSubscriptions"`
	ExpiredSubscriptions int `json:"expiredSubscriptions"`
}

// SubscriptionStatus is the resolved entitlement state of one account at a
// given moment.
type SubscriptionStatus struct {
	// Tier is the account's subscription level.
	Tier Tier

	// Active reports whether gated features may be used. Always true for
	// admins; otherwise true iff the expiry is strictly in the future.
	Active bool

	// DaysRemaining is ceil(time left / 24h), floored at 0. Zero for
	// admins, whose subscriptions do not expire.
	DaysRemaining int
}
