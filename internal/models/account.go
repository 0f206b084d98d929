// Package models defines the persisted data records of the calculator:
// accounts, calculation history, application settings, and the enums used
// for subscription tiers and houses.
package models

import "time"

// Tier is a subscription level. Pro and ProPlus gate disjoint premium
// feature sets; ProPlus is not a superset of Pro.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPro     Tier = "pro"
	TierProPlus Tier = "pro-plus"
)

// House is one of the four event houses an account can be sorted into.
type House string

const (
	HouseGryffindor House = "gryffindor"
	HouseSlytherin  House = "slytherin"
	HouseRavenclaw  House = "ravenclaw"
	HouseHufflepuff House = "hufflepuff"
)

// Houses lists all houses in display order.
var Houses = []House{HouseGryffindor, HouseSlytherin, HouseRavenclaw, HouseHufflepuff}

// CalculationRecord is one entry of an account's calculation history.
type CalculationRecord struct {
	// Id is a globally unique identifier for the record.
	Id string `json:"id"`

	// Expression is the evaluated input, e.g. "2 + 2".
	Expression string `json:"expression"`

	// Result is the rendered result, e.g. "4".
	Result string `json:"result"`

	// CreatedAt is the evaluation time in UTC.
	CreatedAt time.Time `json:"createdAt"`
}

// Account is a registered user's identity, entitlement, currency, and
// event-progress record. The JSON field names match the persisted document
// format, which is also the backup export format.
type Account struct {
	// Password is the stored credential, compared through a
	// CredentialVerifier. The default verifier keeps the legacy
	// verbatim compare; it is not a security mechanism.
	Password string `json:"password"`

	// IsAdmin marks a privileged account. Set only at bootstrap or by a
	// privileged action, never by self-registration. Admins are exempt
	// from subscription expiry.
	IsAdmin bool `json:"isAdmin"`

	// Tier is the current subscription level.
	Tier Tier `json:"subscriptionType"`

	// RegisteredAt is immutable once set.
	RegisteredAt time.Time `json:"registrationDate"`

	// SubscriptionEnd is the subscription expiry. An account whose expiry
	// is not strictly in the future is expired (admins excepted).
	SubscriptionEnd time.Time `json:"subscriptionEnd"`

	// MagicPoints is the virtual-currency balance. Never negative; mutated
	// only through ledger accrual and debit operations.
	MagicPoints int `json:"magicPoints"`

	// House is set exactly once, together with HasBeenSorted.
	House House `json:"house,omitempty"`

	// HasBeenSorted transitions false -> true at most once, irreversibly.
	HasBeenSorted bool `json:"hasBeenSorted"`

	// PurchasedItems lists owned shop item ids. Unique items appear at
	// most once.
	PurchasedItems []string `json:"purchasedItems"`

	// EventProgress maps a progress category to its counter. Unknown
	// categories are added on first increment.
	EventProgress map[string]int `json:"eventProgress"`

	// History holds calculation records, most recent first.
	History []CalculationRecord `json:"history"`
}

// Owns reports whether the account has purchased the given item.
func (a *Account) Owns(itemID string) bool {
	for _, id := range a.PurchasedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// NewAccount builds a fresh account record. Admin accounts start on the
// ProPlus tier with a seeded point balance, regular accounts on Basic with
// zero. Both get a one-month subscription window from now.
func NewAccount(password string, isAdmin bool, tier Tier, now time.Time) Account {
	points := 0
	if isAdmin {
		points = 1000
	}
	return Account{
		Password:        password,
		IsAdmin:         isAdmin,
		Tier:            tier,
		RegisteredAt:    now,
		SubscriptionEnd: now.AddDate(0, 1, 0),
		MagicPoints:     points,
		PurchasedItems:  []string{},
		EventProgress:   map[string]int{},
		History:         []CalculationRecord{},
	}
}
