package services

import "magicalc/internal/models"

// ShopItem describes one purchasable identifier.
type ShopItem struct {
	ID    string
	Title string
	Price int

	// Unique items can be owned at most once per account.
	Unique bool

	// GrantsTier, when set, makes the purchase a subscription product:
	// buying it switches the account to this tier and extends the
	// subscription by one month.
	GrantsTier models.Tier
}

// Shop item identifiers.
const (
	ItemInvisibilityCloak = "invisibility-cloak"
	ItemGryffindorSword   = "gryffindor-sword"
	ItemFireCup           = "fire-cup"
	ItemChocolateFrog     = "chocolate-frog"
	ItemButterbeer        = "butterbeer"
	ItemProSubscription   = "pro-subscription"
	ItemProPlusSub        = "pro-plus-subscription"
)

// Catalog lists everything the shop sells, in display order.
var Catalog = []ShopItem{
	{ID: ItemChocolateFrog, Title: "Chocolate Frog", Price: 30},
	{ID: ItemButterbeer, Title: "Butterbeer", Price: 50},
	{ID: ItemInvisibilityCloak, Title: "Invisibility Cloak", Price: 300, Unique: true},
	{ID: ItemGryffindorSword, Title: "Sword of Gryffindor", Price: 400, Unique: true},
	{ID: ItemFireCup, Title: "Goblet of Fire", Price: 500, Unique: true},
	{ID: ItemProSubscription, Title: "Pro subscription, 1 month", Price: 200, GrantsTier: models.TierPro},
	{ID: ItemProPlusSub, Title: "Pro+ subscription, 1 month", Price: 350, GrantsTier: models.TierProPlus},
}

// FindItem looks an item up by id.
func FindItem(itemID string) (ShopItem, bool) {
	for _, item := range Catalog {
		if item.ID == itemID {
			return item, true
		}
	}
	return ShopItem{}, false
}
