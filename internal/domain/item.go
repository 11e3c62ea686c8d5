package domain

// Category identifies which daily revaluation rule applies to an item.
// The vocabulary is fixed by the business; records carrying a tag outside
// this set fail strategy lookup with ErrUnknownCategory.
type Category string

const (
	CategoryNormal         Category = "normal"
	CategoryAgedCheese     Category = "aged_cheese"
	CategoryLegendaryToken Category = "legendary_token"
	CategoryEventPass      Category = "event_pass"
	CategoryEnchantedGood  Category = "enchanted_good"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryNormal,
	CategoryAgedCheese,
	CategoryLegendaryToken,
	CategoryEventPass,
	CategoryEnchantedGood,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item represents a single stocked item. It is a plain data holder:
// the appraisal strategies own every rule about how its fields move.
type Item struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	Countdown    int      `json:"countdown"`    // days until expiry, negative once past it
	Desirability int      `json:"desirability"` // quality score, [0, 50] for ordinary categories
}

// Expired reports whether the item is past its expiry date. Measured on the
// pre-update countdown: an item at countdown 0 is on its last good day.
func (i Item) Expired() bool {
	return i.Countdown < 0
}
