package appraisal

import (
	"fmt"

	"github.com/osse101/GuildStock_Go/internal/domain"
)

// strategies maps each category to its shared strategy value. Strategies are
// stateless, so one instance per category serves the whole process.
var strategies = map[domain.Category]Strategy{
	domain.CategoryNormal:         normalStrategy{},
	domain.CategoryAgedCheese:     agedCheeseStrategy{},
	domain.CategoryLegendaryToken: legendaryTokenStrategy{},
	domain.CategoryEventPass:      eventPassStrategy{},
	domain.CategoryEnchantedGood:  enchantedGoodStrategy{},
}

// ForCategory returns the strategy registered for the given category.
func ForCategory(category domain.Category) (Strategy, error) {
	strategy, ok := strategies[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	return strategy, nil
}
