package appraisal

import "github.com/osse101/GuildStock_Go/internal/domain"

// Strategy computes an item's next-day values. Both operations are pure
// reads of the current record; the caller assigns the results, so a single
// shared instance serves every item of its category.
type Strategy interface {
	// NextCountdown returns the countdown after one elapsed day.
	NextCountdown(item domain.Item) int
	// NextDesirability returns the desirability after one elapsed day,
	// computed from the pre-update record.
	NextDesirability(item domain.Item) int
}

// baseStrategy carries the default countdown rule shared by every category
// except legendary tokens: one day closer to expiry.
type baseStrategy struct{}

func (baseStrategy) NextCountdown(item domain.Item) int {
	return item.Countdown - 1
}

// clampDesirability bounds a computed score to the ordinary [0, 50] range.
// The floor wins over any decrement size; the ceiling wins over any boost.
func clampDesirability(desirability int) int {
	if desirability < MinDesirability {
		return MinDesirability
	}
	if desirability > MaxDesirability {
		return MaxDesirability
	}
	return desirability
}
