package appraisal

import "github.com/osse101/GuildStock_Go/internal/domain"

// normalStrategy: loses 1 desirability per day, 2 once expired.
type normalStrategy struct{ baseStrategy }

func (normalStrategy) NextDesirability(item domain.Item) int {
	step := 1
	if item.Expired() {
		step = 2
	}
	return clampDesirability(item.Desirability - step)
}

// agedCheeseStrategy: gains 1 desirability per day, 2 once expired.
type agedCheeseStrategy struct{ baseStrategy }

func (agedCheeseStrategy) NextDesirability(item domain.Item) int {
	step := 1
	if item.Expired() {
		step = 2
	}
	return clampDesirability(item.Desirability + step)
}

// legendaryTokenStrategy: immune to the passage of time. Desirability stays
// pinned at 80 and the countdown never moves.
type legendaryTokenStrategy struct{}

func (legendaryTokenStrategy) NextCountdown(item domain.Item) int {
	return item.Countdown
}

func (legendaryTokenStrategy) NextDesirability(item domain.Item) int {
	return LegendaryDesirability
}

// eventPassStrategy: desirability climbs as the event approaches, then the
// pass is worthless. Countdown 0 entering the update means the event is
// today; after today the pass has no buyer, so it drops with this update.
type eventPassStrategy struct{ baseStrategy }

func (eventPassStrategy) NextDesirability(item domain.Item) int {
	if item.Countdown <= 0 {
		return MinDesirability
	}
	switch {
	case item.Countdown <= EventPassFinalThreshold:
		return clampDesirability(item.Desirability + 3)
	case item.Countdown <= EventPassMidThreshold:
		return clampDesirability(item.Desirability + 2)
	default:
		return clampDesirability(item.Desirability + 1)
	}
}

// enchantedGoodStrategy: enchantments fade twice as fast as normal wear.
type enchantedGoodStrategy struct{ baseStrategy }

func (enchantedGoodStrategy) NextDesirability(item domain.Item) int {
	step := 2
	if item.Expired() {
		step = 4
	}
	return clampDesirability(item.Desirability - step)
}
