package appraisal

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GuildStock_Go/internal/domain"
	"github.com/osse101/GuildStock_Go/internal/logger"
	"github.com/osse101/GuildStock_Go/internal/metrics"
)

// Service defines the daily revaluation business logic
type Service interface {
	// AdvanceDay revalues every item in place by one elapsed day.
	AdvanceDay(ctx context.Context, items []*domain.Item) error
	// AdvanceDays applies AdvanceDay the given number of times.
	AdvanceDays(ctx context.Context, items []*domain.Item, days int) error
}

type service struct{}

// NewService creates a new appraisal service
func NewService() Service {
	return &service{}
}

// AdvanceDay revalues every item in place by one elapsed day.
// Items are independent: each is updated from its own pre-update state, in
// slice order. A record with an unknown category is left untouched and its
// error joined into the return; the remaining records still update.
func (s *service) AdvanceDay(ctx context.Context, items []*domain.Item) error {
	log := logger.FromContext(ctx)

	var errs []error
	for _, item := range items {
		strategy, err := ForCategory(item.Category)
		if err != nil {
			log.Warn(LogMsgUnknownCategory, "item", item.Name, "category", item.Category)
			metrics.UnknownCategoryErrors.Inc()
			errs = append(errs, fmt.Errorf("item %q: %w", item.Name, err))
			continue
		}

		// Both next values read the pre-update record before either field moves.
		wasExpired := item.Expired()
		countdown := strategy.NextCountdown(*item)
		desirability := strategy.NextDesirability(*item)
		item.Countdown = countdown
		item.Desirability = desirability

		metrics.ItemsAppraised.WithLabelValues(string(item.Category)).Inc()
		if !wasExpired && item.Expired() {
			metrics.ItemsExpired.WithLabelValues(string(item.Category)).Inc()
		}
	}

	metrics.DaysAdvanced.Inc()
	log.Debug(LogMsgDayAdvanced, "items", len(items), "failed", len(errs))

	if len(errs) > 0 {
		return fmt.Errorf("advance day: %w", errors.Join(errs...))
	}
	return nil
}

// AdvanceDays applies AdvanceDay the given number of times.
func (s *service) AdvanceDays(ctx context.Context, items []*domain.Item, days int) error {
	for day := 0; day < days; day++ {
		if err := s.AdvanceDay(ctx, items); err != nil {
			return fmt.Errorf("day %d: %w", day+1, err)
		}
	}
	return nil
}
