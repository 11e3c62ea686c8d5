package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/GuildStock_Go/internal/appraisal"
	"github.com/osse101/GuildStock_Go/internal/domain"
	"github.com/osse101/GuildStock_Go/internal/logger"
)

// Service defines the inventory business logic
type Service interface {
	// Items returns a snapshot of the inventory in stock order.
	Items() []domain.Item
	// Advance revalues the whole inventory by one elapsed day.
	Advance(ctx context.Context) error
	// Run advances the inventory by the given number of days.
	Run(ctx context.Context, days int) error
}

type service struct {
	items        []*domain.Item
	appraisalSvc appraisal.Service
}

// NewService creates a new inventory service over the given items.
// The service keeps the slice it is given; callers hand over ownership.
func NewService(items []*domain.Item, appraisalSvc appraisal.Service) Service {
	return &service{
		items:        items,
		appraisalSvc: appraisalSvc,
	}
}

// Items returns a snapshot of the inventory in stock order.
func (s *service) Items() []domain.Item {
	snapshot := make([]domain.Item, 0, len(s.items))
	for _, item := range s.items {
		snapshot = append(snapshot, *item)
	}
	return snapshot
}

// Advance revalues the whole inventory by one elapsed day.
func (s *service) Advance(ctx context.Context) error {
	if err := s.appraisalSvc.AdvanceDay(ctx, s.items); err != nil {
		return fmt.Errorf("failed to advance inventory: %w", err)
	}
	return nil
}

// Run advances the inventory by the given number of days.
func (s *service) Run(ctx context.Context, days int) error {
	log := logger.FromContext(ctx)
	log.Info("Running inventory revaluation", "days", days, "items", len(s.items))

	if err := s.appraisalSvc.AdvanceDays(ctx, s.items, days); err != nil {
		return fmt.Errorf("failed to run inventory revaluation: %w", err)
	}
	return nil
}
