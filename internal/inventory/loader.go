package inventory

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/osse101/GuildStock_Go/internal/domain"
)

// stockEntry is the on-disk shape of one inventory line.
type stockEntry struct {
	Name         string `json:"name" validate:"required"`
	Category     string `json:"category" validate:"required"`
	Countdown    int    `json:"countdown"`
	Desirability int    `json:"desirability"`
}

var validate = validator.New()

// LoadStock reads the initial inventory from a JSON stock file and assigns
// each item an ID. Entries must name a known category; starting countdown
// and desirability values are accepted as-is, since the daily revaluation
// normalizes out-of-range scores going forward.
func LoadStock(path string) ([]*domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock file %s: %w", path, err)
	}

	var entries []stockEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse stock file %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoStock, path)
	}

	items := make([]*domain.Item, 0, len(entries))
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("%w at index %d: %w", domain.ErrInvalidStockEntry, i, err)
		}

		category := domain.Category(entry.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("%w at index %d: %w: %q", domain.ErrInvalidStockEntry, i, domain.ErrUnknownCategory, entry.Category)
		}

		items = append(items, &domain.Item{
			ID:           uuid.NewString(),
			Name:         entry.Name,
			Category:     category,
			Countdown:    entry.Countdown,
			Desirability: entry.Desirability,
		})
	}

	return items, nil
}
