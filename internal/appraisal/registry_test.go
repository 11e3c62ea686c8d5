package appraisal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildStock_Go/internal/domain"
)

func TestForCategory(t *testing.T) {
	t.Run("resolves every known category", func(t *testing.T) {
		for _, category := range domain.Categories {
			strategy, err := ForCategory(category)
			require.NoError(t, err, "category %s", category)
			assert.NotNil(t, strategy)
		}
	})

	t.Run("returns shared instances", func(t *testing.T) {
		first, err := ForCategory(domain.CategoryNormal)
		require.NoError(t, err)
		second, err := ForCategory(domain.CategoryNormal)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("fails on unknown category", func(t *testing.T) {
		strategy, err := ForCategory(domain.Category("cursed_relic"))

		assert.Nil(t, strategy)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
		assert.Contains(t, err.Error(), "cursed_relic")
	})
}
