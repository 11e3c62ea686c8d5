package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildStock_Go/internal/appraisal"
	"github.com/osse101/GuildStock_Go/internal/domain"
)

func testStock() []*domain.Item {
	return []*domain.Item{
		{ID: "a", Name: "+5 Dexterity Vest", Category: domain.CategoryNormal, Countdown: 10, Desirability: 20},
		{ID: "b", Name: "Aged Cheese Wheel", Category: domain.CategoryAgedCheese, Countdown: 2, Desirability: 0},
		{ID: "c", Name: "Guildmaster's Legendary Token", Category: domain.CategoryLegendaryToken, Countdown: 0, Desirability: 80},
	}
}

func TestInventoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("Items preserves stock order and copies records", func(t *testing.T) {
		svc := NewService(testStock(), appraisal.NewService())

		snapshot := svc.Items()

		require.Len(t, snapshot, 3)
		assert.Equal(t, "a", snapshot[0].ID)
		assert.Equal(t, "b", snapshot[1].ID)
		assert.Equal(t, "c", snapshot[2].ID)

		// Mutating the snapshot must not leak back into the inventory
		snapshot[0].Desirability = 999
		assert.Equal(t, 20, svc.Items()[0].Desirability)
	})

	t.Run("Advance revalues one day", func(t *testing.T) {
		svc := NewService(testStock(), appraisal.NewService())

		require.NoError(t, svc.Advance(ctx))

		snapshot := svc.Items()
		assert.Equal(t, 9, snapshot[0].Countdown)
		assert.Equal(t, 19, snapshot[0].Desirability)
		assert.Equal(t, 1, snapshot[1].Desirability)
		assert.Equal(t, 80, snapshot[2].Desirability)
	})

	t.Run("Run advances several days", func(t *testing.T) {
		svc := NewService(testStock(), appraisal.NewService())

		require.NoError(t, svc.Run(ctx, 3))

		snapshot := svc.Items()
		assert.Equal(t, 7, snapshot[0].Countdown)
		assert.Equal(t, 17, snapshot[0].Desirability)
		// Cheese: +1 each day; countdown 0 entering day three still counts as fresh
		assert.Equal(t, -1, snapshot[1].Countdown)
		assert.Equal(t, 3, snapshot[1].Desirability)
	})
}
