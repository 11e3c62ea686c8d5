package inventory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GuildStock_Go/internal/domain"
)

func TestCategoryLabel(t *testing.T) {
	tests := []struct {
		category domain.Category
		want     string
	}{
		{domain.CategoryNormal, "Normal"},
		{domain.CategoryAgedCheese, "Aged Cheese"},
		{domain.CategoryLegendaryToken, "Legendary Token"},
		{domain.CategoryEventPass, "Event Pass"},
		{domain.CategoryEnchantedGood, "Enchanted Good"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryLabel(tt.category))
	}
}

func TestWriteReport(t *testing.T) {
	items := []domain.Item{
		{Name: "+5 Dexterity Vest", Category: domain.CategoryNormal, Countdown: 10, Desirability: 20},
		{Name: "Enchanted Mana Cake", Category: domain.CategoryEnchantedGood, Countdown: -1, Desirability: 0},
	}

	var buf strings.Builder
	require.NoError(t, WriteReport(&buf, 4, items))
	out := buf.String()

	assert.Contains(t, out, "-- day 4 --")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "+5 Dexterity Vest")
	assert.Contains(t, out, "Enchanted Good")

	// One header line, one line per item, plus the day banner
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}
