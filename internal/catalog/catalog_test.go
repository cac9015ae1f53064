package catalog

import (
	"strings"
	"testing"
	"time"

	"bazar-dor-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []model.Product {
	return model.SampleProducts(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))
}

func names(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name.EN
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	products := sample()
	assert.Equal(t, products, Filter(products, "", ""))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"english substring any case", "ON", "", []string{"Onions"}},
		{"bangla substring", "মাংস", "", []string{"Beef"}},
		{"category only", "", "dairy", []string{"Eggs", "Milk"}},
		{"query and category", "g", "spices", []string{"Garlic"}},
		{"query outside category", "eggs", "fish", []string{}},
		{"no match", "mango", "", []string{}},
		{"unknown category", "", "fruit", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sample(), tt.query, tt.category)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilterSoundAndComplete(t *testing.T) {
	products := sample()
	queries := []string{"", "a", "I", "ফ", "মাছ", "zz"}
	categories := []string{"", "vegetables", "meat", "fish", "dairy", "spices"}

	for _, q := range queries {
		for _, c := range categories {
			got := Filter(products, q, c)
			kept := map[string]bool{}
			for _, p := range got {
				kept[p.Name.EN] = true
			}
			lq := strings.ToLower(q)
			for _, p := range products {
				matches := MatchesQuery(p, lq) && MatchesCategory(p, c)
				assert.Equal(t, matches, kept[p.Name.EN], "q=%q c=%q product=%s", q, c, p.Name.EN)
			}
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(sample(), "", "spices")
	assert.Equal(t, []string{"Onions", "Garlic"}, names(got))
}

func TestSummarizeScenario(t *testing.T) {
	products := []model.Product{
		{Price: 140, Trend: model.TrendUp},
		{Price: 35, Trend: model.TrendStable},
		{Price: 65, Trend: model.TrendDown},
	}

	in := Summarize(products)

	assert.Equal(t, 3, in.TotalProducts)
	assert.Equal(t, 1, in.Increasing)
	assert.Equal(t, 1, in.Decreasing)
	assert.Equal(t, 1, in.Stable)
	assert.InDelta(t, 80.0, in.AveragePrice, 1e-9)
	assert.True(t, in.HasData)
}

func TestSummarizeEmpty(t *testing.T) {
	in := Summarize(nil)
	assert.Equal(t, Insights{}, in)
	assert.False(t, in.HasData)
}

func TestSummarizeAverage(t *testing.T) {
	products := sample()
	var sum float64
	for _, p := range products {
		sum += p.Price
	}
	assert.InDelta(t, sum/float64(len(products)), Summarize(products).AveragePrice, 1e-9)
}

func TestSplitTrends(t *testing.T) {
	tr := SplitTrends(sample())
	assert.Equal(t, []string{"Eggs", "Garlic", "Beef"}, names(tr.Increases))
	assert.Equal(t, []string{"Onions", "Hilsa Fish"}, names(tr.Decreases))

	empty := SplitTrends(nil)
	assert.NotNil(t, empty.Increases)
	assert.Empty(t, empty.Decreases)
}

func TestCategoryBreakdown(t *testing.T) {
	stats := CategoryBreakdown(sample(), model.DefaultCategories)
	require.Len(t, stats, len(model.DefaultCategories))

	byID := map[string]CategoryStat{}
	for _, s := range stats {
		byID[s.Category.ID] = s
	}
	assert.Equal(t, 2, byID["dairy"].Count)
	assert.InDelta(t, 220.0, byID["dairy"].TotalValue, 1e-9)
	assert.Equal(t, 1, byID["fish"].Count)
	assert.Equal(t, "vegetables", stats[0].Category.ID)
}
