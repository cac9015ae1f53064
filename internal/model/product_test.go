package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPriceTrend(t *testing.T) {
	tests := []struct {
		name        string
		newPrice    float64
		wantTrend   Trend
		wantChange  string
		wantHasDiff bool
	}{
		{"increase", 120, TrendUp, "+20", true},
		{"decrease", 80, TrendDown, "-20", true},
		{"tie keeps previous trend", 100, TrendStable, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: 100}
			p.SeedHistory("2026-10-18")

			p.ApplyPrice(tt.newPrice, "2026-10-19")

			assert.Equal(t, tt.wantTrend, p.Trend)
			assert.Equal(t, tt.wantChange, p.PriceChangeLabel())
			assert.Equal(t, tt.wantHasDiff, p.PriceChange != nil)
			assert.Equal(t, tt.newPrice, p.Price)
			assert.Equal(t, "2026-10-19", p.LastUpdated)
			require.Len(t, p.PriceHistory, 2)
			assert.Equal(t, tt.newPrice, p.PriceHistory[0].Price)
		})
	}
}

func TestApplyPriceTieKeepsDirectionAndDelta(t *testing.T) {
	delta := 5.0
	p := &Product{Price: 140, Trend: TrendUp, PriceChange: &delta}

	p.ApplyPrice(140, "2026-10-19")

	assert.Equal(t, TrendUp, p.Trend)
	assert.Equal(t, "+5", p.PriceChangeLabel())
}

func TestApplyPriceTruncatesHistory(t *testing.T) {
	p := &Product{Price: 10}
	p.SeedHistory("2026-10-01")

	for i := 1; i <= 8; i++ {
		p.ApplyPrice(float64(10+i), fmt.Sprintf("2026-10-%02d", i+1))
	}

	require.Len(t, p.PriceHistory, MaxPriceHistory)
	assert.Equal(t, 18.0, p.PriceHistory[0].Price)
	assert.Equal(t, p.Price, p.PriceHistory[0].Price)
	assert.Equal(t, "2026-10-09", p.PriceHistory[0].Date)
	assert.Equal(t, 12.0, p.PriceHistory[6].Price)
}

func TestCloneIsDeep(t *testing.T) {
	delta := 3.0
	p := &Product{Price: 5, PriceChange: &delta, PriceHistory: []PricePoint{{Date: "2026-10-19", Price: 5}}}

	c := p.Clone()
	*c.PriceChange = 9
	c.PriceHistory[0].Price = 99

	assert.Equal(t, 3.0, *p.PriceChange)
	assert.Equal(t, 5.0, p.PriceHistory[0].Price)
}

func TestToResponse(t *testing.T) {
	delta := -3.0
	p := &Product{
		Name:         LocalizedText{BN: "পেঁয়াজ", EN: "Onions"},
		CategoryID:   "spices",
		Price:        65,
		Unit:         LocalizedText{BN: "কেজি", EN: "kg"},
		LastUpdated:  "2026-10-19",
		Trend:        TrendDown,
		PriceChange:  &delta,
		PriceHistory: []PricePoint{{Date: "2026-10-19", Price: 65}, {Date: "2026-10-18", Price: 68}},
	}

	en := p.ToResponse(LangEN)
	assert.Equal(t, "Onions", en.Name)
	assert.Equal(t, "Spices", en.CategoryName)
	assert.Equal(t, "৳65/kg", en.PriceLabel)
	assert.Equal(t, "-3", en.PriceChangeLabel)
	assert.Equal(t, "19/10/2026", en.LastUpdatedDisplay)
	require.Len(t, en.PriceHistory, 2)
	assert.Equal(t, "18/10/2026", en.PriceHistory[1].DisplayDate)

	bn := p.ToResponse(LangBN)
	assert.Equal(t, "পেঁয়াজ", bn.Name)
	assert.Equal(t, "মসলা", bn.CategoryName)
	assert.Equal(t, "৳65/কেজি", bn.PriceLabel)
}

func TestParseLanguage(t *testing.T) {
	l, ok := ParseLanguage(" EN ")
	assert.True(t, ok)
	assert.Equal(t, LangEN, l)

	_, ok = ParseLanguage("fr")
	assert.False(t, ok)

	assert.Equal(t, LangBN, LangEN.Toggle())
	assert.Equal(t, LangEN, LangBN.Toggle())
}

func TestToFormKeepsBothLocales(t *testing.T) {
	p := Product{
		Name:       LocalizedText{BN: "দুধ", EN: "Milk"},
		CategoryID: "dairy",
		Price:      80,
		Unit:       LocalizedText{BN: "লিটার", EN: "liter"},
		Image:      "https://images.example.com/milk.jpg",
	}
	p.CreatedBy = "admin-1"

	form := p.ToForm()
	assert.Equal(t, p.Name, form.Name)
	assert.Equal(t, p.Unit, form.Unit)
	assert.Equal(t, "dairy", form.Category)
	assert.Equal(t, 80.0, form.Price)
}
