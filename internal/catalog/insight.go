package catalog

import "bazar-dor-api/internal/model"

// Insights summarises the catalog for the market overview.
type Insights struct {
	TotalProducts int     `json:"total_products"`
	Increasing    int     `json:"increasing"`
	Decreasing    int     `json:"decreasing"`
	Stable        int     `json:"stable"`
	AveragePrice  float64 `json:"average_price"`
	HasData       bool    `json:"has_data"`
}

// Summarize counts products per trend and averages current prices.
// An empty catalog yields a zero average with HasData false.
func Summarize(products []model.Product) Insights {
	var in Insights
	var sum float64
	for _, p := range products {
		sum += p.Price
		switch p.Trend {
		case model.TrendUp:
			in.Increasing++
		case model.TrendDown:
			in.Decreasing++
		case model.TrendStable:
			in.Stable++
		}
	}
	in.TotalProducts = len(products)
	if in.TotalProducts > 0 {
		in.AveragePrice = sum / float64(in.TotalProducts)
		in.HasData = true
	}
	return in
}

// Trends lists the products whose latest price moved, split by direction.
type Trends struct {
	Increases []model.Product
	Decreases []model.Product
}

func SplitTrends(products []model.Product) Trends {
	t := Trends{Increases: []model.Product{}, Decreases: []model.Product{}}
	for _, p := range products {
		switch p.Trend {
		case model.TrendUp:
			t.Increases = append(t.Increases, p)
		case model.TrendDown:
			t.Decreases = append(t.Decreases, p)
		}
	}
	return t
}

// CategoryStat is the admin overview tile for one category.
type CategoryStat struct {
	Category   model.Category `json:"category"`
	Count      int            `json:"count"`
	TotalValue float64        `json:"total_value"`
}

// CategoryBreakdown returns one entry per category, in registry order,
// including categories with no products.
func CategoryBreakdown(products []model.Product, categories []model.Category) []CategoryStat {
	index := make(map[string]int, len(categories))
	stats := make([]CategoryStat, len(categories))
	for i, c := range categories {
		stats[i].Category = c
		index[c.ID] = i
	}
	for _, p := range products {
		i, ok := index[p.CategoryID]
		if !ok {
			continue
		}
		stats[i].Count++
		stats[i].TotalValue += p.Price
	}
	return stats
}
