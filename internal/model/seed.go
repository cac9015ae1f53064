package model

import "time"

// SampleProducts is the starter price list used to seed an empty store.
// Histories cover today and the two previous days.
func SampleProducts(today time.Time) []Product {
	d0 := today.Format(DateLayout)
	d1 := today.AddDate(0, 0, -1).Format(DateLayout)
	d2 := today.AddDate(0, 0, -2).Format(DateLayout)

	change := func(v float64) *float64 { return &v }
	history := func(p0, p1, p2 float64) []PricePoint {
		return []PricePoint{{Date: d0, Price: p0}, {Date: d1, Price: p1}, {Date: d2, Price: p2}}
	}
	kg := LocalizedText{BN: "কেজি", EN: "kg"}

	return []Product{
		{
			Name: LocalizedText{BN: "ডিম", EN: "Eggs"}, CategoryID: "dairy", Price: 140,
			Unit: LocalizedText{BN: "ডজন", EN: "dozen"}, LastUpdated: d0, Trend: TrendUp, PriceChange: change(5),
			Image:        "https://images.unsplash.com/photo-1506976785307-8732e854ad03?w=300",
			PriceHistory: history(140, 135, 135),
		},
		{
			Name: LocalizedText{BN: "আলু", EN: "Potatoes"}, CategoryID: "vegetables", Price: 35,
			Unit: kg, LastUpdated: d0, Trend: TrendStable,
			Image:        "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=300",
			PriceHistory: history(35, 35, 35),
		},
		{
			Name: LocalizedText{BN: "পেঁয়াজ", EN: "Onions"}, CategoryID: "spices", Price: 65,
			Unit: kg, LastUpdated: d0, Trend: TrendDown, PriceChange: change(-3),
			Image:        "https://images.unsplash.com/photo-1508747703725-719777637510?w=300",
			PriceHistory: history(65, 68, 70),
		},
		{
			Name: LocalizedText{BN: "রসুন", EN: "Garlic"}, CategoryID: "spices", Price: 120,
			Unit: kg, LastUpdated: d0, Trend: TrendUp, PriceChange: change(10),
			Image:        "https://images.unsplash.com/photo-1615477550927-6ec8445fcf25?w=300",
			PriceHistory: history(120, 110, 110),
		},
		{
			Name: LocalizedText{BN: "দুধ", EN: "Milk"}, CategoryID: "dairy", Price: 80,
			Unit: LocalizedText{BN: "লিটার", EN: "liter"}, LastUpdated: d0, Trend: TrendStable,
			Image:        "https://images.unsplash.com/photo-1550583724-b2692b85b150?w=300",
			PriceHistory: history(80, 80, 80),
		},
		{
			Name: LocalizedText{BN: "গরুর মাংস", EN: "Beef"}, CategoryID: "meat", Price: 750,
			Unit: kg, LastUpdated: d0, Trend: TrendUp, PriceChange: change(15),
			Image:        "https://images.unsplash.com/photo-1551028150-64b9f398f678?w=300",
			PriceHistory: history(750, 735, 735),
		},
		{
			Name: LocalizedText{BN: "ইলিশ মাছ", EN: "Hilsa Fish"}, CategoryID: "fish", Price: 1200,
			Unit: kg, LastUpdated: d0, Trend: TrendDown, PriceChange: change(-50),
			Image:        "https://images.unsplash.com/photo-1611171711791-b34b41c4f827?w=300",
			PriceHistory: history(1200, 1250, 1250),
		},
	}
}
