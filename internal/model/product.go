package model

import (
	"strconv"
	"time"
)

// Trend is the direction of the most recent price change.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MaxPriceHistory is the current price plus six prior observations.
const MaxPriceHistory = 7

// DateLayout is how calendar dates are stored; DisplayDateLayout is how they are shown.
const (
	DateLayout        = "2006-01-02"
	DisplayDateLayout = "02/01/2006"
)

// CurrencySign prefixes every displayed price.
const CurrencySign = "৳"

// PricePoint is one entry of a product's price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type Product struct {
	BaseModel
	Name        LocalizedText `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	CategoryID  string        `gorm:"type:varchar(50);index;not null" json:"category"`
	Price       float64       `gorm:"not null;default:0" json:"price"`
	Unit        LocalizedText `gorm:"embedded;embeddedPrefix:unit_" json:"unit"`
	LastUpdated string        `gorm:"type:varchar(10);index;not null" json:"last_updated"` // YYYY-MM-DD
	Trend       Trend         `gorm:"type:varchar(10);not null;default:'stable'" json:"trend"`
	PriceChange *float64      `json:"price_change,omitempty"`
	Image       string        `gorm:"type:text" json:"image"`

	// Most-recent-first, at most MaxPriceHistory entries.
	PriceHistory []PricePoint `gorm:"serializer:json;type:jsonb" json:"price_history"`
}

// SeedHistory resets the product to a freshly listed state at its current price.
func (p *Product) SeedHistory(today string) {
	p.LastUpdated = today
	p.Trend = TrendStable
	p.PriceChange = nil
	p.PriceHistory = []PricePoint{{Date: today, Price: p.Price}}
}

// ApplyPrice records a new price observation. A higher price sets the trend
// up, a lower one down; an equal price keeps the previous trend and delta.
func (p *Product) ApplyPrice(price float64, today string) {
	previous := p.Price
	switch {
	case price > previous:
		p.Trend = TrendUp
		delta := price - previous
		p.PriceChange = &delta
	case price < previous:
		p.Trend = TrendDown
		delta := price - previous
		p.PriceChange = &delta
	}

	history := make([]PricePoint, 0, MaxPriceHistory)
	history = append(history, PricePoint{Date: today, Price: price})
	for _, h := range p.PriceHistory {
		if len(history) == MaxPriceHistory {
			break
		}
		history = append(history, h)
	}

	p.Price = price
	p.LastUpdated = today
	p.PriceHistory = history
}

// Clone returns a deep copy, so cached products can be handed out safely.
func (p *Product) Clone() *Product {
	c := *p
	if p.PriceChange != nil {
		v := *p.PriceChange
		c.PriceChange = &v
	}
	c.PriceHistory = append([]PricePoint(nil), p.PriceHistory...)
	return &c
}

// PriceChangeLabel renders the delta with an explicit sign, e.g. "+20" or "-3".
func (p *Product) PriceChangeLabel() string {
	if p.PriceChange == nil {
		return ""
	}
	s := FormatAmount(*p.PriceChange)
	if *p.PriceChange > 0 {
		return "+" + s
	}
	return s
}

// PriceLabel renders "৳140/kg" in lang.
func (p *Product) PriceLabel(lang Language) string {
	return CurrencySign + FormatAmount(p.Price) + "/" + p.Unit.Get(lang)
}

// FormatAmount prints a price without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DisplayDate converts a stored YYYY-MM-DD date to dd/MM/yyyy.
// Unparseable input is returned unchanged.
func DisplayDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(DisplayDateLayout)
}

// PricePointResponse is a history entry ready for display.
type PricePointResponse struct {
	Date        string  `json:"date"`
	DisplayDate string  `json:"display_date"`
	Price       float64 `json:"price"`
}

// ProductResponse is a product projected into one language.
type ProductResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Category           string               `json:"category"`
	CategoryName       string               `json:"category_name"`
	Price              float64              `json:"price"`
	PriceLabel         string               `json:"price_label"`
	Unit               string               `json:"unit"`
	Trend              Trend                `json:"trend"`
	PriceChange        *float64             `json:"price_change,omitempty"`
	PriceChangeLabel   string               `json:"price_change_label,omitempty"`
	LastUpdated        string               `json:"last_updated"`
	LastUpdatedDisplay string               `json:"last_updated_display"`
	Image              string               `json:"image"`
	PriceHistory       []PricePointResponse `json:"price_history"`
}

// ToResponse projects the product into lang.
func (p *Product) ToResponse(lang Language) ProductResponse {
	resp := ProductResponse{
		ID:                 p.ID.String(),
		Name:               p.Name.Get(lang),
		Category:           p.CategoryID,
		Price:              p.Price,
		PriceLabel:         p.PriceLabel(lang),
		Unit:               p.Unit.Get(lang),
		Trend:              p.Trend,
		PriceChange:        p.PriceChange,
		PriceChangeLabel:   p.PriceChangeLabel(),
		LastUpdated:        p.LastUpdated,
		LastUpdatedDisplay: DisplayDate(p.LastUpdated),
		Image:              p.Image,
		PriceHistory:       make([]PricePointResponse, len(p.PriceHistory)),
	}
	if c, ok := FindCategory(p.CategoryID); ok {
		resp.CategoryName = c.Name.Get(lang)
	}
	for i, h := range p.PriceHistory {
		resp.PriceHistory[i] = PricePointResponse{Date: h.Date, DisplayDate: DisplayDate(h.Date), Price: h.Price}
	}
	return resp
}

// ToResponses projects a list of products into lang.
func ToResponses(products []Product, lang Language) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = products[i].ToResponse(lang)
	}
	return out
}

// ProductForm pre-fills the admin edit form: both locales, no audit columns.
type ProductForm struct {
	ID          string        `json:"id"`
	Name        LocalizedText `json:"name"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	Unit        LocalizedText `json:"unit"`
	Image       string        `json:"image"`
	Trend       Trend         `json:"trend"`
	LastUpdated string        `json:"last_updated"`
}

func (p *Product) ToForm() ProductForm {
	return ProductForm{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.CategoryID,
		Price:       p.Price,
		Unit:        p.Unit,
		Image:       p.Image,
		Trend:       p.Trend,
		LastUpdated: p.LastUpdated,
	}
}
