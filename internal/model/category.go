package model

// Category groups products on the catalog. The set is fixed at build time.
type Category struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
	Icon string        `json:"icon"`
}

// CategoryResponse is a category projected into one language.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DefaultCategories is the category registry, in display order.
var DefaultCategories = []Category{
	{ID: "vegetables", Name: LocalizedText{BN: "সবজি", EN: "Vegetables"}, Icon: "Salad"},
	{ID: "meat", Name: LocalizedText{BN: "মাংস", EN: "Meat"}, Icon: "Beef"},
	{ID: "fish", Name: LocalizedText{BN: "মাছ", EN: "Fish"}, Icon: "Fish"},
	{ID: "dairy", Name: LocalizedText{BN: "দুগ্ধজাত", EN: "Dairy"}, Icon: "Milk"},
	{ID: "spices", Name: LocalizedText{BN: "মসলা", EN: "Spices"}, Icon: "Utensils"},
}

// FindCategory looks up a registry entry by id.
func FindCategory(id string) (Category, bool) {
	for _, c := range DefaultCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ToResponse projects the category into lang.
func (c Category) ToResponse(lang Language) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name.Get(lang), Icon: c.Icon}
}
