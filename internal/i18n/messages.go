// Package i18n holds the fixed Bangla/English UI strings.
package i18n

import "bazar-dor-api/internal/model"

// Message keys used by handlers and services.
const (
	KeyAppTitle        = "app.title"
	KeySearchHint      = "catalog.search_placeholder"
	KeyAllItems        = "catalog.all_items"
	KeyNoResults       = "catalog.no_results"
	KeyUpdated         = "catalog.updated"
	KeyPriceHistory    = "catalog.price_history"
	KeyMarketInsights  = "insights.title"
	KeyAveragePrice    = "insights.average_price"
	KeyPriceIncreases  = "insights.price_increases"
	KeyPriceDecreases  = "insights.price_decreases"
	KeyStableItems     = "insights.stable_items"
	KeyTodaysMarket    = "trends.title"
	KeyItem            = "trends.item"
	KeyChange          = "trends.change"
	KeyCurrentPrice    = "trends.current_price"
	KeyAdminPanel      = "admin.title"
	KeyLogout          = "admin.logout"
	KeyProductList     = "admin.product_list"
	KeyNewProduct      = "admin.new_product"
	KeyEditProduct     = "admin.edit_product"
	KeyConfirmDelete   = "admin.confirm_delete"
	KeyTotalValue      = "admin.total_value"
	KeyLastUpdated     = "admin.last_updated"
	KeyLoading         = "common.loading"
	KeyErrLoad         = "error.load_products"
	KeyErrAdd          = "error.add_product"
	KeyErrUpdate       = "error.update_product"
	KeyErrDelete       = "error.delete_product"
	KeyErrLogin        = "error.login_failed"
	KeyErrValidation   = "error.validation"
	KeyErrNotFound     = "error.product_not_found"
	KeyErrBusy         = "error.busy"
	KeyErrSession      = "error.session_active"
	KeyErrNoSession    = "error.no_session"
	KeyErrUnauthorized = "error.unauthorized"
	KeyErrInternal     = "error.internal"
	KeyErrInvalidJSON  = "error.invalid_json"
	KeyErrInvalidID    = "error.invalid_id"
	KeyErrLanguage     = "error.invalid_language"
	KeyRequired        = "validation.required"
	KeyPriceMin        = "validation.price_min"
	KeyURL             = "validation.url"
	KeyEmail           = "validation.email"
	KeyPasswordMin     = "validation.password_min"
	KeyCategory        = "validation.category"
	KeyInvalidField    = "validation.invalid"
	KeyProductCreated  = "notify.product_created"
	KeyProductUpdated  = "notify.product_updated"
	KeyProductDeleted  = "notify.product_deleted"
	KeySheetName       = "export.sheet"
	KeyCategoryColumn  = "export.category"
	KeyUnitColumn      = "export.unit"
	KeyTrendColumn     = "export.trend"
	KeyTrendUp         = "trend.up"
	KeyTrendDown       = "trend.down"
	KeyTrendStable     = "trend.stable"
)

var messages = map[string]model.LocalizedText{
	KeyAppTitle:        {BN: "বাজার দর", EN: "Market Prices"},
	KeySearchHint:      {BN: "পণ্য খুঁজুন...", EN: "Search items..."},
	KeyAllItems:        {BN: "সব পণ্য", EN: "All Items"},
	KeyNoResults:       {BN: "আপনার অনুসন্ধান অনুযায়ী কোন পণ্য পাওয়া যায়নি।", EN: "No items found matching your criteria."},
	KeyUpdated:         {BN: "আপডেট:", EN: "Updated:"},
	KeyPriceHistory:    {BN: "মূল্যের ইতিহাস", EN: "Price History"},
	KeyMarketInsights:  {BN: "বাজার বিশ্লেষণ", EN: "Market Insights"},
	KeyAveragePrice:    {BN: "গড় মূল্য", EN: "Average Price"},
	KeyPriceIncreases:  {BN: "মূল্য বৃদ্ধি", EN: "Price Increases"},
	KeyPriceDecreases:  {BN: "মূল্য হ্রাস", EN: "Price Decreases"},
	KeyStableItems:     {BN: "স্থিতিশীল পণ্য", EN: "Stable Items"},
	KeyTodaysMarket:    {BN: "আজকের বাজার", EN: "Today's Market Trends"},
	KeyItem:            {BN: "পণ্য", EN: "Item"},
	KeyChange:          {BN: "পরিবর্তন", EN: "Change"},
	KeyCurrentPrice:    {BN: "বর্তমান মূল্য", EN: "Current Price"},
	KeyAdminPanel:      {BN: "অ্যাডমিন প্যানেল", EN: "Admin Panel"},
	KeyLogout:          {BN: "লগআউট", EN: "Logout"},
	KeyProductList:     {BN: "পণ্যের তালিকা", EN: "Product List"},
	KeyNewProduct:      {BN: "নতুন পণ্য যোগ করুন", EN: "Add New Product"},
	KeyEditProduct:     {BN: "পণ্য সম্পাদনা", EN: "Edit Product"},
	KeyConfirmDelete:   {BN: "আপনি কি নিশ্চিত?", EN: "Are you sure?"},
	KeyTotalValue:      {BN: "মোট মূল্য:", EN: "Total Value:"},
	KeyLastUpdated:     {BN: "সর্বশেষ আপডেট", EN: "Last Updated"},
	KeyLoading:         {BN: "লোড হচ্ছে...", EN: "Loading..."},
	KeyErrLoad:         {BN: "পণ্য লোড করতে সমস্যা হয়েছে", EN: "Error loading products"},
	KeyErrAdd:          {BN: "পণ্য যোগ করতে সমস্যা হয়েছে", EN: "Error adding product"},
	KeyErrUpdate:       {BN: "পণ্য আপডেট করতে সমস্যা হয়েছে", EN: "Error updating product"},
	KeyErrDelete:       {BN: "পণ্য মুছে ফেলতে সমস্যা হয়েছে", EN: "Error deleting product"},
	KeyErrLogin:        {BN: "লগইন ব্যর্থ হয়েছে। আপনার ইমেইল এবং পাসওয়ার্ড যাচাই করুন।", EN: "Login failed. Please check your email and password."},
	KeyErrValidation:   {BN: "কিছু তথ্য সঠিক নয়", EN: "Some fields are invalid"},
	KeyErrNotFound:     {BN: "পণ্যটি পাওয়া যায়নি", EN: "Product not found"},
	KeyErrBusy:         {BN: "এই পণ্যের একটি অনুরোধ এখনও চলছে", EN: "A request for this product is still in progress"},
	KeyErrSession:      {BN: "আরেকটি সম্পাদনা চলছে", EN: "Another edit is already open"},
	KeyErrNoSession:    {BN: "এই পণ্যের জন্য কোনো সম্পাদনা খোলা নেই", EN: "No matching edit is open"},
	KeyErrUnauthorized: {BN: "অনুগ্রহ করে লগইন করুন", EN: "Please sign in"},
	KeyErrInternal:     {BN: "সার্ভারে সমস্যা হয়েছে", EN: "Internal server error"},
	KeyErrInvalidJSON:  {BN: "অনুরোধের তথ্য পড়া যায়নি", EN: "Invalid JSON"},
	KeyErrInvalidID:    {BN: "আইডি সঠিক নয়", EN: "Invalid ID"},
	KeyErrLanguage:     {BN: "ভাষা bn অথবা en হতে হবে", EN: "Language must be bn or en"},
	KeyRequired:        {BN: "আবশ্যক", EN: "Required"},
	KeyPriceMin:        {BN: "মূল্য ঋণাত্মক হতে পারে না", EN: "Price must be positive"},
	KeyURL:             {BN: "সঠিক URL দিন", EN: "Must be a valid URL"},
	KeyEmail:           {BN: "সঠিক ইমেইল দিন", EN: "Please enter a valid email"},
	KeyPasswordMin:     {BN: "পাসওয়ার্ড কমপক্ষে ৬ অক্ষরের হতে হবে", EN: "Password must be at least 6 characters"},
	KeyCategory:        {BN: "ক্যাটাগরি নির্বাচন করুন", EN: "Select Category"},
	KeyInvalidField:    {BN: "সঠিক মান দিন", EN: "Invalid value"},
	KeyProductCreated:  {BN: "নতুন পণ্য", EN: "New item"},
	KeyProductUpdated:  {BN: "মূল্য হালনাগাদ", EN: "Price update"},
	KeyProductDeleted:  {BN: "পণ্য সরানো হয়েছে", EN: "Item removed"},
	KeySheetName:       {BN: "মূল্য তালিকা", EN: "Price List"},
	KeyCategoryColumn:  {BN: "ক্যাটাগরি", EN: "Category"},
	KeyUnitColumn:      {BN: "একক", EN: "Unit"},
	KeyTrendColumn:     {BN: "প্রবণতা", EN: "Trend"},
	KeyTrendUp:         {BN: "বৃদ্ধি", EN: "Increasing"},
	KeyTrendDown:       {BN: "হ্রাস", EN: "Decreasing"},
	KeyTrendStable:     {BN: "স্থিতিশীল", EN: "Stable"},
}

// TrendKey maps a trend to its label key.
func TrendKey(t model.Trend) string {
	switch t {
	case model.TrendUp:
		return KeyTrendUp
	case model.TrendDown:
		return KeyTrendDown
	default:
		return KeyTrendStable
	}
}

// T returns the string for key in lang. Unknown keys come back verbatim.
func T(lang model.Language, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	return m.Get(lang)
}

// Labels returns the whole dictionary projected into lang.
func Labels(lang model.Language) map[string]string {
	out := make(map[string]string, len(messages))
	for k, m := range messages {
		out[k] = m.Get(lang)
	}
	return out
}
