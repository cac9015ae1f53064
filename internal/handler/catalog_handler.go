package handler

import (
	"bazar-dor-api/internal/catalog"
	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/middleware"
	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetCategories
// GET /api/v1/categories
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	cats := h.service.Categories()
	out := make([]model.CategoryResponse, len(cats))
	for i, cat := range cats {
		out[i] = cat.ToResponse(lang)
	}
	return c.JSON(out)
}

// GetProducts lists the catalog, narrowed by ?q= and ?category=.
// GET /api/v1/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	products, err := h.service.Search(c.UserContext(), c.Query("q"), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{
		"data":  model.ToResponses(products, lang),
		"count": len(products),
		"empty": len(products) == 0,
	}
	if len(products) == 0 {
		resp["message"] = i18n.T(lang, i18n.KeyNoResults)
	}
	return c.JSON(resp)
}

type insightsResponse struct {
	catalog.Insights
	AveragePriceLabel string `json:"average_price_label"`
}

// GetInsights
// GET /api/v1/insights
func (h *CatalogHandler) GetInsights(c *fiber.Ctx) error {
	ins, err := h.service.Insights(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(insightsResponse{
		Insights:          ins,
		AveragePriceLabel: model.CurrencySign + model.FormatAmount(ins.AveragePrice),
	})
}

// GetTrends returns the increase and decrease tables.
// GET /api/v1/trends
func (h *CatalogHandler) GetTrends(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	trends, err := h.service.Trends(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"increases": model.ToResponses(trends.Increases, lang),
		"decreases": model.ToResponses(trends.Decreases, lang),
	})
}

// GetLabels
// GET /api/v1/labels
func (h *CatalogHandler) GetLabels(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	return c.JSON(fiber.Map{"language": lang, "labels": i18n.Labels(lang)})
}
