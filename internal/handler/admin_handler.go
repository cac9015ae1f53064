package handler

import (
	"time"

	"bazar-dor-api/internal/catalog"
	"bazar-dor-api/internal/export"
	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/middleware"
	"bazar-dor-api/internal/model"
	"bazar-dor-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	service service.AdminService
	loc     *time.Location
}

func NewAdminHandler(s service.AdminService, loc *time.Location) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{service: s, loc: loc}
}

// User info from the JWT context (set by RequireAuth)
func getUserID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func getUserName(c *fiber.Ctx) string {
	userName, ok := c.Locals("user_name").(string)
	if !ok {
		return "Unknown"
	}
	return userName
}

func getUserEmail(c *fiber.Ctx) string {
	userEmail, _ := c.Locals("user_email").(string)
	return userEmail
}

func actor(c *fiber.Ctx) model.EventActor {
	return model.EventActor{ID: getUserID(c), Name: getUserName(c), Email: getUserEmail(c)}
}

type categoryStatResponse struct {
	Category   model.CategoryResponse `json:"category"`
	Count      int                    `json:"count"`
	TotalValue float64                `json:"total_value"`
}

func statResponses(stats []catalog.CategoryStat, lang model.Language) []categoryStatResponse {
	out := make([]categoryStatResponse, len(stats))
	for i, s := range stats {
		out[i] = categoryStatResponse{
			Category:   s.Category.ToResponse(lang),
			Count:      s.Count,
			TotalValue: s.TotalValue,
		}
	}
	return out
}

func (h *AdminHandler) overview(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	ov, err := h.service.Overview(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"data":       model.ToResponses(ov.Products, lang),
		"categories": statResponses(ov.Categories, lang),
		"session":    h.service.Session(getUserID(c)),
	})
}

// GetProducts is the admin product table and category overview.
// GET /api/v1/admin/products
func (h *AdminHandler) GetProducts(c *fiber.Ctx) error {
	return h.overview(c)
}

// Refresh reloads the admin view from the store.
// POST /api/v1/admin/products/refresh
func (h *AdminHandler) Refresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return h.overview(c)
}

// GET /api/v1/admin/session
func (h *AdminHandler) GetSession(c *fiber.Ctx) error {
	return c.JSON(h.service.Session(getUserID(c)))
}

// BeginAdd opens the empty product form.
// POST /api/v1/admin/session/new
func (h *AdminHandler) BeginAdd(c *fiber.Ctx) error {
	sess, err := h.service.BeginAdd(getUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sess)
}

// BeginEdit opens the form pre-filled with the product.
// POST /api/v1/admin/session/edit/:id
func (h *AdminHandler) BeginEdit(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, i18n.KeyErrInvalidID)
	}

	product, err := h.service.BeginEdit(c.UserContext(), getUserID(c), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"session": h.service.Session(getUserID(c)), "data": product.ToForm()})
}

// Cancel closes whatever form is open.
// DELETE /api/v1/admin/session
func (h *AdminHandler) Cancel(c *fiber.Ctx) error {
	return c.JSON(h.service.Cancel(getUserID(c)))
}

// POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var in service.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, i18n.KeyErrInvalidJSON)
	}

	product, err := h.service.Create(c.UserContext(), actor(c), &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"data":    product.ToResponse(middleware.Lang(c)),
	})
}

// PUT /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, i18n.KeyErrInvalidID)
	}

	var in service.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, i18n.KeyErrInvalidJSON)
	}

	updated, err := h.service.Update(c.UserContext(), actor(c), productID, &in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Product updated",
		"data":    updated.ToResponse(middleware.Lang(c)),
	})
}

// DeleteProduct removes a product once ?confirm=true is given.
// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, i18n.KeyErrInvalidID)
	}

	if err := h.service.Delete(c.UserContext(), actor(c), productID, c.QueryBool("confirm")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// Export downloads the (optionally category-filtered) list as .xlsx.
// GET /api/v1/admin/products/export
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	ov, err := h.service.Overview(c.UserContext(), c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}

	today := time.Now().In(h.loc).Format(model.DateLayout)
	c.Attachment(export.FileName(today))
	c.Set(fiber.HeaderContentType, export.ContentType)
	return export.WritePriceList(c.Response().BodyWriter(), ov.Products, middleware.Lang(c))
}
