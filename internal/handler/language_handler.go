package handler

import (
	"time"

	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/middleware"
	"bazar-dor-api/internal/model"

	"github.com/gofiber/fiber/v2"
)

const languageCookieTTL = 365 * 24 * time.Hour

type LanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguage sets the language cookie. Without a language in the body it
// toggles the one currently in effect.
// POST /api/v1/language
func SetLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, i18n.KeyErrInvalidJSON)
		}
	}

	next := middleware.Lang(c).Toggle()
	if req.Language != "" {
		lang, ok := model.ParseLanguage(req.Language)
		if !ok {
			return badRequest(c, i18n.KeyErrLanguage)
		}
		next = lang
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.LanguageCookie,
		Value:    string(next),
		Path:     "/",
		Expires:  time.Now().Add(languageCookieTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"language": next})
}
