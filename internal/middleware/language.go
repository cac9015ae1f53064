package middleware

import (
	"bazar-dor-api/internal/model"

	"github.com/gofiber/fiber/v2"
)

// LanguageCookie holds the visitor's language between requests.
const LanguageCookie = "lang"

const langKey = "lang"

// Language resolves the request language from ?lang=, then the cookie,
// then def.
func Language(def model.Language) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := def
		if l, ok := model.ParseLanguage(c.Query("lang")); ok {
			lang = l
		} else if l, ok := model.ParseLanguage(c.Cookies(LanguageCookie)); ok {
			lang = l
		}
		c.Locals(langKey, lang)
		return c.Next()
	}
}

// Lang returns the language chosen by Language, or Bangla when the
// middleware did not run.
func Lang(c *fiber.Ctx) model.Language {
	if l, ok := c.Locals(langKey).(model.Language); ok {
		return l
	}
	return model.LangBN
}
