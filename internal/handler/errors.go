package handler

import (
	"errors"
	"log"

	"bazar-dor-api/internal/i18n"
	"bazar-dor-api/internal/middleware"
	"bazar-dor-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FieldErrorResponse is one invalid form field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// respondError maps a service error to a status and a message in the
// request language.
func respondError(c *fiber.Ctx, err error) error {
	lang := middleware.Lang(c)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		fields := make([]FieldErrorResponse, len(verr.Fields))
		for i, fe := range verr.Fields {
			fields[i] = FieldErrorResponse{
				Field:   fe.Field,
				Tag:     fe.Tag,
				Param:   fe.Param,
				Message: i18n.T(lang, service.FieldMessageKey(fe)),
			}
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  i18n.T(lang, i18n.KeyErrValidation),
			"fields": fields,
		})
	}

	var perr *service.PersistenceError
	if errors.As(err, &perr) {
		log.Printf("store error: %v", perr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": i18n.T(lang, perr.MessageKey())})
	}

	switch {
	case service.IsAuthError(err):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyErrLogin)})
	case errors.Is(err, service.ErrSessionActive):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyErrSession)})
	case errors.Is(err, service.ErrNoSession):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyErrNoSession)})
	case errors.Is(err, service.ErrBusy):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyErrBusy)})
	case errors.Is(err, service.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyErrNotFound)})
	case errors.Is(err, service.ErrConfirmationRequired):
		return c.Status(fiber.StatusPreconditionRequired).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyConfirmDelete)})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": i18n.T(lang, i18n.KeyErrInternal)})
}

// badRequest answers 400 with the message for key in the request language.
func badRequest(c *fiber.Ctx, key string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": i18n.T(middleware.Lang(c), key)})
}
