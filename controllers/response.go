package controllers

import (
	"errors"

	"owsb-app/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrDuplicate), errors.Is(err, models.ErrStateConflict):
		status = fiber.StatusConflict
	case errors.Is(err, models.ErrInsufficientStock):
		status = fiber.StatusUnprocessableEntity
	}
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": err.Error(),
	})
}

// actorID is the user id the auth middleware stored on the context.
func actorID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals("userID").(string)
	return id
}
