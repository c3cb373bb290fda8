package controllers

import (
	"owsb-app/database"
	"owsb-app/repositories"

	"github.com/gofiber/fiber/v2"
)

type HistoryController struct {
	history *repositories.HistoryRepository
}

func NewHistoryController(store *database.Store) *HistoryController {
	return &HistoryController{history: repositories.NewHistoryRepository(store)}
}

// GetHistory lists the audit trail, optionally for one document via ?ref=.
func (c *HistoryController) GetHistory(ctx *fiber.Ctx) error {
	if ref := ctx.Query("ref"); ref != "" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": c.history.ListByRef(ref)})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "History found", "data": c.history.List()})
}
