package controllers

import (
	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	reports *services.ReportService
}

func NewDashboardController(reports *services.ReportService) *DashboardController {
	return &DashboardController{reports: reports}
}

// GetDashboard returns the counters every role dashboard is built from.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard",
		"data": fiber.Map{
			"role":    role,
			"summary": c.reports.Summary(),
		},
	})
}
