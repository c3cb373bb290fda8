package controllers

import (
	"time"

	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

func (c *ReportController) GetSummary(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Summary", "data": c.reports.Summary()})
}

type exportInput struct {
	Range string `json:"range"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// ExportFinancialReport writes the financial text report for the chosen
// date range and returns the path it was written to.
func (c *ReportController) ExportFinancialReport(ctx *fiber.Ctx) error {
	var input exportInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	r, err := services.ResolveRange(input.Range, input.From, input.To, time.Now())
	if err != nil {
		return respondError(ctx, err)
	}
	path, err := c.reports.ExportFinancial(actorID(ctx), r)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Report exported", "data": fiber.Map{"path": path}})
}

// ExportStockReport writes the stock text report.
func (c *ReportController) ExportStockReport(ctx *fiber.Ctx) error {
	path, err := c.reports.ExportStock(actorID(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Report exported", "data": fiber.Map{"path": path}})
}

// DownloadStockExcel streams the stock list as a spreadsheet.
func (c *ReportController) DownloadStockExcel(ctx *fiber.Ctx) error {
	f, err := c.reports.StockWorkbook()
	if err != nil {
		return respondError(ctx, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(ctx, err)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="StockReport_`+time.Now().Format("20060102_150405")+`.xlsx"`)
	return ctx.SendStream(buf)
}
