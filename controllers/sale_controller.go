package controllers

import (
	"strings"

	"owsb-app/models"
	"owsb-app/repositories"
	"owsb-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type SaleController struct {
	service *services.ProcurementService
	sales   *repositories.SaleRepository
}

func NewSaleController(service *services.ProcurementService, sales *repositories.SaleRepository) *SaleController {
	return &SaleController{service: service, sales: sales}
}

func (c *SaleController) GetAllSales(ctx *fiber.Ctx) error {
	search := strings.ToLower(ctx.Query("search"))

	var result []models.Sale
	for _, s := range c.sales.List() {
		if search != "" && !matchesSale(s, search) {
			continue
		}
		result = append(result, s)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sales found", "data": result})
}

func matchesSale(s models.Sale, search string) bool {
	for _, field := range []string{s.ID, s.ItemCode, s.ItemName, s.SalesManagerID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (c *SaleController) GetSaleByID(ctx *fiber.Ctx) error {
	s, err := c.sales.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale found", "data": s})
}

func (c *SaleController) CreateSale(ctx *fiber.Ctx) error {
	var input services.SaleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	sale, err := c.service.RecordSale(actorID(ctx), input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale recorded successfully", "data": sale})
}

func (c *SaleController) UpdateSale(ctx *fiber.Ctx) error {
	var input struct {
		Quantity int    `json:"quantity" validate:"required"`
		Remarks  string `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	sale, err := c.service.EditSale(actorID(ctx), ctx.Params("id"), input.Quantity, input.Remarks)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale updated successfully", "data": sale})
}

func (c *SaleController) DeleteSale(ctx *fiber.Ctx) error {
	if err := c.service.DeleteSale(actorID(ctx), ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sale deleted successfully"})
}
