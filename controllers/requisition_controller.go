package controllers

import (
	"strings"

	"owsb-app/models"
	"owsb-app/repositories"
	"owsb-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type RequisitionController struct {
	service *services.ProcurementService
	reqs    *repositories.RequisitionRepository
}

func NewRequisitionController(service *services.ProcurementService, reqs *repositories.RequisitionRepository) *RequisitionController {
	return &RequisitionController{service: service, reqs: reqs}
}

// GetAllRequisitions supports ?status= and ?search= filters.
func (c *RequisitionController) GetAllRequisitions(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	search := strings.ToLower(ctx.Query("search"))

	var result []models.Requisition
	for _, pr := range c.reqs.List() {
		if status != "" && !strings.EqualFold(string(pr.Status), status) {
			continue
		}
		if search != "" && !matchesRequisition(pr, search) {
			continue
		}
		result = append(result, pr)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Requisitions found", "data": result})
}

func matchesRequisition(pr models.Requisition, search string) bool {
	for _, field := range []string{pr.ID, pr.ItemCode, pr.ItemName, pr.SupplierID, pr.SalesManagerID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (c *RequisitionController) GetRequisitionByID(ctx *fiber.Ctx) error {
	pr, err := c.reqs.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Requisition found", "data": pr})
}

func (c *RequisitionController) CreateRequisition(ctx *fiber.Ctx) error {
	var input services.RequisitionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	pr, err := c.service.CreateRequisition(actorID(ctx), input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Requisition created successfully", "data": pr})
}

func (c *RequisitionController) UpdateRequisition(ctx *fiber.Ctx) error {
	var input struct {
		Quantity   int    `json:"quantity" validate:"required"`
		RequiredBy string `json:"required_by" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	pr, err := c.service.EditRequisition(actorID(ctx), ctx.Params("id"), input.Quantity, input.RequiredBy)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Requisition updated successfully", "data": pr})
}

func (c *RequisitionController) DeleteRequisition(ctx *fiber.Ctx) error {
	if err := c.service.DeleteRequisition(actorID(ctx), ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Requisition deleted successfully"})
}

// DecideRequisition applies Approved, Rejected or Cancelled, optionally
// revising quantity, supplier and required-by date in the same call.
func (c *RequisitionController) DecideRequisition(ctx *fiber.Ctx) error {
	var input services.DecisionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	pr, err := c.service.DecideRequisition(actorID(ctx), ctx.Params("id"), input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Requisition " + string(pr.Status), "data": pr})
}
