package controllers

import (
	"strings"

	"owsb-app/models"
	"owsb-app/repositories"
	"owsb-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type PurchaseOrderController struct {
	service *services.ProcurementService
	orders  *repositories.PurchaseOrderRepository
}

func NewPurchaseOrderController(service *services.ProcurementService, orders *repositories.PurchaseOrderRepository) *PurchaseOrderController {
	return &PurchaseOrderController{service: service, orders: orders}
}

// GetAllPurchaseOrders supports ?status= and ?search= filters.
func (c *PurchaseOrderController) GetAllPurchaseOrders(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	search := strings.ToLower(ctx.Query("search"))

	var result []models.PurchaseOrder
	for _, po := range c.orders.List() {
		if status != "" && !strings.EqualFold(string(po.Status), status) {
			continue
		}
		if search != "" && !matchesOrder(po, search) {
			continue
		}
		result = append(result, po)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase orders found", "data": result})
}

func matchesOrder(po models.PurchaseOrder, search string) bool {
	for _, field := range []string{po.ID, po.RequisitionID, po.ItemCode, po.ItemName, po.SupplierID} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (c *PurchaseOrderController) GetPurchaseOrderByID(ctx *fiber.Ctx) error {
	po, err := c.orders.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase order found", "data": po})
}

// DecidePurchaseOrder is the finance approval on an Issued order.
func (c *PurchaseOrderController) DecidePurchaseOrder(ctx *fiber.Ctx) error {
	var input services.OrderDecisionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	po, err := c.service.DecidePurchaseOrder(actorID(ctx), ctx.Params("id"), input)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase order " + string(po.Status), "data": po})
}

// MarkDelivered books the goods of an approved order into stock.
func (c *PurchaseOrderController) MarkDelivered(ctx *fiber.Ctx) error {
	po, err := c.service.MarkDelivered(actorID(ctx), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery recorded", "data": po})
}

// VerifyDelivery confirms a delivered order and opens its payment.
func (c *PurchaseOrderController) VerifyDelivery(ctx *fiber.Ctx) error {
	payment, err := c.service.VerifyDelivery(actorID(ctx), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Delivery verified, payment created", "data": payment})
}
