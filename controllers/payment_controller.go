package controllers

import (
	"strings"

	"owsb-app/models"
	"owsb-app/repositories"
	"owsb-app/services"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	service  *services.ProcurementService
	payments *repositories.PaymentRepository
}

func NewPaymentController(service *services.ProcurementService, payments *repositories.PaymentRepository) *PaymentController {
	return &PaymentController{service: service, payments: payments}
}

// GetAllPayments supports ?status= and ?search= filters.
func (c *PaymentController) GetAllPayments(ctx *fiber.Ctx) error {
	status := ctx.Query("status")
	search := strings.ToLower(ctx.Query("search"))

	var result []models.Payment
	for _, p := range c.payments.List() {
		if status != "" && !strings.EqualFold(string(p.Status), status) {
			continue
		}
		if search != "" && !matchesPayment(p, search) {
			continue
		}
		result = append(result, p)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payments found", "data": result})
}

func matchesPayment(p models.Payment, search string) bool {
	for _, field := range []string{p.ID, p.PONumber, p.ItemCode, p.SupplierID, p.SupplierName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (c *PaymentController) GetPaymentByID(ctx *fiber.Ctx) error {
	p, err := c.payments.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment found", "data": p})
}

// MarkPaid settles the payment. Repeating the call succeeds without
// changing anything.
func (c *PaymentController) MarkPaid(ctx *fiber.Ctx) error {
	changed, err := c.service.MarkPaid(actorID(ctx), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	if !changed {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment not found or already paid."})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Payment marked as paid"})
}
