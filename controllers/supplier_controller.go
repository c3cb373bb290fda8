package controllers

import (
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type SupplierController struct {
	suppliers *repositories.SupplierRepository
	items     *repositories.ItemRepository
}

func NewSupplierController(store *database.Store) *SupplierController {
	return &SupplierController{
		suppliers: repositories.NewSupplierRepository(store),
		items:     repositories.NewItemRepository(store),
	}
}

type supplierInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Region       string `json:"region"`
	Rating       string `json:"rating"`
	Specialty1   string `json:"specialty_1"`
	Specialty2   string `json:"specialty_2"`
	Email        string `json:"email"`
	BankInfo     string `json:"bank_info"`
	LeadTime     string `json:"lead_time"`
	LastSupplied string `json:"last_supplied"`
	Active       bool   `json:"active"`
	MaxCapacity  string `json:"max_capacity"`
	Notes        string `json:"notes"`
}

func (c *SupplierController) CreateSupplier(ctx *fiber.Ctx) error {
	var input supplierInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	supplier, err := c.suppliers.CreateNext(models.Supplier{
		Name:         input.Name,
		Phone:        input.Phone,
		Region:       input.Region,
		Rating:       input.Rating,
		Specialty1:   input.Specialty1,
		Specialty2:   input.Specialty2,
		Email:        input.Email,
		BankInfo:     input.BankInfo,
		LeadTime:     input.LeadTime,
		LastSupplied: input.LastSupplied,
		Active:       input.Active,
		MaxCapacity:  input.MaxCapacity,
		Notes:        input.Notes,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier created successfully", "data": supplier})
}

func (c *SupplierController) GetAllSuppliers(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Suppliers found", "data": c.suppliers.List()})
}

func (c *SupplierController) GetSupplierByID(ctx *fiber.Ctx) error {
	supplier, err := c.suppliers.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier found", "data": supplier})
}

func (c *SupplierController) UpdateSupplier(ctx *fiber.Ctx) error {
	supplier, err := c.suppliers.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var input supplierInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	supplier.Name = input.Name
	supplier.Phone = input.Phone
	supplier.Region = input.Region
	supplier.Rating = input.Rating
	supplier.Specialty1 = input.Specialty1
	supplier.Specialty2 = input.Specialty2
	supplier.Email = input.Email
	supplier.BankInfo = input.BankInfo
	supplier.LeadTime = input.LeadTime
	supplier.LastSupplied = input.LastSupplied
	supplier.Active = input.Active
	supplier.MaxCapacity = input.MaxCapacity
	supplier.Notes = input.Notes

	if err := c.suppliers.Update(supplier); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier updated successfully", "data": supplier})
}

// DeleteSupplier refuses while any item still references the supplier.
func (c *SupplierController) DeleteSupplier(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	for _, item := range c.items.List() {
		if item.SupplierID == id {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Supplier is still referenced by item " + item.Code,
			})
		}
	}
	if err := c.suppliers.Delete(id); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Supplier deleted successfully"})
}
