package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

type ItemController struct {
	items     *repositories.ItemRepository
	suppliers *repositories.SupplierRepository
	reqs      *repositories.RequisitionRepository
}

func NewItemController(store *database.Store) *ItemController {
	return &ItemController{
		items:     repositories.NewItemRepository(store),
		suppliers: repositories.NewSupplierRepository(store),
		reqs:      repositories.NewRequisitionRepository(store),
	}
}

type itemInput struct {
	Name          string `json:"item_name" validate:"required"`
	SupplierID    string `json:"supplier_id" validate:"required"`
	Stock         int    `json:"stock"`
	UnitPrice     string `json:"unit_price" validate:"required"`
	PurchasePrice string `json:"purchase_price" validate:"required"`
	Category      string `json:"category"`
	ExpiryDate    string `json:"expiry_date"`
	Remarks       string `json:"remarks"`
}

func (c *ItemController) CreateItem(ctx *fiber.Ctx) error {
	var input itemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if !c.suppliers.Exists(input.SupplierID) {
		return respondError(ctx, fmt.Errorf("supplier %s does not exist: %w", input.SupplierID, models.ErrValidation))
	}
	if input.Stock < 0 {
		return respondError(ctx, fmt.Errorf("stock must not be negative: %w", models.ErrValidation))
	}

	item, err := c.items.CreateNext(models.Item{
		Name:          input.Name,
		SupplierID:    input.SupplierID,
		Stock:         input.Stock,
		UnitPrice:     input.UnitPrice,
		PurchasePrice: input.PurchasePrice,
		Category:      input.Category,
		ExpiryDate:    input.ExpiryDate,
		Remarks:       input.Remarks,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item created successfully", "data": item})
}

func (c *ItemController) GetAllItems(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Items found", "data": c.items.List()})
}

func (c *ItemController) GetItemByCode(ctx *fiber.Ctx) error {
	item, err := c.items.Get(ctx.Params("code"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item found", "data": item})
}

// GetLowStockItems lists items under the reorder threshold, each with the
// pending requisition covering it when one exists.
func (c *ItemController) GetLowStockItems(ctx *fiber.Ctx) error {
	type lowStockRow struct {
		models.Item
		RequisitionID     string `json:"requisition_id,omitempty"`
		RequisitionStatus string `json:"requisition_status,omitempty"`
		RequisitionQty    int    `json:"requisition_qty,omitempty"`
	}

	pending := make(map[string]models.Requisition)
	for _, pr := range c.reqs.List() {
		if pr.Status == models.RequisitionPending {
			pending[pr.ItemCode] = pr
		}
	}

	var rows []lowStockRow
	for _, item := range c.items.LowStock() {
		row := lowStockRow{Item: item}
		if pr, ok := pending[item.Code]; ok {
			row.RequisitionID = pr.ID
			row.RequisitionStatus = string(pr.Status)
			row.RequisitionQty = pr.Quantity
		}
		rows = append(rows, row)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Low stock items found", "data": rows})
}

func (c *ItemController) UpdateItem(ctx *fiber.Ctx) error {
	item, err := c.items.Get(ctx.Params("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	var input itemInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if !c.suppliers.Exists(input.SupplierID) {
		return respondError(ctx, fmt.Errorf("supplier %s does not exist: %w", input.SupplierID, models.ErrValidation))
	}
	if input.Stock < 0 {
		return respondError(ctx, fmt.Errorf("stock must not be negative: %w", models.ErrValidation))
	}

	item.Name = input.Name
	item.SupplierID = input.SupplierID
	item.Stock = input.Stock
	item.UnitPrice = input.UnitPrice
	item.PurchasePrice = input.PurchasePrice
	item.Category = input.Category
	item.ExpiryDate = input.ExpiryDate
	item.Remarks = input.Remarks

	if err := c.items.Update(item); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item updated successfully", "data": item})
}

func (c *ItemController) DeleteItem(ctx *fiber.Ctx) error {
	if err := c.items.Delete(ctx.Params("code")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item deleted successfully"})
}

// CreateItemsFromExcel bulk adds items from a spreadsheet. Expected
// columns: name, supplier id, stock, unit price, purchase price,
// category, expiry date, remarks. Row one is the header.
func (c *ItemController) CreateItemsFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "File is required",
		})
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Excel file has no sheets",
		})
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Failed to read rows",
		})
	}

	var created []models.Item
	var skipped []string
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			continue
		}
		cell := func(n int) string {
			if n < len(row) {
				return strings.TrimSpace(row[n])
			}
			return ""
		}
		supplierID := cell(1)
		if cell(0) == "" || !c.suppliers.Exists(supplierID) {
			skipped = append(skipped, fmt.Sprintf("row %d", i+1))
			continue
		}
		stock, _ := strconv.Atoi(cell(2))
		item, err := c.items.CreateNext(models.Item{
			Name:          cell(0),
			SupplierID:    supplierID,
			Stock:         stock,
			UnitPrice:     cell(3),
			PurchasePrice: cell(4),
			Category:      cell(5),
			ExpiryDate:    cell(6),
			Remarks:       cell(7),
		})
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d", i+1))
			continue
		}
		created = append(created, item)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d items created, %d rows skipped", len(created), len(skipped)),
		"data": fiber.Map{
			"created": created,
			"skipped": skipped,
		},
	})
}
