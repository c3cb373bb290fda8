package controllers

import (
	"fmt"
	"time"

	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(store *database.Store) *UserController {
	return &UserController{users: repositories.NewUserRepository(store)}
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput struct {
		Username string `json:"username" validate:"required,min=3"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if !models.ValidRole(userInput.Role) {
		return respondError(ctx, fmt.Errorf("unknown role %q: %w", userInput.Role, models.ErrValidation))
	}

	user, err := c.users.CreateNext(models.User{
		Username:       userInput.Username,
		Password:       userInput.Password,
		Role:           userInput.Role,
		Status:         models.UserActive,
		RegisteredDate: time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return respondError(ctx, err)
	}

	user.Password = ""
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User created successfully", "data": user})
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	users := c.users.List()
	for i := range users {
		users[i].Password = ""
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Users found", "data": users})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	user, err := c.users.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	user.Password = ""
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User found", "data": user})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	user, err := c.users.Get(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var userInput struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Status   string `json:"status"`
	}
	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	if userInput.Username != "" {
		if existing, err := c.users.FindByUsername(userInput.Username); err == nil && existing.ID != user.ID {
			return respondError(ctx, fmt.Errorf("username %s is taken: %w", userInput.Username, models.ErrDuplicate))
		}
		user.Username = userInput.Username
	}
	if userInput.Password != "" {
		user.Password = userInput.Password
	}
	if userInput.Role != "" {
		if !models.ValidRole(userInput.Role) {
			return respondError(ctx, fmt.Errorf("unknown role %q: %w", userInput.Role, models.ErrValidation))
		}
		user.Role = userInput.Role
	}
	if userInput.Status != "" {
		if userInput.Status != models.UserActive && userInput.Status != models.UserInactive {
			return respondError(ctx, fmt.Errorf("unknown status %q: %w", userInput.Status, models.ErrValidation))
		}
		user.Status = userInput.Status
	}

	if err := c.users.Update(user); err != nil {
		return respondError(ctx, err)
	}
	user.Password = ""
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User updated successfully", "data": user})
}

// DeactivateUser keeps the row but blocks future logins.
func (c *UserController) DeactivateUser(ctx *fiber.Ctx) error {
	if err := c.users.Deactivate(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User deactivated"})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	if err := c.users.Delete(ctx.Params("id")); err != nil {
		return respondError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User deleted successfully"})
}
