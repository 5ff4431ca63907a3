package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"lapak/internal/middleware"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for accounts and authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Post("/signup", h.HandleSignup)
	authRoutes.Get("/getAccountById", h.HandleGetAccountByID)
	authRoutes.Put("/updateAccount", h.HandleUpdateAccount)
	authRoutes.Get("/me", middleware.AuthRequired(h.authService), h.HandleMe)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=8"`
}

// HandleLogin authenticates a user. Every failure on this route answers 200;
// bad credentials produce one message regardless of which credential was
// wrong.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.JSON(fiber.Map{
			"status":  "fail",
			"message": "Error in incoming data",
		})
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)

	if err := h.validate.Struct(req); err != nil {
		return c.JSON(fiber.Map{
			"status":  "fail",
			"message": "Error in incoming data",
		})
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.JSON(fiber.Map{
				"status":  "fail",
				"message": "password or username is incorrect",
			})
		}
		log.Printf("Error logging in user %s: %v", req.Username, err)
		return c.JSON(fiber.Map{
			"status":  "fail",
			"message": "something went wrong",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"user":   user,
		"token":  token,
	})
}

// SignupRequest represents the request body for signup.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=5"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required,min=9"`
	Email    string `json:"email" validate:"required,contains=@,endswith=.com"`
}

// HandleSignup registers a new account.
func (h *AuthHandler) HandleSignup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if err := h.authService.Signup(&user); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return fail(c, fiber.StatusBadRequest, "User already exists")
		}
		log.Printf("Error signing up user %s: %v", req.Username, err)
		return fail(c, fiber.StatusInternalServerError, "something went wrong")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

// isNumericID reports whether an id reads as a number. Identifiers are uuids,
// so a numeric id never matches anything; the empty string counts as numeric.
func isNumericID(id string) bool {
	if id == "" {
		return true
	}
	_, err := strconv.ParseFloat(id, 64)
	return err == nil
}

// HandleGetAccountByID looks up an account by the id query parameter.
func (h *AuthHandler) HandleGetAccountByID(c *fiber.Ctx) error {
	id := c.Query("id")
	if isNumericID(id) {
		return fail(c, fiber.StatusBadRequest, "Invalid ID")
	}

	account, err := h.authService.GetAccount(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Account not found")
		}
		log.Printf("Error getting account %s: %v", id, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"account": account,
	})
}

// UpdateAccountRequest represents the request body for an account update.
// Username, email and phone are optional; when present they must satisfy the
// signup rules. Password and OldPassword must come together.
type UpdateAccountRequest struct {
	ID          string `json:"id" validate:"required"`
	Username    string `json:"username" validate:"omitempty,min=5"`
	Email       string `json:"email" validate:"omitempty,contains=@,endswith=.com"`
	Phone       string `json:"phone" validate:"omitempty,min=9"`
	Password    string `json:"password" validate:"omitempty,min=8"`
	OldPassword string `json:"oldPassword"`
}

// HandleUpdateAccount applies a partial update to an account.
func (h *AuthHandler) HandleUpdateAccount(c *fiber.Ctx) error {
	var req UpdateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}
	if err := h.validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Error in incoming data")
	}

	account, err := h.authService.UpdateAccount(services.AccountUpdate{
		ID:          req.ID,
		Username:    req.Username,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    req.Password,
		OldPassword: req.OldPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			return fail(c, fiber.StatusNotFound, "Account not found")
		case errors.Is(err, services.ErrUserExists):
			return fail(c, fiber.StatusBadRequest, "The user already exists")
		case errors.Is(err, services.ErrPasswordPair):
			return fail(c, fiber.StatusBadRequest, "One of Passwords is empty")
		case errors.Is(err, services.ErrPasswordMismatch):
			return fail(c, fiber.StatusBadRequest, "Password incorrect")
		}
		log.Printf("Error updating account %s: %v", req.ID, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"account": account,
	})
}

// HandleMe returns the account of the authenticated user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	account, err := h.authService.GetAccount(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fail(c, fiber.StatusNotFound, "Account not found")
		}
		log.Printf("Error getting account %s: %v", userID, err)
		return fail(c, fiber.StatusInternalServerError, "Something went wrong")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"account": account,
	})
}
