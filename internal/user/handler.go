package user

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/smarthealth/supply-chain-backend/internal/response"
)

type Handler struct {
	service  *Service
	secret   []byte
	lifetime time.Duration
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewHandler(service *Service, secret string, lifetime time.Duration) *Handler {
	return &Handler{service: service, secret: []byte(secret), lifetime: lifetime}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/register", h.register)
	app.Post("/api/v1/login", h.login)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Register(c.Context(), payload.Name, payload.Email, payload.Password); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return response.Fail(c, fiber.StatusBadRequest, "User already exists")
		}
		return response.StoreError(c, "Failed to register user", err)
	}

	return response.Success(c, fiber.StatusCreated, "User registered successfully")
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	account, err := h.service.Authenticate(c.Context(), payload.Email, payload.Password)
	if err != nil {
		return response.Fail(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	claims := jwt.MapClaims{
		"email": account.Email,
		"exp":   time.Now().Add(h.lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return response.StoreError(c, "Failed to generate token", err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   signed,
	})
}
