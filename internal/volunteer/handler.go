package volunteer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smarthealth/supply-chain-backend/internal/response"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Image    string `json:"image"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/volunteer", h.create)
	app.Get("/api/v1/volunteer", h.list)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	_, err := h.service.Create(c.Context(), Volunteer{
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Location: payload.Location,
		Image:    payload.Image,
	})
	if err != nil {
		return response.StoreError(c, "Failed to add volunteer", err)
	}

	return response.Success(c, fiber.StatusCreated, "Volunteer added successfully")
}

func (h *Handler) list(c *fiber.Ctx) error {
	volunteers, err := h.service.List(c.Context())
	if err != nil {
		return response.StoreError(c, "Failed to retrieve volunteers", err)
	}

	return response.OK(c, "Volunteers retrieved successfully", volunteers)
}
