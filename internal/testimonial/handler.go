package testimonial

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smarthealth/supply-chain-backend/internal/response"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	Author      string `json:"author"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/testimonial", h.create)
	app.Get("/api/v1/testimonial", h.list)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	_, err := h.service.Create(c.Context(), Testimonial{
		Author:      payload.Author,
		Description: payload.Description,
		Image:       payload.Image,
	})
	if err != nil {
		return response.StoreError(c, "Failed to add testimonial", err)
	}

	return response.Success(c, fiber.StatusCreated, "Testimonial added successfully")
}

func (h *Handler) list(c *fiber.Ctx) error {
	testimonials, err := h.service.List(c.Context())
	if err != nil {
		return response.StoreError(c, "Failed to retrieve testimonials", err)
	}

	return response.OK(c, "Testimonials retrieved successfully", testimonials)
}
