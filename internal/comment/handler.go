package comment

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smarthealth/supply-chain-backend/internal/response"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/comment", h.create)
	app.Get("/api/v1/comment", h.list)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	_, err := h.service.Create(c.Context(), Comment{
		Name:    payload.Name,
		Comment: payload.Comment,
	})
	if err != nil {
		return response.StoreError(c, "Failed to add comment", err)
	}

	return response.Success(c, fiber.StatusCreated, "Comment added successfully")
}

func (h *Handler) list(c *fiber.Ctx) error {
	comments, err := h.service.List(c.Context())
	if err != nil {
		return response.StoreError(c, "Failed to retrieve comments", err)
	}

	return response.OK(c, "Comments retrieved successfully", comments)
}
