package supply

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/smarthealth/supply-chain-backend/internal/response"
)

type Handler struct {
	service *Service
}

type createRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Image       string  `json:"image"`
	Email       string  `json:"email"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/supply", h.create)
	app.Get("/api/v1/supply", h.list)
	app.Get("/api/v1/supply/:id", h.get)
	app.Put("/api/v1/supply/:id", h.update)
	app.Delete("/api/v1/supply/:id", h.remove)
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(createRequest)
	if err := c.BodyParser(payload); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	_, err := h.service.Create(c.Context(), Supply{
		Title:       payload.Title,
		Category:    payload.Category,
		Description: payload.Description,
		Amount:      payload.Amount,
		Image:       payload.Image,
		Email:       payload.Email,
	})
	if err != nil {
		return response.StoreError(c, "Failed to add supply", err)
	}

	return response.Success(c, fiber.StatusCreated, "Supply added successfully")
}

func (h *Handler) list(c *fiber.Ctx) error {
	supplies, err := h.service.List(c.Context())
	if err != nil {
		return response.StoreError(c, "Failed to retrieve supplies", err)
	}

	return response.OK(c, "Supplies retrieved successfully", supplies)
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.StoreError(c, "Failed to retrieve supply", err)
	}

	supply, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		return response.StoreError(c, "Failed to retrieve supply", err)
	}

	// a well-formed id that matches nothing still answers 200 with null data
	return response.OK(c, "Supply retrieved successfully", supply)
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.StoreError(c, "Failed to update supply", err)
	}

	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return response.Fail(c, fiber.StatusBadRequest, "No fields to update provided")
	}

	if err := h.service.Update(c.Context(), id, fields); err != nil {
		if errors.Is(err, ErrEmptyUpdate) {
			return response.Fail(c, fiber.StatusBadRequest, "No fields to update provided")
		}
		return response.StoreError(c, "Failed to update supply", err)
	}

	return response.Success(c, fiber.StatusOK, "Supply updated successfully")
}

func (h *Handler) remove(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return response.StoreError(c, "Failed to delete supply", err)
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return response.StoreError(c, "Failed to delete supply", err)
	}

	return response.Success(c, fiber.StatusOK, "Supply deleted successfully")
}
