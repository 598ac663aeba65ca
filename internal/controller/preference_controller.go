package controller

import (
	"errors"

	"kindalike-be/internal/dto"
	"kindalike-be/internal/pkg/serverutils"
	"kindalike-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPreferenceController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
}

type preferenceController struct {
	service service.IPreferenceService
}

func NewPreferenceController(service service.IPreferenceService) IPreferenceController {
	return &preferenceController{service: service}
}

func (c *preferenceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preferences")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/", c.Save)
	h.Get("/", c.Get)
}

func (c *preferenceController) Save(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.PreferenceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	res, err := c.service.Save(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to save preferences"))
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *preferenceController) Get(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.service.Get(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrPreferencesNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load preferences"))
	}

	return ctx.JSON(res)
}
