package controller

import (
	"errors"
	"strconv"

	"kindalike-be/internal/dto"
	"kindalike-be/internal/pkg/serverutils"
	"kindalike-be/internal/service"
	"kindalike-be/pkg/geoip"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	CreateSession(ctx *fiber.Ctx) error
	GetSessionMessages(ctx *fiber.Ctx) error
	DeactivateSession(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/message", c.SendMessage)
	h.Get("/sessions", c.GetSessions)
	h.Post("/sessions/new", c.CreateSession)
	h.Get("/sessions/:id/messages", c.GetSessionMessages)
	h.Delete("/sessions/:id", c.DeactivateSession)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	var req dto.ChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	clientIP := geoip.ClientIP(func(k string) string { return ctx.Get(k) }, ctx.IP())

	res, err := c.service.SendMessage(ctx.Context(), userId, &req, clientIP)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to process message"))
	}

	return ctx.JSON(res)
}

func (c *chatController) GetSessions(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.service.GetSessions(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load sessions"))
	}

	return ctx.JSON(res)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	res, err := c.service.CreateSession(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to create session"))
	}

	return ctx.JSON(res)
}

func (c *chatController) GetSessionMessages(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	sessionId, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	res, err := c.service.GetSessionMessages(ctx.Context(), userId, uint(sessionId))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load messages"))
	}

	return ctx.JSON(res)
}

func (c *chatController) DeactivateSession(ctx *fiber.Ctx) error {
	userId := serverutils.UserID(ctx)

	sessionId, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid session id"))
	}

	if err := c.service.DeactivateSession(ctx.Context(), userId, uint(sessionId)); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to close session"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Session closed", nil))
}
