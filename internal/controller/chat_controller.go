package controller

import (
	"genai-studio-be/internal/dto"
	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/serverutils"
	"genai-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	CreateSession(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	Send(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/chat", guard)
	h.Post("/session", c.CreateSession)
	h.Get("/sessions", c.ListSessions)
	h.Get("/history/:sessionId?", c.History)
	h.Delete("/sessions/:sessionId", c.DeleteSession)
	h.Post("/send", c.Send)
}

func (c *chatController) CreateSession(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CreateSession(ctx.UserContext(), user.Id)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *chatController) ListSessions(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListSessions(ctx.UserContext(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.History(ctx.UserContext(), user.Id, utils.CopyString(ctx.Params("sessionId")))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) DeleteSession(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DeleteSession(ctx.UserContext(), user.Id, utils.CopyString(ctx.Params("sessionId")))
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.SendChatMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.BadRequest(msgInvalidBody)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.UserContext(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
