package controller

import (
	"genai-studio-be/internal/dto"
	"genai-studio-be/internal/pkg/apperror"
	"genai-studio-be/internal/pkg/serverutils"
	"genai-studio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImageGenController interface {
	RegisterRoutes(r fiber.Router, guard fiber.Handler)
	Generate(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type imageGenController struct {
	service service.IImageGenService
}

func NewImageGenController(service service.IImageGenService) IImageGenController {
	return &imageGenController{service: service}
}

func (c *imageGenController) RegisterRoutes(r fiber.Router, guard fiber.Handler) {
	h := r.Group("/imagegen", guard)
	h.Post("/generate", c.Generate)
	h.Get("/history", c.History)
}

func (c *imageGenController) Generate(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.BadRequest(msgInvalidBody)
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Generate(ctx.UserContext(), user.Id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *imageGenController) History(ctx *fiber.Ctx) error {
	user, err := serverutils.CurrentUser(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.History(ctx.UserContext(), user.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
