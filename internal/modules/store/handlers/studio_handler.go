package handlers

import (
	"errors"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
	"github.com/gofiber/fiber/v2"
)

type StudioHandler struct {
	studioService *services.StudioService
}

func NewStudioHandler(studioService *services.StudioService) *StudioHandler {
	return &StudioHandler{
		studioService: studioService,
	}
}

// studioStatus maps studio errors to HTTP statuses. Input problems are the
// caller's fault; anything else means the AI provider failed.
func studioStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrProductNameRequired),
		errors.Is(err, services.ErrNoGeneratedProduct),
		errors.Is(err, services.ErrEmptyImportText),
		errors.Is(err, services.ErrUnknownPlatform):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadGateway
	}
}

// GenerateProduct godoc
// @Summary Generate a product listing
// @Description Generate a description and image from a short product brief
// @Tags Studio
// @Accept json
// @Produce json
// @Param brief body models.GenerateProductRequest true "Product brief"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /studio/generate [post]
func (h *StudioHandler) GenerateProduct(c *fiber.Ctx) error {
	var req models.GenerateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	product, err := h.studioService.Generate(c.Context(), &req)
	if err != nil {
		return c.Status(studioStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(product)
}

// GetProduct godoc
// @Summary Get the current product
// @Description Retrieve the most recently generated product listing
// @Tags Studio
// @Produce json
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]interface{}
// @Router /studio/product [get]
func (h *StudioHandler) GetProduct(c *fiber.Ctx) error {
	product := h.studioService.Current()
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": services.ErrNoGeneratedProduct.Error(),
		})
	}
	return c.JSON(product)
}

// SmartImport godoc
// @Summary Import a product from pasted text
// @Description Extract name, category and a suggested MAD price from a supplier listing
// @Tags Studio
// @Accept json
// @Produce json
// @Param listing body models.ImportRequest true "Pasted listing text"
// @Success 200 {object} models.ImportResult
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /studio/import [post]
func (h *StudioHandler) SmartImport(c *fiber.Ctx) error {
	var req models.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	result, err := h.studioService.Import(c.Context(), &req)
	if err != nil {
		return c.Status(studioStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// AdCopy godoc
// @Summary Generate platform ad copy
// @Description Generate (or return cached) ad copy for the current product on one platform
// @Tags Studio
// @Accept json
// @Produce json
// @Param request body models.AdCopyRequest true "Target platform"
// @Success 200 {object} models.AdCopyResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /studio/ad-copy [post]
func (h *StudioHandler) AdCopy(c *fiber.Ctx) error {
	var req models.AdCopyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Platform == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Platform is required",
		})
	}

	resp, err := h.studioService.AdCopy(c.Context(), req.Platform)
	if err != nil {
		return c.Status(studioStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(resp)
}

// SEO godoc
// @Summary Generate SEO metadata
// @Description Generate (or return cached) meta title, description and keywords for the current product
// @Tags Studio
// @Produce json
// @Success 200 {object} models.SEOData
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /studio/seo [post]
func (h *StudioHandler) SEO(c *fiber.Ctx) error {
	seo, err := h.studioService.SEO(c.Context())
	if err != nil {
		return c.Status(studioStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(seo)
}

// Profit godoc
// @Summary Calculate profit margin
// @Description Calculate per-unit profit and margin from cost and sell price
// @Tags Studio
// @Accept json
// @Produce json
// @Param prices body models.ProfitRequest true "Cost and sell price"
// @Success 200 {object} models.ProfitResult
// @Failure 400 {object} map[string]interface{}
// @Router /studio/profit [post]
func (h *StudioHandler) Profit(c *fiber.Ctx) error {
	var req models.ProfitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(h.studioService.Profit(&req))
}
