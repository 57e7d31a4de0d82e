package handlers

import (
	"errors"
	"strconv"

	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/models"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
	"github.com/gofiber/fiber/v2"
)

type StorefrontHandler struct {
	storefrontService *services.StorefrontService
}

func NewStorefrontHandler(storefrontService *services.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontService: storefrontService,
	}
}

func storefrontStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrThemeNotFound),
		errors.Is(err, services.ErrUnknownProduct):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ListThemes godoc
// @Summary List theme presets
// @Description List the built-in niche theme presets
// @Tags Storefront
// @Produce json
// @Success 200 {array} models.ThemePreset
// @Router /storefront/themes [get]
func (h *StorefrontHandler) ListThemes(c *fiber.Ctx) error {
	return c.JSON(h.storefrontService.Themes())
}

// ListProducts godoc
// @Summary List the mock catalog
// @Description List the demo products shown in the storefront preview
// @Tags Storefront
// @Produce json
// @Param niche query string false "Niche for the review feed"
// @Success 200 {object} map[string]interface{}
// @Router /storefront/products [get]
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	niche := c.Query("niche", "modern")
	return c.JSON(fiber.Map{
		"products": h.storefrontService.Products(),
		"reviews":  h.storefrontService.ReviewsFor(niche),
	})
}

// CreateSession godoc
// @Summary Create a preview session
// @Description Open a storefront preview session with the default theme
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body object false "Optional store name"
// @Success 201 {object} services.SessionState
// @Router /storefront/sessions [post]
func (h *StorefrontHandler) CreateSession(c *fiber.Ctx) error {
	var req struct {
		StoreName string `json:"store_name"`
	}
	_ = c.BodyParser(&req)

	return c.Status(fiber.StatusCreated).JSON(h.storefrontService.CreateSession(req.StoreName))
}

// GetSession godoc
// @Summary Get preview session state
// @Description Retrieve the session state including the current buyer notice
// @Tags Storefront
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} services.SessionState
// @Failure 404 {object} map[string]interface{}
// @Router /storefront/sessions/{id} [get]
func (h *StorefrontHandler) GetSession(c *fiber.Ctx) error {
	state, err := h.storefrontService.Session(c.Params("id"))
	if err != nil {
		return c.Status(storefrontStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

// SelectTheme godoc
// @Summary Select a theme
// @Description Switch the active theme preset of a preview session
// @Tags Storefront
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.SelectThemeRequest true "Theme ID"
// @Success 200 {object} services.SessionState
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /storefront/sessions/{id}/theme [post]
func (h *StorefrontHandler) SelectTheme(c *fiber.Ctx) error {
	var req models.SelectThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	state, err := h.storefrontService.SelectTheme(c.Params("id"), req.ThemeID)
	if err != nil {
		return c.Status(storefrontStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

// AddToCart godoc
// @Summary Add a product to the preview cart
// @Tags Storefront
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param item body models.AddToCartRequest true "Product and quantity"
// @Success 200 {object} services.SessionState
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /storefront/sessions/{id}/cart [post]
func (h *StorefrontHandler) AddToCart(c *fiber.Ctx) error {
	var req models.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	state, err := h.storefrontService.AddToCart(c.Params("id"), &req)
	if err != nil {
		return c.Status(storefrontStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

// RemoveFromCart godoc
// @Summary Remove a cart line
// @Tags Storefront
// @Produce json
// @Param id path string true "Session ID"
// @Param index path int true "Cart line index"
// @Success 200 {object} services.SessionState
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /storefront/sessions/{id}/cart/{index} [delete]
func (h *StorefrontHandler) RemoveFromCart(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid cart index",
		})
	}

	state, err := h.storefrontService.RemoveFromCart(c.Params("id"), index)
	if err != nil {
		return c.Status(storefrontStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(state)
}

// Search godoc
// @Summary Search the mock catalog
// @Description Case-insensitive substring search over the demo products
// @Tags Storefront
// @Produce json
// @Param id path string true "Session ID"
// @Param q query string false "Search query"
// @Success 200 {array} models.MockProduct
// @Failure 404 {object} map[string]interface{}
// @Router /storefront/sessions/{id}/search [get]
func (h *StorefrontHandler) Search(c *fiber.Ctx) error {
	if _, err := h.storefrontService.Session(c.Params("id")); err != nil {
		return c.Status(storefrontStatus(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(h.storefrontService.Search(c.Query("q")))
}
