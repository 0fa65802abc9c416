package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenbasket/green-basket-backend/internal/product"
)

// Handler delegates cart operations to the cart service. It looks products
// up in the catalog so clients only send product ids.
type Handler struct {
	service  *Service
	products product.Repository
}

func NewHandler(s *Service, products product.Repository) *Handler {
	return &Handler{service: s, products: products}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addItem)
	app.Patch("/api/v1/cart/:id<[0-9]+>", h.updateQuantity)
	app.Delete("/api/v1/cart/:id<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID int `json:"productID"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(cartResponse{Items: h.service.Items(), Total: h.service.Total()})
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productID"})
	}

	p, err := h.products.GetByID(payload.ProductID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}

	items := h.service.AddItem(p)
	return c.Status(fiber.StatusOK).JSON(cartResponse{Items: items, Total: h.service.Total()})
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// quantities below 1 are rejected by the store; absent ids are no-ops
	h.service.UpdateQuantity(id, payload.Quantity)
	return c.JSON(cartResponse{Items: h.service.Items(), Total: h.service.Total()})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	h.service.RemoveItem(id)
	return c.JSON(cartResponse{Items: h.service.Items(), Total: h.service.Total()})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
