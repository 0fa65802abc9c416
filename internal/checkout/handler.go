package checkout

import "github.com/gofiber/fiber/v2"

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/checkout/summary", h.getSummary)
	app.Post("/api/v1/checkout", h.checkout)
}

type checkoutRequest struct {
	DeliveryAddress string `json:"deliveryAddress"`
}

func (h *Handler) getSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Summary())
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	placed, err := h.service.Checkout(payload.DeliveryAddress)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart cannot be empty"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Payment successful!",
		"orders":  placed,
	})
}
