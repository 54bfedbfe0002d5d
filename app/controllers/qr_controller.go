package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/onepayment/onepay-backend/app/services"
	"github.com/onepayment/onepay-backend/app/store"
	"github.com/onepayment/onepay-backend/pkg/promptpay"
)

type QrController struct {
	Coordinator *services.QrCoordinator
	Renderer    promptpay.Renderer
}

// RequestQr returns the payment payload for a transaction, either as
// JSON or, with ?format=png, as a rendered QR image.
func (qc *QrController) RequestQr(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	payload, err := qc.Coordinator.RequestQr(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
		}
		if errors.Is(err, services.ErrTransactionGone) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "transaction deleted while generating qr"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate qr"})
	}

	if c.Query("format") == "png" {
		png, err := qc.Renderer.Render(payload.RawPayload)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render qr image"})
		}
		c.Set(fiber.HeaderContentType, "image/png")
		return c.Send(png)
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}
