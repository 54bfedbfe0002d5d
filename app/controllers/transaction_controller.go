package controllers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/onepayment/onepay-backend/app/models"
	"github.com/onepayment/onepay-backend/app/services"
	"github.com/onepayment/onepay-backend/app/store"
)

var validate = validator.New()

// TransactionController exposes the transaction lifecycle over HTTP and
// translates service failures into status codes.
type TransactionController struct {
	Service *services.TransactionService
}

func (tc *TransactionController) CreateTransaction(c *fiber.Ctx) error {
	req := &models.CreateTransactionRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tx, err := tc.Service.Create(req.PayerName, req.BankID, req.Amount)
	if err != nil {
		if errors.Is(err, store.ErrInvalidAmount) || errors.Is(err, store.ErrInvalidBankID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create transaction"})
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

func (tc *TransactionController) ListTransactions(c *fiber.Ctx) error {
	txs, err := tc.Service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list transactions"})
	}
	return c.Status(fiber.StatusOK).JSON(txs)
}

func (tc *TransactionController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	req := &models.UpdateStatusRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	status, ok := models.ParseStatus(req.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}

	tx, err := tc.Service.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
		}
		if errors.Is(err, services.ErrIllegalTransition) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update transaction"})
	}
	return c.Status(fiber.StatusOK).JSON(tx)
}

func (tc *TransactionController) DeleteTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := tc.Service.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "transaction not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete transaction"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
