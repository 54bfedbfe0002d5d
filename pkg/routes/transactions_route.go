package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/onepayment/onepay-backend/app/controllers"
)

func RegisterTransactionRoutes(app *fiber.App, tc *controllers.TransactionController, qc *controllers.QrController) {
	app.Post("/transactions", tc.CreateTransaction)
	app.Get("/transactions", tc.ListTransactions)
	app.Post("/transactions/:id", tc.UpdateStatus)
	app.Delete("/transactions/:id", tc.DeleteTransaction)
	app.Get("/transactions/:id/qr", qc.RequestQr)
}
