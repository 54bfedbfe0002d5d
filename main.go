package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/onepayment/onepay-backend/app/controllers"
	"github.com/onepayment/onepay-backend/app/queries"
	"github.com/onepayment/onepay-backend/app/services"
	"github.com/onepayment/onepay-backend/app/store"
	"github.com/onepayment/onepay-backend/pkg/database"
	"github.com/onepayment/onepay-backend/pkg/promptpay"
	"github.com/onepayment/onepay-backend/pkg/routes"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("API is running...")
	})

	var records store.RecordStore
	if os.Getenv("DB_HOST") != "" {
		db, err := database.InitDB()
		if err != nil {
			log.Fatalf("Failed to connect to the database: %v", err)
		}
		records = &queries.TransactionQueries{DB: db}
	} else {
		log.Println("DB_HOST not set, using in-memory transaction store")
		records = queries.NewMemoryStore()
	}

	txStore := store.New(records)
	txController := &controllers.TransactionController{
		Service: services.NewTransactionService(txStore),
	}
	qrController := &controllers.QrController{
		Coordinator: services.NewQrCoordinator(txStore),
		Renderer:    promptpay.PNGRenderer{},
	}

	routes.RegisterTransactionRoutes(app, txController, qrController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(":" + port))
}
