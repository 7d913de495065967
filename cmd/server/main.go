package main

import (
	"log"
	"strings"

	"github.com/mtomase/makers-ledger/internal/auth"
	"github.com/mtomase/makers-ledger/internal/config"
	"github.com/mtomase/makers-ledger/internal/database"
	"github.com/mtomase/makers-ledger/internal/employee"
	"github.com/mtomase/makers-ledger/internal/ingredient"
	"github.com/mtomase/makers-ledger/internal/overhead"
	"github.com/mtomase/makers-ledger/internal/product"
	"github.com/mtomase/makers-ledger/internal/report"
	"github.com/mtomase/makers-ledger/internal/task"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Put("/auth/settings", auth.UpdateSettingsHandler())

	// Hammaddeler
	protected.Get("/ingredients", ingredient.ListIngredientsHandler())
	protected.Post("/ingredients", ingredient.CreateIngredientHandler())
	protected.Put("/ingredients/:id", ingredient.UpdateIngredientHandler())
	protected.Delete("/ingredients/:id", ingredient.DeleteIngredientHandler())

	// Çalışanlar
	protected.Get("/employees", employee.ListEmployeesHandler())
	protected.Post("/employees", employee.CreateEmployeeHandler())
	protected.Put("/employees/:id", employee.UpdateEmployeeHandler())
	protected.Delete("/employees/:id", employee.DeleteEmployeeHandler())

	// İş adımları
	protected.Get("/tasks", task.ListTasksHandler())
	protected.Post("/tasks", task.CreateTaskHandler())
	protected.Put("/tasks/:id", task.UpdateTaskHandler())
	protected.Delete("/tasks/:id", task.DeleteTaskHandler())

	// Genel giderler & maaşlar
	protected.Get("/global-costs", overhead.GetGlobalCostsHandler())
	protected.Put("/global-costs", overhead.UpdateGlobalCostsHandler())
	protected.Get("/global-salaries", overhead.ListGlobalSalariesHandler())
	protected.Post("/global-salaries", overhead.CreateGlobalSalaryHandler())
	protected.Put("/global-salaries/:id", overhead.UpdateGlobalSalaryHandler())
	protected.Delete("/global-salaries/:id", overhead.DeleteGlobalSalaryHandler())

	// Ürünler
	protected.Get("/products", product.ListProductsHandler())
	protected.Post("/products", product.CreateProductHandler())
	protected.Get("/products/:id", product.GetProductHandler())
	protected.Put("/products/:id", product.UpdateProductHandler())
	protected.Delete("/products/:id", product.DeleteProductHandler())

	// Reçete
	protected.Get("/products/:id/materials", product.ListMaterialsHandler())
	protected.Post("/products/:id/materials", product.CreateMaterialHandler())
	protected.Put("/products/:id/materials/:materialId", product.UpdateMaterialHandler())
	protected.Delete("/products/:id/materials/:materialId", product.DeleteMaterialHandler())

	// İşçilik atamaları
	protected.Get("/products/:id/labor", product.ListLaborHandler())
	protected.Post("/products/:id/labor", product.CreateLaborHandler())
	protected.Put("/products/:id/labor/:assignmentId", product.UpdateLaborHandler())
	protected.Delete("/products/:id/labor/:assignmentId", product.DeleteLaborHandler())

	// Kanal fiyatlandırması
	protected.Get("/products/:id/channel-pricing", product.ListChannelPricingHandler())
	protected.Put("/products/:id/channel-pricing/:channel", product.UpdateChannelPricingHandler())

	// Maliyet dökümü
	protected.Get("/products/:id/cost-breakdown", report.CostBreakdownHandler())
	protected.Get("/products/:id/cost-breakdown/export", report.ExportCostBreakdownHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
