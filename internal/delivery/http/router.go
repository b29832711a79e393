package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/config"
	authhandler "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http/handler/auth"
	customerhandler "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http/handler/customer"
	notahandler "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http/handler/nota"
	producthandler "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http/handler/product"
	reporthandler "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http/handler/report"
	saleshandler "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/http/handler/salesperson"
	"github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/delivery/middleware"
	adminpg "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/repository/postgres/admin"
	customerpg "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/repository/postgres/customer"
	notapg "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/repository/postgres/nota"
	productpg "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/repository/postgres/product"
	reportpg "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/repository/postgres/report"
	salespg "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/repository/postgres/sales"
	authuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/auth"
	customeruc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/customer"
	notauc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/nota"
	productuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/product"
	reportuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/report"
	salesuc "github.com/ramaprastaruna/CV-Raga-Jaya-Amerta/internal/usecase/salesperson"
)

func RegisterRoutes(app *fiber.App, cfg config.Config, db *pgxpool.Pool, log zerolog.Logger) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	adminRepo := adminpg.NewAdminRepo(db)
	loginUC := authuc.NewAdminLoginUsecase(adminpg.NewAdminFinderAdapter(adminRepo), cfg.JWTSecret, cfg.JWTExpiresMinutes)
	loginHandler := authhandler.NewAdminLoginHandler(loginUC)

	// Public route
	api.Post("/admin/login", loginHandler.Handle)

	// Protected admin group
	jwtmw := middleware.NewJWTMiddleware(cfg.JWTSecret)
	admin := api.Group("/admin", jwtmw.Protect())

	admin.Get("/me", authhandler.NewAdminMeHandler().Handle)

	// Master-data wiring
	customerStore := customerpg.NewCustomerStoreAdapter(customerpg.NewCustomerRepo(db))
	customerH := customerhandler.New(customeruc.New(customerStore))

	salesStore := salespg.NewSalesStoreAdapter(salespg.NewSalesRepo(db))
	salesH := saleshandler.New(salesuc.New(salesStore))

	productStore := productpg.NewProductStoreAdapter(productpg.NewProductRepo(db))
	productH := producthandler.New(productuc.New(productStore))

	// Nota wiring
	notaRepo := notapg.NewNotaRepo(db)
	notaStore := notapg.NewNotaStoreAdapter(notaRepo, cfg.NotaPrefix, cfg.NotaCounterSeed, customerStore, salesStore, productStore)
	notaH := notahandler.New(notauc.New(notaStore), log)

	// Report wiring
	reportStore := reportpg.NewReportStoreAdapter(reportpg.NewReportRepo(db))
	reportH := reporthandler.New(reportuc.New(reportStore), log)

	// Customer routes
	admin.Post("/customers", customerH.Create)
	admin.Get("/customers", customerH.List)
	admin.Get("/customers/:id", customerH.Get)
	admin.Patch("/customers/:id", customerH.Update)

	// Sales routes
	admin.Post("/sales", salesH.Create)
	admin.Get("/sales", salesH.List)
	admin.Get("/sales/:id", salesH.Get)

	// Product routes
	admin.Get("/products", productH.List)
	admin.Get("/products/:id", productH.Get)
	admin.Get("/products/:id/units", productH.Units)

	// Nota routes
	admin.Post("/notas", notaH.Create)
	admin.Get("/notas", notaH.List)
	admin.Get("/notas/:id", notaH.Get)
	admin.Put("/notas/:id", notaH.Edit)
	admin.Patch("/notas/:id/finalize", notaH.Finalize)
	admin.Delete("/notas/:id", notaH.Delete)

	// Report routes
	admin.Get("/reports/sales", reportH.Sales)
	admin.Get("/reports/recap", reportH.Recap)
	admin.Get("/reports/recap/export", reportH.RecapExport)
}
