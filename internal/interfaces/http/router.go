package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/auth"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/billing"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/finance"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/settings"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/stock"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	StockUC      *stock.UseCase
	GenerateBill *billing.GenerateBillUseCase
	BillHistory  *billing.HistoryUseCase
	FinanceUC    *finance.UseCase
	SettingsUC   *settings.TemplateUseCase
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/auth/staff", authHandler.ListStaff)

	// Stock
	stocks := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Post("/add-or-update", stockHandler.AddOrUpdate)
	stocks.Get("/companies", stockHandler.Companies)
	stocks.Get("/suggestions", stockHandler.Suggestions)
	stocks.Delete("/:id", RequireRole(entity.RoleOwner), stockHandler.Delete)

	// Billing
	bills := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.GenerateBill, deps.BillHistory)
	bills.Post("/generate", billingHandler.Generate)
	bills.Get("/history", billingHandler.History)
	bills.Get("/:id", billingHandler.Get)
	bills.Get("/:id/download", billingHandler.Download)
	bills.Delete("/:id", RequireRole(entity.RoleOwner), billingHandler.Delete)

	// Finance
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	txns := protected.Group("/transactions")
	txns.Get("/", financeHandler.List)
	txns.Post("/", financeHandler.Create)
	txns.Delete("/:id", financeHandler.Delete)
	protected.Get("/finance/summary", financeHandler.Summary)

	// Settings
	settingsGroup := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/template", settingsHandler.GetTemplate)
	settingsGroup.Post("/template", settingsHandler.SaveTemplate)
	settingsGroup.Post("/template/analyze", settingsHandler.AnalyzeTemplate)
}
