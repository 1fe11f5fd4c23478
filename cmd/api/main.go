package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/auth"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/billing"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/finance"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/settings"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/stock"
	infraai "github.com/aryaman2519/My-Bussiness-Manager/internal/infrastructure/ai"
	inframail "github.com/aryaman2519/My-Bussiness-Manager/internal/infrastructure/mail"
	infrapdf "github.com/aryaman2519/My-Bussiness-Manager/internal/infrastructure/pdf"
	"github.com/aryaman2519/My-Bussiness-Manager/internal/infrastructure/postgres"
	httpRouter "github.com/aryaman2519/My-Bussiness-Manager/internal/interfaces/http"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/config"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("tz", cfg.App.Timezone).Msg("timezone not found, using local")
		loc = time.Local
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	txnRepo := postgres.NewTransactionRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	mailer := inframail.NewGomailSender(cfg.SMTP, log)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	visionAnalyzer := infraai.NewGeminiVision(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	financeUC := finance.NewUseCase(txnRepo, accountRepo, loc)
	stockUC := stock.NewUseCase(
		stockRepo, userRepo, financeUC, mailer, log, loc,
		time.Duration(cfg.Billing.LowStockCooldownHr)*time.Hour,
	)
	generateBillUC := billing.NewGenerateBillUseCase(
		txRunner, stockRepo, saleRepo, userRepo, templateRepo,
		financeUC, pdfGenerator, mailer, log, loc, cfg.Billing.InvoiceDir,
	)
	billHistoryUC := billing.NewHistoryUseCase(saleRepo, log, loc)
	settingsUC := settings.NewTemplateUseCase(templateRepo, visionAnalyzer, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 << 20, // template image uploads
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Business Manager API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StockUC:      stockUC,
		GenerateBill: generateBillUC,
		BillHistory:  billHistoryUC,
		FinanceUC:    financeUC,
		SettingsUC:   settingsUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
