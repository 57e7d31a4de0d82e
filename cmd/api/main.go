package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/dukkaniai/dukkani-ai-be/internal/core/agent"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/audio"
	"github.com/dukkaniai/dukkani-ai-be/internal/core/genai"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/handlers"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/repositories"
	"github.com/dukkaniai/dukkani-ai-be/internal/modules/store/services"
	"github.com/dukkaniai/dukkani-ai-be/internal/shared/config"
	"github.com/dukkaniai/dukkani-ai-be/internal/shared/database"
	"github.com/dukkaniai/dukkani-ai-be/internal/shared/utils"

	_ "github.com/dukkaniai/dukkani-ai-be/cmd/api/docs"
)

// @title Dukkani AI Store API
// @version 1.0
// @description API documentation for the Dukkani AI store builder and sales agent
// @contact.name API Support
// @contact.email support@dukkani.ai
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting store-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init repositories (use GORM instance)
	productRepo := repositories.NewProductRepo(db.GORM)
	conversationRepo := repositories.NewConversationRepo(db.GORM)
	settingsRepo := repositories.NewSettingsRepo(db.GORM)

	// Init generative AI service (multi-provider support)
	aiService, err := genai.NewService(&genai.ProviderConfig{
		Type:        genai.ProviderType(cfg.AIProvider),
		GeminiKey:   cfg.GeminiAPIKey,
		OpenAIKey:   cfg.OpenAIKey,
		TextModel:   cfg.TextModel,
		ImageModel:  cfg.ImageModel,
		SpeechModel: cfg.SpeechModel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	log.Printf("🤖 Using AI provider: %s", aiService.GetProviderName())

	// Init conversation engine with the single playback slot
	player := audio.NewPlayer()
	engine := agent.NewEngine(aiService, player, nil)

	// Init services
	studioService := services.NewStudioService(aiService, productRepo)
	agentService := services.NewAgentService(engine, settingsRepo, conversationRepo, cfg.StoreName, cfg.CountryCode)
	engine.SetLogger(agentService)
	storefrontService := services.NewStorefrontService()
	dashboardService := services.NewDashboardService()
	pricingService := services.NewPricingService()

	// Start the buyer notice rotation
	if err := storefrontService.Start(); err != nil {
		log.Fatalf("Failed to start storefront service: %v", err)
	}
	defer storefrontService.Stop()

	// Init handlers
	healthHandler := handlers.NewHealthHandler(aiService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	studioHandler := handlers.NewStudioHandler(studioService)
	agentHandler := handlers.NewAgentHandler(agentService)
	storefrontHandler := handlers.NewStorefrontHandler(storefrontService)
	pricingHandler := handlers.NewPricingHandler(pricingService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Dukkani AI Store API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Dashboard routes
	app.Get("/dashboard/overview", dashboardHandler.GetOverview)

	// Product Studio routes
	app.Post("/studio/generate", studioHandler.GenerateProduct)
	app.Get("/studio/product", studioHandler.GetProduct)
	app.Post("/studio/import", studioHandler.SmartImport)
	app.Post("/studio/ad-copy", studioHandler.AdCopy)
	app.Post("/studio/seo", studioHandler.SEO)
	app.Post("/studio/profit", studioHandler.Profit)

	// Agent routes
	app.Get("/agent/settings", agentHandler.GetSettings)
	app.Put("/agent/settings", agentHandler.UpdateSettings)
	app.Post("/agent/conversations", agentHandler.StartConversation)
	app.Get("/agent/conversations/:id", agentHandler.GetTranscript)
	app.Post("/agent/conversations/:id/messages", agentHandler.SendMessage)
	app.Get("/agent/conversations/:id/clips/:clip", agentHandler.GetClip)
	app.Post("/agent/conversations/:id/playback/:clip", agentHandler.TogglePlayback)
	app.Post("/agent/conversations/:id/playback/:clip/complete", agentHandler.CompletePlayback)
	app.Get("/agent/playback", agentHandler.GetPlayback)
	app.Get("/agent/deeplink", agentHandler.DeepLink)

	// Storefront preview routes
	app.Get("/storefront/themes", storefrontHandler.ListThemes)
	app.Get("/storefront/products", storefrontHandler.ListProducts)
	app.Post("/storefront/sessions", storefrontHandler.CreateSession)
	app.Get("/storefront/sessions/:id", storefrontHandler.GetSession)
	app.Post("/storefront/sessions/:id/theme", storefrontHandler.SelectTheme)
	app.Post("/storefront/sessions/:id/cart", storefrontHandler.AddToCart)
	app.Delete("/storefront/sessions/:id/cart/:index", storefrontHandler.RemoveFromCart)
	app.Get("/storefront/sessions/:id/search", storefrontHandler.Search)

	// Pricing routes
	app.Get("/pricing/plans", pricingHandler.ListPlans)

	// Start server
	log.Printf("✅ store-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
