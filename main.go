package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/Legal-Form-ci/assojereb-sub000/internals/configs"
	database "github.com/Legal-Form-ci/assojereb-sub000/internals/databases"
	paymentService "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/payments/service"
	reminderService "github.com/Legal-Form-ci/assojereb-sub000/internals/features/finance/reminders/service"
	notificationService "github.com/Legal-Form-ci/assojereb-sub000/internals/features/home/notifications/service"
	authScheduler "github.com/Legal-Form-ci/assojereb-sub000/internals/features/users/auth/scheduler"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/middlewares"
	routes "github.com/Legal-Form-ci/assojereb-sub000/internals/route"
	"github.com/Legal-Form-ci/assojereb-sub000/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON rapide
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware de base + performance
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + chrono
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 🌱 seeds idempotents (SEED_ON_BOOT=true)
	seeds.Run(database.DB)

	// ⏱ tâches de fond une fois la DB prête
	authScheduler.StartBlacklistCleanupScheduler(database.DB)
	reminderService.StartScheduler(database.DB, 24*time.Hour)
	notificationService.StartDispatcher(database.DB, 1*time.Minute)

	// 💳 Passerelle de paiement
	paymentService.InitMidtrans(configs.MidtransServerKey)

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// 📷 Photos des membres
	app.Static("/uploads", configs.UploadDir)

	// ✅ Routes
	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ AssoJereb à l'écoute sur :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// arrêt propre + fermeture du pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
