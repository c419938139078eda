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
	"gorm.io/gorm"

	"devcamper_backend/internals/configs"
	database "devcamper_backend/internals/databases"
	scheduler "devcamper_backend/internals/features/users/auth/scheduler"
	userRepo "devcamper_backend/internals/features/users/user/repository"
	helper "devcamper_backend/internals/helpers"
	"devcamper_backend/internals/helpers/events"
	"devcamper_backend/internals/helpers/storage"
	middlewares "devcamper_backend/internals/middlewares"
	routes "devcamper_backend/internals/route"
	"devcamper_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		BodyLimit:             int(cfg.MaxFileUpload) + 1<<20, // photo + multipart overhead
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + pool + schema
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("[FATAL] database: %v", err)
	}
	database.TunePool(db)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	err = database.RunMigrations(migrateCtx, db)
	cancelMigrate()
	if err != nil {
		log.Fatalf("[FATAL] migrations: %v", err)
	}

	// go run . seed | go run . destroy
	if len(os.Args) > 1 {
		runSeedCommand(os.Args[1], db, cfg)
		database.Close(db)
		return
	}

	rdb := database.ConnectRedis(cfg)

	publisher, err := events.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("[FATAL] event publisher: %v", err)
	}

	store, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("[FATAL] upload storage: %v", err)
	}

	// ⏱ scheduler setelah DB siap
	cron, err := scheduler.StartResetTokenCleanupScheduler(cfg.ResetTokenCleanupCron, userRepo.New(db))
	if err != nil {
		log.Fatalf("[FATAL] scheduler: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, routes.Deps{
		Config:    cfg,
		DB:        db,
		Redis:     rdb,
		Publisher: publisher,
		Storage:   store,
	})

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-cron.Stop().Done()
	if err := publisher.Close(); err != nil {
		log.Printf("[WARN] publisher close: %v", err)
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	database.Close(db)
}

func runSeedCommand(cmd string, db *gorm.DB, cfg configs.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var err error
	switch cmd {
	case "seed":
		err = seeds.RunAllSeeds(ctx, db, cfg.SeedDir)
	case "destroy":
		err = seeds.DestroyAll(ctx, db)
	default:
		log.Fatalf("[FATAL] unknown command %q (want seed or destroy)", cmd)
	}
	if err != nil {
		log.Fatalf("[FATAL] %s: %v", cmd, err)
	}
}
