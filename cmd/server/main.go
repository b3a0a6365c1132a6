package main // Entry point package

import (
	"context" // Context for schema bootstrap
	"log"     // Logging library
	"time"    // Bootstrap timeout

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/platefront/restaurant-api/internal/billing"    // Money arithmetic and status rules
	"github.com/platefront/restaurant-api/internal/config"     // Internal config loader
	"github.com/platefront/restaurant-api/internal/database"   // MySQL connection and schema bootstrap
	"github.com/platefront/restaurant-api/internal/event"      // RabbitMQ fan-out consumer
	"github.com/platefront/restaurant-api/internal/handler"    // HTTP handlers
	"github.com/platefront/restaurant-api/internal/middleware" // Rate limiting and response caching
	"github.com/platefront/restaurant-api/internal/repository" // Data access layer
	"github.com/platefront/restaurant-api/internal/router"     // Route registration
)

func main() {
	// Load a .env file when present; real environments set variables
	// directly and the file is simply absent there.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	// The status mode is parsed once at startup so a typo in the
	// environment fails the boot instead of a payment request.
	mode, err := billing.ParseStatusMode(cfg.PaymentStatusMode)
	if err != nil {
		log.Fatalf("invalid PAYMENT_STATUS_MODE: %v", err)
	}

	db, err := database.Open(database.Config{
		User:            cfg.DBUser,
		Pass:            cfg.DBPass,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.DBConnMaxLifeMin) * time.Minute,
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema bootstrap failed: %v", err)
	}
	cancel()

	// Repositories share the single pooled handle.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	menu := repository.NewMenuRepo(db)
	tables := repository.NewTableRepo(db)
	reservations := repository.NewReservationRepo(db)
	orders := repository.NewOrderRepo(db)
	payments := repository.NewPaymentRepo(db)

	e := echo.New() // Create Echo instance

	// Redis backs the rate limiter and the response cache.  A missing
	// Redis is not fatal: both features simply stay off.
	rdb := config.NewRedisClient()
	var cacheMW echo.MiddlewareFunc
	if rdb != nil {
		rlCfg := config.LoadRateLimitConfig()
		if rlCfg.Enabled {
			e.Use(middleware.NewTokenBucket(rlCfg, rdb))
		}
		cacheCfg := config.LoadCacheConfig()
		if cacheCfg.Enabled {
			cacheMW = middleware.NewRedisCache(cacheCfg, rdb)
		}
	} else {
		log.Println("redis unavailable: rate limiting and response caching disabled")
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterMenu(e, handler.NewMenuHandler(menu), cfg.JWTSecret, cacheMW)
	router.RegisterTables(e, handler.NewTableHandler(tables), cfg.JWTSecret, cacheMW)
	router.RegisterReservations(e, handler.NewReservationHandler(reservations, tables), cfg.JWTSecret)
	router.RegisterOrders(e, handler.NewOrderHandler(orders, menu, tables, mode), cfg.JWTSecret)
	router.RegisterPayments(e, handler.NewPaymentHandler(payments), cfg.JWTSecret)

	// The consumer drains the fan-out queue into the event log.  It
	// reconnects on its own, so a broker outage only pauses delivery.
	go func() {
		if err := event.StartConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
