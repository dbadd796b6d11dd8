package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/eakarsu/go_deli/internal/cart"
	"github.com/eakarsu/go_deli/internal/checkout"
	"github.com/eakarsu/go_deli/internal/events"
	h "github.com/eakarsu/go_deli/internal/http"
	"github.com/eakarsu/go_deli/internal/menu"
	"github.com/eakarsu/go_deli/internal/orders"
	"github.com/eakarsu/go_deli/internal/session"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Config struct {
	HTTPPort          string
	AcceptanceURL     string
	MongoURI          string
	MongoDatabase     string
	RedisAddr         string
	MenuDBPath        string
	MenuMigrations    string
	OrdersMigrations  string
	PostgresHost      string
	PostgresPort      int
	PostgresUser      string
	PostgresPassword  string
	PostgresDB        string
	KafkaBrokers      []string
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

func loadConfig() *Config {
	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		log.Fatalf("invalid POSTGRES_PORT: %v", err)
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}

	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		AcceptanceURL:    os.Getenv("ACCEPTANCE_URL"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "deli"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		MenuDBPath:       os.Getenv("MENU_DB_PATH"),
		MenuMigrations:   getEnv("MENU_MIGRATIONS_PATH", "./migrations/menu"),
		OrdersMigrations: getEnv("ORDERS_MIGRATIONS_PATH", "./migrations/orders"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       getEnv("POSTGRES_DB", "deli"),
		KafkaBrokers:     brokers,
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Menu catalog: sqlite when a path is configured, seeded memory otherwise.
	var menuRepo menu.Repository
	if cfg.MenuDBPath != "" {
		sqliteRepo, err := menu.NewSQLiteRepository(cfg.MenuDBPath)
		if err != nil {
			log.Fatalf("failed to open menu database: %v", err)
		}
		if err := sqliteRepo.RunMigrations(cfg.MenuMigrations); err != nil {
			log.Fatalf("failed to run menu migrations: %v", err)
		}
		menuRepo = sqliteRepo
		log.Printf("menu catalog backed by sqlite at %s", cfg.MenuDBPath)
	} else {
		menuRepo = menu.NewMemoryRepository(menu.SeedItems(), menu.SeedCustomizableItems())
		log.Println("menu catalog backed by memory seed")
	}
	defer menuRepo.Close()

	// Session carts: mongo when configured, memory otherwise.
	var cartRepo session.CartRepository
	if cfg.MongoURI != "" {
		db, err := session.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("failed to connect to mongodb: %v", err)
		}
		defer func() {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				log.Printf("failed to disconnect mongodb: %v", err)
			}
		}()
		cartRepo = session.NewMongoRepository(db)
		log.Println("carts backed by mongodb")
	} else {
		cartRepo = session.NewMemoryRepository()
		log.Println("carts backed by memory")
	}

	var cartCache session.CartCache = session.NopCache{}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to ping redis: %v", err)
		}
		defer client.Close()
		cartCache = session.NewRedisCache(client)
		log.Println("cart cache backed by redis")
	}

	cartService := session.NewService(cartRepo, cartCache, cart.UUIDGenerator{})

	// Order acceptance: postgres when configured, memory otherwise.
	var orderRepo orders.Repository
	if cfg.PostgresHost != "" {
		creds := &orders.Credentials{
			Host:              cfg.PostgresHost,
			Port:              cfg.PostgresPort,
			User:              cfg.PostgresUser,
			Password:          cfg.PostgresPassword,
			DBName:            cfg.PostgresDB,
			MigrationsDirPath: cfg.OrdersMigrations,
		}
		pgRepo, err := orders.NewPostgresRepository(creds)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		if err := pgRepo.RunMigrations(creds); err != nil {
			log.Fatalf("failed to run orders migrations: %v", err)
		}
		orderRepo = pgRepo
		log.Println("orders backed by postgres")
	} else {
		orderRepo = orders.NewMemoryRepository()
		log.Println("orders backed by memory")
	}
	defer orderRepo.Close()

	var publisher orders.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("order events published to kafka at %v", cfg.KafkaBrokers)
	}

	orderService := orders.NewService(orderRepo, publisher)

	// Checkout hands off to a remote acceptance endpoint when one is
	// configured, otherwise straight to the in-process service.
	var placer checkout.OrderPlacer
	if cfg.AcceptanceURL != "" {
		placer = checkout.NewHTTPPlacer(cfg.AcceptanceURL, cfg.RequestTimeout)
		log.Printf("orders placed via %s", cfg.AcceptanceURL)
	} else {
		placer = orders.NewLocalPlacer(orderService)
	}

	pricing := cart.DefaultPricingConfig()
	checkoutService := checkout.NewService(cartService, placer, pricing)

	router := h.NewRouter(
		h.NewMenuHandler(menuRepo, cfg.RequestTimeout),
		h.NewCartHandler(cartService, menuRepo, pricing, cfg.RequestTimeout),
		h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout),
		h.NewOrdersHandler(orderService, cfg.RequestTimeout),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "go-deli"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
