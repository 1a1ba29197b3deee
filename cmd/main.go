package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/product-listing/docs"
	"github.com/sbilibin2017/product-listing/internal/config"
	"github.com/sbilibin2017/product-listing/internal/handlers"
	"github.com/sbilibin2017/product-listing/internal/jwt"
	"github.com/sbilibin2017/product-listing/internal/logger"
	"github.com/sbilibin2017/product-listing/internal/middlewares"
	"github.com/sbilibin2017/product-listing/internal/repositories"
	"github.com/sbilibin2017/product-listing/internal/services"
	"github.com/sbilibin2017/product-listing/internal/web"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title product-listing API
// @version 1.0.0
// @description Product catalog with signup, login and product CRUD
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, optional Kafka writer and HTTP server,
// and blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)
	warnInsecureDefaults(cfg)

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		return err
	}

	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("publishing product events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(cfg, db, kafkaWriter),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// warnInsecureDefaults logs settings that must not reach production unchanged.
func warnInsecureDefaults(cfg *config.Config) {
	if cfg.UsesDefaultJWTSecret() {
		logger.Log.Warn("JWT_SECRET_KEY is not set, tokens are signed with the built-in development secret")
	}
}

// newRouter wires repositories, services and handlers into the HTTP routes.
// kafkaWriter may be nil, in which case product events are not published.
func newRouter(cfg *config.Config, db *sqlx.DB, kafkaWriter services.KafkaWriter) http.Handler {
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	productWriteRepo := repositories.NewProductWriteRepository(db)
	productReadRepo := repositories.NewProductReadRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	productService := services.NewProductService(productWriteRepo, productReadRepo, kafkaWriter)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		r.With(middlewares.TxMiddleware(db)).Post("/signup", handlers.NewSignupHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		r.Group(func(r chi.Router) {
			if cfg.ProductsRequireAuth {
				r.Use(middlewares.AuthMiddleware(tokens))
			}
			r.Post("/products", handlers.NewCreateProductHandler(productService))
			r.Get("/products", handlers.NewListProductsHandler(productService))
			r.Get("/products/{id}", handlers.NewGetProductHandler(productService))
			r.Put("/products/{id}", handlers.NewUpdateProductHandler(productService))
			r.Delete("/products/{id}", handlers.NewDeleteProductHandler(productService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Handle("/*", web.NewHandler())

	return r
}
