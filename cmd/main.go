package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/patorma/book-reviews/internal/facades"
	"github.com/patorma/book-reviews/internal/jwt"
	"github.com/patorma/book-reviews/internal/logger"
	"github.com/patorma/book-reviews/internal/middlewares"
	"github.com/patorma/book-reviews/internal/repositories"
	"github.com/patorma/book-reviews/internal/router"
	"github.com/patorma/book-reviews/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/patorma/book-reviews/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseURL    string
	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey string
	JWTExp       time.Duration

	OpenLibraryURL       string
	OpenLibraryCoversURL string
	CatalogTimeout       time.Duration
	CatalogRPS           float64
	CatalogCacheExp      time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CORSAllowedOrigins []string
}

// dsn returns DATABASE_URL when set, otherwise builds one from the POSTGRES_* keys.
func (c config) dsn() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// @title Book Reviews API
// @version 1.0.0
// @description Search the Open Library catalog and keep a personal library of reviewed and rated books
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, JWT, catalog, Kafka and CORS configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getList := func(key string) []string {
		var out []string
		for _, item := range strings.Split(getEnv(key, ""), ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "books")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", "3600")
	if err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Open Library config
	cfg.OpenLibraryURL = getEnv("OPEN_LIBRARY_API_URL", facades.DefaultBaseURL)
	cfg.OpenLibraryCoversURL = getEnv("OPEN_LIBRARY_COVERS_URL", facades.DefaultCoversURL)
	timeout, err := getInt("CATALOG_TIMEOUT_SECOND", "10")
	if err != nil {
		return
	}
	cfg.CatalogTimeout = time.Duration(timeout) * time.Second
	if cfg.CatalogRPS, err = strconv.ParseFloat(getEnv("CATALOG_RPS", "5"), 64); err != nil {
		err = fmt.Errorf("CATALOG_RPS: %w", err)
		return
	}
	cacheExp, err := getInt("CATALOG_CACHE_EXP_SECOND", "300")
	if err != nil {
		return
	}
	cfg.CatalogCacheExp = time.Duration(cacheExp) * time.Second

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "library-events")

	// CORS config
	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS")

	return
}

// run initializes the logger, database, Redis, Kafka and the catalog client,
// wires the HTTP API and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Publishing library events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, library events disabled")
	}

	// Open Library client
	catalog := facades.NewOpenLibraryFacade(
		facades.WithBaseURL(cfg.OpenLibraryURL),
		facades.WithCoversURL(cfg.OpenLibraryCoversURL),
		facades.WithTimeout(cfg.CatalogTimeout),
		facades.WithRateLimit(cfg.CatalogRPS, 5),
	)

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db, middlewares.GetTxFromContext)
	bookWriteRepo := repositories.NewBookWriteRepository(db, middlewares.GetTxFromContext)
	cacheRepo := repositories.NewCatalogCacheRepository(rdb, cfg.CatalogCacheExp)
	historyRepo := repositories.NewSearchHistoryRepository(rdb, repositories.DefaultSearchHistoryLimit)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	searchService := services.NewSearchService(catalog, bookReadRepo, cacheRepo, historyRepo)
	libraryService := services.NewLibraryService(bookReadRepo, bookWriteRepo, catalog, kafkaWriter,
		services.WithCommitHook(middlewares.AfterCommit))

	// Setup router
	handler := router.New(router.Config{
		Auth:           authService,
		Search:         searchService,
		Library:        libraryService,
		Tokener:        tokens,
		DB:             db,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
