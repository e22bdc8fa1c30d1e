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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/edu2job/edu2job-backend/internal/google"
	"github.com/edu2job/edu2job-backend/internal/handlers"
	"github.com/edu2job/edu2job-backend/internal/jwt"
	"github.com/edu2job/edu2job-backend/internal/logger"
	"github.com/edu2job/edu2job-backend/internal/middlewares"
	"github.com/edu2job/edu2job-backend/internal/repositories"
	"github.com/edu2job/edu2job-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title edu2job API
// @version 1.0.0
// @description Recruitment platform backend: registration, Google login, profiles, job applications, and admin review
// @host localhost:8080
// @BasePath /
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

// config holds all application settings resolved from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	KafkaAddr  string
	KafkaTopic string

	GoogleClientID            string
	GoogleVerifyTimeoutSecond int

	JWTSecretKey        string
	JWTAccessExpSecond  int
	JWTRefreshExpSecond int
	StatsCacheExpSecond int
}

// parseConfig loads environment variables from a file and resolves all
// application, database, Redis, Kafka, Google, and JWT configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "edu2job")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return nil, err
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return nil, err
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return nil, err
	}

	// Redis config; REDIS_HOST may be empty to run without the stats cache
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.StatsCacheExpSecond, err = strconv.Atoi(getEnv("ADMIN_STATS_CACHE_EXP_SECOND", "60")); err != nil {
		return nil, err
	}

	// Kafka config; KAFKA_ADDR may be empty to run without event publishing
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "application-status-events")

	// Google OAuth config
	cfg.GoogleClientID = getEnv("GOOGLE_CLIENT_ID", "")
	if cfg.GoogleVerifyTimeoutSecond, err = strconv.Atoi(getEnv("GOOGLE_VERIFY_TIMEOUT_SECOND", "10")); err != nil {
		return nil, err
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTAccessExpSecond, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_SECOND", "3600")); err != nil {
		return nil, err
	}
	if cfg.JWTRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis; the stats cache degrades to the database when absent
	var statsCache services.StatsCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		statsCache = repositories.NewStatsCacheRepository(rdb, time.Duration(cfg.StatsCacheExpSecond)*time.Second)
	}

	// Kafka status-event writer; optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Google ID-token verifier
	verifier, err := google.NewVerifier(ctx, cfg.GoogleClientID,
		time.Duration(cfg.GoogleVerifyTimeoutSecond)*time.Second)
	if err != nil {
		return fmt.Errorf("Google verifier init failed: %w", err)
	}

	// JWT service
	jwtSvc := jwt.New(cfg.JWTSecretKey,
		time.Duration(cfg.JWTAccessExpSecond)*time.Second,
		time.Duration(cfg.JWTRefreshExpSecond)*time.Second)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db)
	appReadRepo := repositories.NewApplicationReadRepository(db)
	appWriteRepo := repositories.NewApplicationWriteRepository(db)
	statsReadRepo := repositories.NewStatsReadRepository(db)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, verifier, jwtSvc)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo)
	applicationService := services.NewApplicationService(appReadRepo, appWriteRepo, kafkaWriter)
	adminService := services.NewAdminService(statsReadRepo, statsCache, userReadRepo, userWriteRepo)

	// Handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	googleLoginHandler := handlers.NewGoogleLoginHandler(authService)
	meHandler := handlers.NewMeHandler(authService)
	getProfileHandler := handlers.NewGetProfileHandler(profileService)
	updateProfileHandler := handlers.NewUpdateProfileHandler(profileService)
	listApplicationsHandler := handlers.NewListApplicationsHandler(applicationService)
	createApplicationHandler := handlers.NewCreateApplicationHandler(applicationService)
	updateApplicationStatusHandler := handlers.NewUpdateApplicationStatusHandler(applicationService)
	adminListApplicationsHandler := handlers.NewAdminListApplicationsHandler(applicationService)
	adminStatsHandler := handlers.NewAdminStatsHandler(adminService)
	adminListUsersHandler := handlers.NewAdminListUsersHandler(adminService)
	updateUserStatusHandler := handlers.NewUpdateUserStatusHandler(adminService)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register/", registerHandler)
	r.Post("/google-login/", googleLoginHandler)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(jwtSvc))

		r.Get("/me/", meHandler)
		r.Get("/profile/me/", getProfileHandler)
		r.Patch("/profile/me/", updateProfileHandler)
		r.Put("/profile/me/", updateProfileHandler)
		r.Get("/jobs/applied/", listApplicationsHandler)
		r.Post("/jobs/applied/", createApplicationHandler)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AdminMiddleware())

			// Both paths mutate the same resource
			r.Patch("/jobs/applied/{id}/status/", updateApplicationStatusHandler)
			r.Patch("/admin/job-applications/{id}/status/", updateApplicationStatusHandler)

			r.Get("/admin/job-applications/", adminListApplicationsHandler)
			r.Get("/admin/stats/", adminStatsHandler)
			r.Get("/admin/users/", adminListUsersHandler)
			r.Patch("/admin/user/{id}/status/", updateUserStatusHandler)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
