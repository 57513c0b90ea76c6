package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/exercise-tracker/docs"
	"github.com/sbilibin2017/exercise-tracker/internal/handlers"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/middlewares"
	"github.com/sbilibin2017/exercise-tracker/internal/repositories"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title exercise-tracker API
// @version 1.0.0
// @description Microservice for recording users and their exercise logs
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, staticDir, indexFile, logLevel, err := parseConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), appHost, appPort, staticDir, indexFile, logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "application stopped with error: %v\n", err)
		os.Exit(1)
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

// parseConfig loads environment variables from a file and returns the
// application configuration. PORT, when set, overrides APP_PORT for
// compatibility with hosting platforms that inject it.
func parseConfig(path string) (appHost, appPort, staticDir, indexFile, logLevel string, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	appHost = getEnv("APP_HOST", "")
	appPort = getEnv("APP_PORT", "3000")
	if port := getEnv("PORT", ""); port != "" {
		appPort = port
	}
	staticDir = getEnv("APP_STATIC_DIR", "public")
	indexFile = getEnv("APP_INDEX_FILE", "views/index.html")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	return
}

// run initializes the logger, in-memory stores, services and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, appHost, appPort, staticDir, indexFile, logLevel string) error {
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// In-memory stores, discarded on shutdown
	userStore := repositories.NewUserStore()
	exerciseStore := repositories.NewExerciseStore()

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(userStore)
	userWriteRepo := repositories.NewUserWriteRepository(userStore)
	exerciseReadRepo := repositories.NewExerciseReadRepository(exerciseStore)
	exerciseWriteRepo := repositories.NewExerciseWriteRepository(exerciseStore)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	exerciseService := services.NewExerciseService(userReadRepo, exerciseReadRepo, exerciseWriteRepo)

	// Initialize handlers
	createUserHandler := handlers.NewCreateUserHandler(userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	addExerciseHandler := handlers.NewAddExerciseHandler(exerciseService)
	getLogHandler := handlers.NewGetLogHandler(exerciseService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// API routes
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", createUserHandler)
		r.Get("/", listUsersHandler)
		r.Post("/{id}/exercises", addExerciseHandler)
		r.Get("/{id}/logs", getLogHandler)
	})

	// Landing page and static assets
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, indexFile)
	})
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(staticDir))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%s/swagger/doc.json", appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
