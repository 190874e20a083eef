package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/mishmeret-app/mishmeret/internal/api"
	"github.com/mishmeret-app/mishmeret/internal/db"
	"github.com/mishmeret-app/mishmeret/internal/services"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("loading .env failed: %v", err)
	}

	location := mustLoadLocation(getEnv("TZ", "Asia/Jerusalem"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "mishmeret.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "") == "true"

	editorUsername := getEnv("EDITOR_USERNAME", "admin")
	editorPassword := getEnv("EDITOR_PASSWORD", "admin123")
	verifier, err := services.NewStaticCredentialVerifierFromPassword(editorUsername, editorPassword)
	if err != nil {
		log.Fatalf("credential setup failed: %v", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, location, verifier, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Mishmeret",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	announcer := buildAnnouncer(handler.StatusService(), location)
	if announcer.Enabled() {
		announcer.Start(lifecycleCtx)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Mishmeret listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildAnnouncer(statuses services.StatusReader, location *time.Location) *services.AnnouncerService {
	token := getEnv("SLACK_BOT_TOKEN", "")
	channel := getEnv("SLACK_DUTY_CHANNEL", "")

	var client services.SlackClient
	if token != "" {
		client = slack.New(token)
	}
	return services.NewAnnouncerService(statuses, client, channel, location)
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
