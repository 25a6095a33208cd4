package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"

	"github.com/radityo/guestgate/internal/adapter/handler"
	"github.com/radityo/guestgate/internal/adapter/mailer"
	"github.com/radityo/guestgate/internal/adapter/notifier"
	"github.com/radityo/guestgate/internal/adapter/queue"
	"github.com/radityo/guestgate/internal/adapter/repository/postgres"
	"github.com/radityo/guestgate/internal/core/codec"
	"github.com/radityo/guestgate/internal/core/services"
	"github.com/radityo/guestgate/internal/platform/database"
	"github.com/radityo/guestgate/internal/platform/metrics"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using OS environment.")
	}

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "guestgate"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	redisAddr := fmt.Sprintf("%s:%s", getEnv("REDIS_HOST", "localhost"), getEnv("REDIS_PORT", "6379"))
	log.Printf("Connecting to Redis at %s...", redisAddr)

	redisClient := redis.NewClient(&redis.Options{
		Addr: redisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully!")

	badgeSecret := []byte(getEnv("BADGE_SECRET", "dev-badge-secret"))
	jwtSecret := []byte(getEnv("JWT_SECRET", "dev-operator-secret"))

	notifyLimit, err := strconv.ParseInt(getEnv("NOTIFY_DAILY_LIMIT", "300"), 10, 64)
	if err != nil {
		log.Fatalf("Invalid NOTIFY_DAILY_LIMIT: %v", err)
	}

	ledgerRepo := postgres.NewLedgerRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	operatorRepo := postgres.NewOperatorRepository(db)

	changeNotifier := notifier.NewRedisNotifier(redisClient)
	badgeCodec := codec.NewBadgeCodec(badgeSecret)
	sender := mailer.NewHTTPMailer(getEnv("MAILER_URL", "http://localhost:9090"))

	allocationService := services.NewAllocationService(ledgerRepo, assignmentRepo, attendeeRepo, orderRepo, changeNotifier, redisClient)
	checkinService := services.NewCheckInService(badgeCodec, attendeeRepo, changeNotifier)
	consumptionService := services.NewConsumptionService(assignmentRepo, operatorRepo, changeNotifier)
	notificationService := services.NewNotificationService(attendeeRepo, sender, redisClient, notifyLimit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go allocationService.RunReconciliationLoop(ctx)

	if amqpURL := os.Getenv("RABBITMQ_URL"); amqpURL != "" {
		conn, err := amqp.Dial(amqpURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		consumer, err := queue.NewOrderConsumer(conn, allocationService)
		if err != nil {
			log.Fatalf("Failed to set up order consumer: %v", err)
		}

		go func() {
			if err := consumer.Run(ctx); err != nil {
				log.Printf("Order consumer exited: %v", err)
			}
		}()
	} else {
		log.Println("RABBITMQ_URL not set, order intake disabled.")
	}

	metrics.MustRegister()

	apiHandler := handler.New(checkinService, consumptionService, allocationService, notificationService, jwtSecret)
	wsHandler := handler.NewWSHandler(changeNotifier)

	router := apiHandler.Router(wsHandler)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	port := getEnv("SERVER_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
