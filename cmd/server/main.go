package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"tailor-backend/internal/auth"
	"tailor-backend/internal/cache"
	"tailor-backend/internal/config"
	"tailor-backend/internal/database"
	"tailor-backend/internal/db"
	"tailor-backend/internal/handlers"
	"tailor-backend/internal/health"
	apphttp "tailor-backend/internal/http"
	"tailor-backend/internal/middleware"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"
	"tailor-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
		log.Printf("[Redis] Cache unavailable, continuing without it: %v", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	staffRepo := repositories.NewStaffRepository(pool)
	paymentRepo := repositories.NewStaffPaymentRepository(pool)
	txnRepo := repositories.NewTransactionRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	userService := services.NewUserService(userRepo, jwtManager)
	customerService := services.NewCustomerService(customerRepo, orderRepo)
	orderService := services.NewOrderService(pool, orderRepo, customerRepo, txnRepo)
	staffService := services.NewStaffService(staffRepo)
	paymentService := services.NewStaffPaymentService(pool, paymentRepo, staffRepo, txnRepo)
	txnService := services.NewTransactionService(txnRepo)
	reportService := services.NewReportService(txnRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	orderHandler := handlers.NewOrderHandler(orderService)
	staffHandler := handlers.NewStaffHandler(staffService)
	paymentHandler := handlers.NewStaffPaymentHandler(paymentService)
	txnHandler := handlers.NewTransactionHandler(txnService, reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := apphttp.NewRouter(
		authHandler,
		customerHandler,
		orderHandler,
		staffHandler,
		paymentHandler,
		txnHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(corsMiddleware(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[HTTP] Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
