package main

import (
	"context"
	"log"
	"time"

	"tailor-backend/internal/auth"
	"tailor-backend/internal/config"
	"tailor-backend/internal/database"
	"tailor-backend/internal/db"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"
	"tailor-backend/migrations"
)

// Seeds the database with an admin login and a small demo dataset.
// Orders go through the order service so their ledger entries are
// derived the same way the API derives them.
func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx := context.Background()

	migrator := database.NewMigrator(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repositories.NewUserRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	staffRepo := repositories.NewStaffRepository(pool)
	txnRepo := repositories.NewTransactionRepository(pool)

	customerService := services.NewCustomerService(customerRepo, orderRepo)
	orderService := services.NewOrderService(pool, orderRepo, customerRepo, txnRepo)
	staffService := services.NewStaffService(staffRepo)
	txnService := services.NewTransactionService(txnRepo)

	// Admin user
	hash, err := auth.HashPassword("admin")
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}
	admin := &models.User{
		Name:         "Admin User",
		Email:        "admin@gmail.com",
		PasswordHash: hash,
		Role:         "admin",
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("[Seed] Admin user created: %s", admin.Email)

	// Customers
	customers := []*models.CreateCustomerRequest{
		{
			Name:        "John Doe",
			PhoneNumber: "555-123-4567",
			Email:       "john@example.com",
			Address:     "123 Main St, Anytown",
			Measurements: &models.Measurements{
				Chest: "40", Waist: "34", Hips: "38", Inseam: "32",
				Shoulder: "18", Sleeve: "25", Neck: "16",
			},
			Notes: "Prefers slim fit suits",
		},
		{
			Name:        "Jane Smith",
			PhoneNumber: "555-987-6543",
			Email:       "jane@example.com",
			Address:     "456 Oak Ave, Somewhere",
			Measurements: &models.Measurements{
				Chest: "36", Waist: "28", Hips: "38", Inseam: "30",
				Shoulder: "16", Sleeve: "23", Neck: "14",
			},
			Notes: "Allergic to wool",
		},
	}
	for _, req := range customers {
		if _, err := customerService.CreateCustomer(ctx, req); err != nil {
			log.Fatalf("Failed to create customer %s: %v", req.Name, err)
		}
	}
	log.Printf("[Seed] Customers created")

	// Orders (each derives an income transaction)
	orders := []*models.CreateOrderRequest{
		{
			CustomerName: "John Doe",
			PhoneNumber:  "555-123-4567",
			Comment:      "Blue suit with slim fit",
			Price:        450,
		},
		{
			CustomerName: "Jane Smith",
			PhoneNumber:  "555-987-6543",
			Comment:      "Red dress with alterations",
			Price:        250,
		},
	}
	for _, req := range orders {
		if _, err := orderService.CreateOrder(ctx, req); err != nil {
			log.Fatalf("Failed to create order for %s: %v", req.CustomerName, err)
		}
	}
	log.Printf("[Seed] Orders created")

	// Staff
	joinedMichael := time.Date(2022, time.January, 15, 0, 0, 0, 0, time.UTC)
	joinedSarah := time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)
	staff := []*models.CreateStaffRequest{
		{
			Name:        "Michael Brown",
			PhoneNumber: "555-111-2222",
			Email:       "michael@example.com",
			Address:     "123 Tailor St, Sewville",
			Position:    "Senior Tailor",
			Salary:      3500,
			JoiningDate: &joinedMichael,
			Notes:       "Specializes in suits",
		},
		{
			Name:        "Sarah Wilson",
			PhoneNumber: "555-333-4444",
			Email:       "sarah@example.com",
			Address:     "456 Stitch Ave, Fabrictown",
			Position:    "Assistant Tailor",
			Salary:      2500,
			JoiningDate: &joinedSarah,
			Notes:       "Specializes in dresses",
		},
	}
	for _, req := range staff {
		if _, err := staffService.CreateStaff(ctx, req); err != nil {
			log.Fatalf("Failed to create staff %s: %v", req.Name, err)
		}
	}
	log.Printf("[Seed] Staff created")

	// Manual expense transactions
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	expenses := []*models.CreateTransactionRequest{
		{
			Description: "Fabric Purchase",
			Amount:      200,
			Date:        &now,
			Type:        models.TransactionTypeExpense,
			Category:    "materials",
			Notes:       "Premium wool fabric",
		},
		{
			Description: "Rent Payment",
			Amount:      800,
			Date:        &monthStart,
			Type:        models.TransactionTypeExpense,
			Category:    "rent",
			Notes:       "Monthly shop rent",
		},
	}
	for _, req := range expenses {
		if _, err := txnService.CreateTransaction(ctx, req); err != nil {
			log.Fatalf("Failed to create transaction %s: %v", req.Description, err)
		}
	}
	log.Printf("[Seed] Transactions created")

	log.Printf("[Seed] Database seeded successfully")
}
