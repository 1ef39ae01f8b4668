package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tailor-backend/internal/handlers"
	"tailor-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	staffHandler *handlers.StaffHandler,
	staffPaymentHandler *handlers.StaffPaymentHandler,
	transactionHandler *handlers.TransactionHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Request metrics run after route matching so the path label is the
	// route template, not the raw URL
	r.Use(middleware.MetricsMiddleware)

	// Smoke-test endpoint
	r.HandleFunc("/hello", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "Hello, World!")
	}).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	// Health and metrics
	r.HandleFunc("/api/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/api/health/system", healthHandler.SystemStats).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes - Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/measurements", customerHandler.AddMeasurement).Methods("POST")

	// Protected API routes - Orders (fixed paths registered before /{id})
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("/stats/recent", orderHandler.RecentOrders).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}", orderHandler.DeleteOrder).Methods("DELETE")

	// Protected API routes - Staff
	staffAPI := r.PathPrefix("/api/staff").Subrouter()
	staffAPI.Use(authMiddleware.Authenticate)
	staffAPI.HandleFunc("", staffHandler.ListStaff).Methods("GET")
	staffAPI.HandleFunc("", staffHandler.CreateStaff).Methods("POST")
	staffAPI.HandleFunc("/{id}", staffHandler.GetStaff).Methods("GET")
	staffAPI.HandleFunc("/{id}", staffHandler.UpdateStaff).Methods("PUT")
	staffAPI.HandleFunc("/{id}", staffHandler.DeleteStaff).Methods("DELETE")

	// Protected API routes - Staff Payments
	paymentsAPI := r.PathPrefix("/api/staff-payments").Subrouter()
	paymentsAPI.Use(authMiddleware.Authenticate)
	paymentsAPI.HandleFunc("", staffPaymentHandler.CreatePayment).Methods("POST")
	paymentsAPI.HandleFunc("/staff/{staffId}", staffPaymentHandler.ListByStaff).Methods("GET")
	paymentsAPI.HandleFunc("/{id}", staffPaymentHandler.UpdatePayment).Methods("PUT")
	paymentsAPI.HandleFunc("/{id}", staffPaymentHandler.DeletePayment).Methods("DELETE")

	// Protected API routes - Transactions and reports
	transactionsAPI := r.PathPrefix("/api/transactions").Subrouter()
	transactionsAPI.Use(authMiddleware.Authenticate)
	transactionsAPI.HandleFunc("", transactionHandler.ListTransactions).Methods("GET")
	transactionsAPI.HandleFunc("", transactionHandler.CreateTransaction).Methods("POST")
	transactionsAPI.HandleFunc("/stats/summary", transactionHandler.Summary).Methods("GET")
	transactionsAPI.HandleFunc("/stats/summary/pdf", transactionHandler.SummaryPDF).Methods("GET")
	transactionsAPI.HandleFunc("/{id}", transactionHandler.GetTransaction).Methods("GET")
	transactionsAPI.HandleFunc("/{id}", transactionHandler.UpdateTransaction).Methods("PUT")
	transactionsAPI.HandleFunc("/{id}", transactionHandler.DeleteTransaction).Methods("DELETE")

	return r
}
