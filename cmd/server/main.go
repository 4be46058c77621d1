package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/qotastore/finance-backend/internal/adapter/httpapi"
	"github.com/qotastore/finance-backend/internal/adapter/repository/postgres"
	"github.com/qotastore/finance-backend/internal/usecase/allocation"
	"github.com/qotastore/finance-backend/internal/usecase/cashflow"
	"github.com/qotastore/finance-backend/internal/usecase/profit"
	"github.com/qotastore/finance-backend/internal/usecase/sales"
)

const defaultHTTPAddr = ":8080"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// 1. Setup Database
	db, err := postgres.NewDB(connectionString())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	// 2. Initialize Repositories (Postgres)
	productRepo := postgres.NewProductRepository(db)
	receiptRepo := postgres.NewReceiptRepository(db)
	expenseRepo := postgres.NewExpenseRepository(db)
	investmentRepo := postgres.NewInvestmentRepository(db)
	settlementRepo := postgres.NewSettlementRepository(db)
	balanceRepo := postgres.NewBalanceRepository(db)
	allocationRepo := postgres.NewAllocationRepository(db)

	// 3. Initialize Services (Use Cases)
	salesService := sales.NewService(productRepo, receiptRepo)
	profitService := profit.NewService(productRepo, receiptRepo)
	cashflowService := cashflow.NewService(expenseRepo, investmentRepo, receiptRepo, settlementRepo)
	allocationService := allocation.NewService(allocationRepo, settlementRepo)

	// 4. Start HTTP Server
	handler := &httpapi.Handler{
		Products:    productRepo,
		Receipts:    receiptRepo,
		Expenses:    expenseRepo,
		Investments: investmentRepo,
		Settlements: settlementRepo,
		Balances:    balanceRepo,
		Sales:       salesService,
		Profit:      profitService,
		Cashflow:    cashflowService,
		Allocation:  allocationService,
		Log:         log,
	}

	router := httpapi.NewRouter(handler, os.Getenv("API_TOKEN"))

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = defaultHTTPAddr
	}

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.WithField("addr", addr).Info("http server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to serve")
		}
	}()

	waitForShutdown(server, log)
}

// connectionString builds the Postgres DSN from DB_CONN_STR or, when that is
// missing, from the individual DB_* vars (Docker friendly).
func connectionString() string {
	if dsn := os.Getenv("DB_CONN_STR"); dsn != "" {
		return dsn
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "finance")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(server *http.Server, log *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}

	log.Info("http server stopped")
}
