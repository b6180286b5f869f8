package main

import (
	"context"
	"fmt"
	"log"

	"github.com/ssautomart/vehicle-invoice-service/internal/billing"
	"github.com/ssautomart/vehicle-invoice-service/internal/config"
	"github.com/ssautomart/vehicle-invoice-service/internal/database"
	"github.com/ssautomart/vehicle-invoice-service/internal/handler"
	"github.com/ssautomart/vehicle-invoice-service/internal/repository"
	"github.com/ssautomart/vehicle-invoice-service/internal/server"
	"github.com/ssautomart/vehicle-invoice-service/internal/service"
)

func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repository
	log.Printf("Initializing %s repository...", cfg.RepositoryBackend)
	repo, cleanup, err := newRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	defer cleanup()

	// Create invoice service
	invoiceService := service.NewInvoiceService(repo, billing.Calculator{
		ClampNegative: cfg.ClampNegativeAmounts,
	})

	// Seed a demonstration invoice on first run if requested
	if cfg.SeedSampleInvoice {
		seeded, err := service.SeedSampleInvoice(context.Background(), repo)
		if err != nil {
			log.Printf("Warning: failed to seed sample invoice: %v", err)
		} else if seeded {
			log.Println("Seeded sample invoice")
		}
	}

	// Create handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	dashboardHandler := handler.NewDashboardHandler(invoiceService)

	// Create and configure server
	log.Println("Configuring server...")
	appServer := server.NewServer(cfg, invoiceHandler, dashboardHandler)

	// Start server (blocking call)
	log.Printf("Starting server on port %d...", cfg.Port)
	if err := appServer.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	fmt.Println("Server shutdown complete")
}

// newRepository builds the configured repository backend. The returned
// cleanup function releases any held resources.
func newRepository(cfg *config.Config) (repository.InvoiceRepository, func(), error) {
	switch cfg.RepositoryBackend {
	case config.BackendFile:
		repo, err := repository.NewFileInvoiceRepository(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	default:
		db, err := database.NewPostgresDB()
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresInvoiceRepository(db.GetPool()), db.Close, nil
	}
}
