package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/config"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/infrastructure/server"
	"github.com/storefront/core/internal/infrastructure/storage"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the storefront web server",
		Long:  "Start the storefront web server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write starter data files",
		Long:  "Write starter products and users collections into the data directory",
		Run: func(cmd *cobra.Command, args []string) {
			force, _ := cmd.Flags().GetBool("force")
			runSeed(force)
		},
	}

	seedCmd.Flags().Bool("force", false, "Overwrite existing collection files")

	return seedCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print storefront version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Storefront v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg.Store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize flat-file store", "error", err)
	}

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting storefront server",
		"port", cfg.Server.Port,
		"environment", cfg.App.Environment,
		"data_dir", cfg.Store.DataDir,
	)

	go func() {
		if err := srv.Start(cfg.Server.Address()); err != nil {
			appLogger.Info("Server stopped", "error", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

func runSeed(force bool) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg.Store, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize flat-file store: %v", err)
	}

	seedCollection(store, "products", starterProducts(), force)
	seedCollection(store, "users", starterUsers(), force)
}

func seedCollection(store *storage.Store, collection string, data interface{}, force bool) {
	if _, err := os.Stat(store.Path(collection)); err == nil && !force {
		fmt.Printf("Collection %s already exists, skipping (use --force to overwrite)\n", collection)
		return
	}

	if err := store.Write(collection, data); err != nil {
		log.Fatalf("Failed to seed %s: %v", collection, err)
	}

	fmt.Printf("Seeded %s into %s\n", collection, store.Path(collection))
}

func starterProducts() []entities.Product {
	return []entities.Product{
		{ID: 1, Name: "Wireless Mouse", Price: 24.99, Category: "Electronics", Description: "Compact 2.4GHz wireless mouse with adjustable DPI", Stock: 50},
		{ID: 2, Name: "Mechanical Keyboard", Price: 89.99, Category: "Electronics", Description: "Tenkeyless mechanical keyboard with brown switches", Stock: 25},
		{ID: 3, Name: "Ceramic Mug", Price: 12.50, Category: "Kitchen", Description: "350ml ceramic mug, dishwasher safe", Stock: 100},
		{ID: 4, Name: "Notebook", Price: 5.99, Category: "Stationery", Description: "A5 dotted notebook, 120 pages", Stock: 200},
		{ID: 5, Name: "Desk Lamp", Price: 34.00, Category: "Home", Description: "LED desk lamp with three brightness levels", Stock: 0},
	}
}

func starterUsers() []entities.User {
	return []entities.User{
		{ID: 1, Profile: map[string]interface{}{"name": "Alice Johnson", "email": "alice@example.com", "city": "Portland"}},
		{ID: 2, Profile: map[string]interface{}{"name": "Bob Smith", "email": "bob@example.com", "city": "Austin"}},
		{ID: 3, Profile: map[string]interface{}{"name": "Carol Davis", "email": "carol@example.com", "city": "Denver"}},
	}
}
