package main

import (
	"fmt"
	"os"

	"auction-house/config"
	auction "auction-house/internal/auctionService"
	catalog "auction-house/internal/catalogService"
	"auction-house/internal/database"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	"auction-house/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		utils.Fatal("Failed to connect to database", map[string]any{"error": err.Error()})
	}
	sqlDB, err := db.DB()
	if err != nil {
		utils.Fatal("Failed to get database handle", map[string]any{"error": err.Error()})
	}
	defer sqlDB.Close()

	repo := repository.NewGormRepo(db)
	if err := repo.AutoMigrate(); err != nil {
		utils.Fatal("Failed to migrate database schema", map[string]any{"error": err.Error()})
	}

	auctionSvc := auction.NewAuctionService(repo)
	catalogSvc := catalog.NewCatalogService(repo)

	if cfg.SeedDemo {
		seedCatalog(catalogSvc)
	}

	router := server.SetupRouter(auctionSvc, catalogSvc)

	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Starting auction-house server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedCatalog adds sample catalog data for local demos. Failures are
// logged and skipped; an already-seeded catalog just produces conflicts.
func seedCatalog(svc *catalog.CatalogService) {
	mobiles, err := svc.CreateCategory("Mobile")
	if err != nil {
		utils.Warn("seed: category skipped", map[string]any{"error": err.Error()})
		return
	}

	brands := []struct {
		name    string
		picture string
		model   string
	}{
		{"Nothing", "nothing_logo.jpg", "Phone 1"},
		{"Brand ABC", "brand_logo.jpg", "Product Model XYZ"},
	}
	for _, b := range brands {
		brand, err := svc.CreateBrand(b.name, b.picture)
		if err != nil {
			utils.Warn("seed: brand skipped", map[string]any{"name": b.name, "error": err.Error()})
			continue
		}
		if _, err := svc.CreateModel(b.model, brand.BrandID, []string{mobiles.CategoryID}); err != nil {
			utils.Warn("seed: model skipped", map[string]any{"name": b.model, "error": err.Error()})
		}
	}
}
