package main // Seeder entry point: loads a starter dataset for development

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/platefront/restaurant-api/internal/config"
	"github.com/platefront/restaurant-api/internal/database"
	"github.com/platefront/restaurant-api/internal/model"
	"github.com/platefront/restaurant-api/internal/repository"
)

// The seeder is idempotent: each section first checks whether its rows
// already exist and skips quietly when they do, so it is safe to run on
// every deploy of a development environment.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	// The seeder runs a few statements and exits; default pool tuning
	// is more than enough.
	db, err := database.Open(database.Config{
		User: cfg.DBUser,
		Pass: cfg.DBPass,
		Host: cfg.DBHost,
		Port: cfg.DBPort,
		Name: cfg.DBName,
	})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}

	seedAdmin(ctx, repository.NewUserRepo(db), cfg.BcryptCost)
	seedMenu(ctx, repository.NewMenuRepo(db))
	seedTables(ctx, repository.NewTableRepo(db))

	log.Println("seed complete")
}

func seedAdmin(ctx context.Context, users *repository.UserRepo, cost int) {
	n, err := users.CountByUsername(ctx, "admin")
	if err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if n > 0 {
		log.Println("admin user already present, skipping")
		return
	}
	// Default credentials for local development only.
	if _, err := users.Create(ctx, "admin", "password", model.RoleAdmin, cost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	log.Println("created admin user")
}

func seedMenu(ctx context.Context, menu *repository.MenuRepo) {
	n, err := menu.Count(ctx)
	if err != nil {
		log.Fatalf("seed menu: %v", err)
	}
	if n > 0 {
		log.Println("menu items already present, skipping")
		return
	}
	items := []model.MenuItem{
		{Name: "Margherita Pizza", PriceCents: 1199, Category: "Mains", Available: true},
		{Name: "Caesar Salad", PriceCents: 950, Category: "Starters", Available: true},
		{Name: "Spaghetti Bolognese", PriceCents: 1225, Category: "Mains", Available: true},
	}
	for i := range items {
		if err := menu.Create(ctx, &items[i]); err != nil {
			log.Fatalf("seed menu %q: %v", items[i].Name, err)
		}
	}
	log.Printf("created %d menu items", len(items))
}

func seedTables(ctx context.Context, tables *repository.TableRepo) {
	n, err := tables.Count(ctx)
	if err != nil {
		log.Fatalf("seed tables: %v", err)
	}
	if n > 0 {
		log.Println("tables already present, skipping")
		return
	}
	floor := []model.Table{
		{Label: "T1", Capacity: 4},
		{Label: "T2", Capacity: 2},
		{Label: "T3", Capacity: 6},
	}
	for i := range floor {
		if err := tables.Create(ctx, &floor[i]); err != nil {
			log.Fatalf("seed table %q: %v", floor[i].Label, err)
		}
	}
	log.Printf("created %d tables", len(floor))
}
