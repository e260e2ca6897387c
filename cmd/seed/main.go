package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"changelog/internal/auth"
	"changelog/internal/config"
	"changelog/internal/domain"
	"changelog/internal/domain/models"
	domainservices "changelog/internal/domain/services"
	"changelog/internal/repository/postgres"
	"changelog/internal/service"
	serviceAuth "changelog/internal/service/auth"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type fixtures struct {
	Users []seedUser `yaml:"users"`
}

type seedUser struct {
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Name    string       `yaml:"name"`
	Price   int          `yaml:"price"`
	Updates []seedUpdate `yaml:"updates"`
}

type seedUpdate struct {
	Title   string      `yaml:"title"`
	Body    string      `yaml:"body"`
	Status  string      `yaml:"status"`
	Version string      `yaml:"version"`
	Points  []seedPoint `yaml:"points"`
}

type seedPoint struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Clear all rows (keep schema)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *clearData {
		log.Printf("Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else if *schemaOnly {
		log.Printf("Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	// Exit early if schema-only mode
	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	// Clear existing rows so seeding starts from a known state
	log.Println("Clearing existing rows...")
	if err := clearAllData(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to clear data: %v", err)
	}
	if *clearData {
		log.Println("Data cleared successfully")
		return
	}

	var data fixtures
	if err := yaml.Unmarshal(fixturesYAML, &data); err != nil {
		log.Fatalf("Failed to parse fixtures: %v", err)
	}

	// Create JWT token service (services mint tokens on signup; the seed
	// tool discards them)
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT service: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	productRepo := postgres.NewProductRepository(repoConfig)
	updateRepo := postgres.NewUpdateRepository(repoConfig)
	pointRepo := postgres.NewUpdatePointRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	policy := domain.ParsePolicy(cfg.OwnershipPolicy)
	authorizer := serviceAuth.NewOwnerAuthorizer(productRepo, updateRepo, pointRepo, policy)

	// Seed through the service layer so fixtures go through the same
	// validation and hashing as real requests
	userService := service.NewUserService(userRepo, txManager, jwtService, policy, logger)
	productService := service.NewProductService(productRepo, logger)
	updateService := service.NewUpdateService(updateRepo, authorizer, logger)
	pointService := service.NewUpdatePointService(pointRepo, authorizer, logger)

	log.Println("Seeding fixtures...")
	for _, u := range data.Users {
		user, _, err := userService.Signup(ctx, &domainservices.SignupRequest{
			Username: u.Username,
			Password: u.Password,
		})
		if err != nil {
			log.Printf("Failed to create user '%s': %v", u.Username, err)
			continue
		}
		identity := models.Identity{ID: user.ID, Username: user.Username}
		log.Printf("Created user %s (ID: %s)", user.Username, user.ID)

		for _, p := range u.Products {
			product, err := productService.Create(ctx, identity, &domainservices.CreateProductRequest{
				Name:  p.Name,
				Price: p.Price,
			})
			if err != nil {
				log.Printf("Failed to create product '%s': %v", p.Name, err)
				continue
			}
			log.Printf("  Created product %s (ID: %s)", product.Name, product.ID)

			for _, upd := range p.Updates {
				update, err := updateService.Create(ctx, identity, &domainservices.CreateUpdateRequest{
					Title:     upd.Title,
					Body:      upd.Body,
					Status:    models.UpdateStatus(upd.Status),
					Version:   upd.Version,
					ProductID: product.ID,
				})
				if err != nil {
					log.Printf("  Failed to create update '%s': %v", upd.Title, err)
					continue
				}
				log.Printf("    Created update %s (ID: %s)", update.Title, update.ID)

				for _, pt := range upd.Points {
					point, err := pointService.Create(ctx, identity, &domainservices.CreateUpdatePointRequest{
						Name:        pt.Name,
						Description: pt.Description,
						UpdateID:    update.ID,
					})
					if err != nil {
						log.Printf("    Failed to create update point '%s': %v", pt.Name, err)
						continue
					}
					log.Printf("      Created update point %s (ID: %s)", point.Name, point.ID)
				}
			}
		}
	}

	log.Println("Seeding complete!")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable pgcrypto for gen_random_uuid on older Postgres versions
	_, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "pgcrypto"`)
	if err != nil {
		return err
	}

	// Create users table
	createUsers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createUsers); err != nil {
		return err
	}

	// Create products table
	createProducts := `
		CREATE TABLE IF NOT EXISTS ` + tables.Products + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			price INTEGER NOT NULL CHECK (price > 0),
			user_id UUID NOT NULL REFERENCES ` + tables.Users + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE(name, user_id)
		)
	`
	if _, err := pool.Exec(ctx, createProducts); err != nil {
		return err
	}

	// Create updates table
	createUpdates := `
		CREATE TABLE IF NOT EXISTS ` + tables.Updates + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'IN_PROGRESS',
			version TEXT,
			asset TEXT,
			product_id UUID NOT NULL REFERENCES ` + tables.Products + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createUpdates); err != nil {
		return err
	}

	// Create update_points table
	createUpdatePoints := `
		CREATE TABLE IF NOT EXISTS ` + tables.UpdatePoints + ` (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			description VARCHAR(1000) NOT NULL,
			update_id UUID NOT NULL REFERENCES ` + tables.Updates + `(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createUpdatePoints); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `products_user_id ON ` + tables.Products + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `updates_product_id ON ` + tables.Updates + `(product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `update_points_update_id ON ` + tables.UpdatePoints + `(update_id)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.UpdatePoints,
		tables.Updates,
		tables.Products,
		tables.Users,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  Dropped %s", table)
	}

	return nil
}

// clearAllData removes all rows; deleting users cascades down the chain
func clearAllData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	_, err := pool.Exec(ctx, "DELETE FROM "+tables.Users)
	return err
}
