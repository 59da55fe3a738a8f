package integration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// Create connection pool against the container's mapped port
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS sellers (
			id SERIAL PRIMARY KEY,
			username VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(64) NOT NULL,
			card_number VARCHAR(32),
			rating DECIMAL(3, 2),
			total_sales INTEGER,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			seller_id INTEGER NOT NULL REFERENCES sellers(id),
			product_type VARCHAR(50) NOT NULL,
			amount INTEGER NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			discount INTEGER NOT NULL DEFAULT 0,
			delivery_time VARCHAR(100) NOT NULL,
			stock INTEGER NOT NULL DEFAULT 1,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id),
			seller_id INTEGER NOT NULL REFERENCES sellers(id),
			buyer_email VARCHAR(255) NOT NULL,
			roblox_username VARCHAR(100) NOT NULL,
			amount INTEGER NOT NULL,
			total_price DECIMAL(10, 2) NOT NULL,
			commission DECIMAL(10, 2) NOT NULL,
			commission_card VARCHAR(32) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id),
			rating INTEGER NOT NULL,
			comment TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_products_seller_id ON products(seller_id);
		CREATE INDEX IF NOT EXISTS idx_orders_seller_id ON orders(seller_id);
		CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews(product_id);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedSeller inserts a seller and returns its ID.
// The password is stored as a hex SHA-256 hash, matching the API.
func SeedSeller(t *testing.T, pool *pgxpool.Pool, username, email, password string) int {
	t.Helper()

	ctx := context.Background()

	var id int
	err := pool.QueryRow(ctx, `
		INSERT INTO sellers (username, email, password_hash, card_number, rating, total_sales)
		VALUES ($1, $2, $3, '4111111111111111', 4.5, 10)
		RETURNING id
	`, username, email, HashPassword(password)).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed seller %s: %v", username, err)
	}

	return id
}

// SeedListing inserts an active listing and returns its ID.
func SeedListing(t *testing.T, pool *pgxpool.Pool, sellerID, amount int, price float64, discount, stock int) int {
	t.Helper()

	ctx := context.Background()

	var id int
	err := pool.QueryRow(ctx, `
		INSERT INTO products (seller_id, product_type, amount, price, discount, delivery_time, stock)
		VALUES ($1, 'Robux', $2, $3, $4, 'Instant', $5)
		RETURNING id
	`, sellerID, amount, price, discount, stock).Scan(&id)
	if err != nil {
		t.Fatalf("failed to seed listing: %v", err)
	}

	return id
}

// HashPassword returns the hex-encoded SHA-256 digest used for stored
// seller credentials.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"reviews", "orders", "products", "sellers"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
