package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gpolanco/finvesta/config"
	"github.com/gpolanco/finvesta/pkg/helpers"
)

var defaultCategories = []struct {
	Name  string
	Type  string
	Color string
}{
	{"Salary", "income", "#22c55e"},
	{"Other Income", "income", "#84cc16"},
	{"Housing", "expense", "#ef4444"},
	{"Groceries", "expense", "#f97316"},
	{"Transport", "expense", "#eab308"},
	{"Leisure", "expense", "#ec4899"},
	{"Health", "expense", "#14b8a6"},
	{"Stocks", "investment", "#3b82f6"},
	{"Crypto", "investment", "#8b5cf6"},
	{"Between Accounts", "transfer", "#64748b"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@finvesta.dev"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	seeded := 0
	for _, c := range defaultCategories {
		res, err := db.Exec(`
			INSERT INTO categories (user_id, name, type, color, is_default)
			VALUES ($1, $2, $3, $4, true)
			ON CONFLICT (user_id, lower(name)) DO NOTHING
		`, id, c.Name, c.Type, c.Color)
		if err != nil {
			log.Fatalf("failed to seed category %s: %v", c.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			seeded++
		}
	}
	fmt.Printf("seeded %d default categories\n", seeded)

	if _, err := db.Exec(`
		INSERT INTO accounts (user_id, name, type, provider, balance, currency)
		VALUES ($1, 'Main Checking', 'checking', 'Demo Bank', 0, 'EUR')
		ON CONFLICT (user_id, lower(name)) DO NOTHING
	`, id); err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	fmt.Println("seeded demo account (if not already)")
}
