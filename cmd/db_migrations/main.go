package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
	order_id TEXT PRIMARY KEY,
	placed_at TIMESTAMPTZ NOT NULL,
	total NUMERIC NOT NULL,
	data JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS orders_placed_at_idx ON orders (placed_at DESC);`

func main() {
	fmt.Println("Migrating database...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	connString := os.Getenv("PG_CONNSTRING")
	if connString == "" {
		log.Fatal("PG_CONNSTRING is required")
	}

	conn, err := pgx.Connect(context.Background(), connString)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(context.Background(), createOrdersTable); err != nil {
		log.Fatalf("Unable to execute migration: %v\n", err)
	}

	fmt.Println("Migration executed successfully.")
}
