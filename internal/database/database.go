package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

var DB *sql.DB

// clientsSchema creates the single table this service owns. BIGSERIAL ids come
// from a sequence, so an id is never reused after a delete.
const clientsSchema = `
CREATE TABLE IF NOT EXISTS clients (
    id         BIGSERIAL PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    phone      TEXT NOT NULL DEFAULT '',
    amount     TEXT NOT NULL,
    due_date   TEXT NOT NULL,
    wifi       TEXT NOT NULL,
    status     TEXT NOT NULL DEFAULT 'pending',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// InitDB initializes the database connection and ensures the clients schema exists.
func InitDB(host, port, user, password, dbname, sslmode string) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error opening database: %q", err)
	}

	err = DB.Ping()
	if err != nil {
		log.Fatalf("Error connecting to database: %q", err)
	}

	if _, err = DB.Exec(clientsSchema); err != nil {
		log.Fatalf("Error ensuring clients schema: %q", err)
	}
}

// GetDB returns the database connection pool
func GetDB() *sql.DB {
	return DB
}
