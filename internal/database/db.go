package database

import (
	"database/sql"
	"log"
	"time"

	"blogapi/internal/config"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// InitDB opens the shared connection pool and verifies connectivity.
func InitDB(cfg config.DatabaseConfig) {
	var err error

	DB, err = sql.Open("postgres", cfg.ConnString())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB.SetMaxOpenConns(cfg.MaxOpenConns)
	DB.SetMaxIdleConns(cfg.MaxIdleConns)
	DB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleMinutes) * time.Minute)
	DB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifeMinutes) * time.Minute)

	if err = DB.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database successfully")
}

// CloseDB closes the database connection
func CloseDB() {
	if DB != nil {
		DB.Close()
	}
}
