package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"estatesync-listings/pkg/logger"
)

var DB *sql.DB

// InitDB opens the MySQL pool, verifies connectivity and ensures the listings
// schema exists.
func InitDB(dsn string) error {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %v", err)
	}

	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to ensure schema: %v", err)
	}

	DB = db
	logger.GlobalLogger.Println("MySQL connected successfully.")
	return nil
}

// ensureSchema creates the listings table on first start. seq orders records
// by insertion so list reads can return newest-first; gallery_images holds a
// JSON-encoded array.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS listings (
			seq              BIGINT AUTO_INCREMENT PRIMARY KEY,
			id               CHAR(36)     NOT NULL UNIQUE,
			title            VARCHAR(255) NOT NULL,
			description      TEXT,
			city             VARCHAR(255) NOT NULL DEFAULT '',
			region           VARCHAR(255) NOT NULL DEFAULT '',
			google_maps_link TEXT,
			floor            VARCHAR(64)  NOT NULL DEFAULT '',
			year_built       VARCHAR(64)  NOT NULL DEFAULT '',
			renovated_year   VARCHAR(64)  NOT NULL DEFAULT '',
			created_at       VARCHAR(128) NOT NULL DEFAULT '',
			status           VARCHAR(64)  NOT NULL DEFAULT 'available',
			transaction_type VARCHAR(64)  NOT NULL DEFAULT '',
			property_type    VARCHAR(64)  NOT NULL DEFAULT '',
			price            DOUBLE       NULL,
			area_size        DOUBLE       NULL,
			bathrooms        INT          NULL,
			bedrooms         INT          NULL,
			main_image       TEXT,
			gallery_images   TEXT,
			furnished        TINYINT(1)   NULL,
			parking          TINYINT(1)   NULL,
			elevator         TINYINT(1)   NULL,
			pets_allowed     TINYINT(1)   NULL,
			air_conditioning TINYINT(1)   NULL,
			balcony          TINYINT(1)   NULL,
			storage_room     TINYINT(1)   NULL,
			sea_view         TINYINT(1)   NULL
		)
	`)
	return err
}

func CloseDB() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			logger.GlobalLogger.Errorf("Error closing MySQL: %v", err)
		} else {
			logger.GlobalLogger.Println("MySQL connection closed")
		}
	}
}
