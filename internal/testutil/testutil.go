// Package testutil provides shared helpers for package-level tests.
// Tests run against an in-memory SQLite database; Redis is marked
// unhealthy so services fall back to their store-only paths.
package testutil

import (
	"fmt"
	"testing"

	"github.com/SlpAus/game-night-vote-backend/internal/game"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/SlpAus/game-night-vote-backend/internal/user"
	"github.com/SlpAus/game-night-vote-backend/internal/vote"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter int

// SetupDB wires the global DB handle to a fresh in-memory SQLite
// database with all tables migrated, and flags Redis as unavailable.
func SetupDB(t *testing.T) {
	t.Helper()

	dbCounter++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	if err := db.AutoMigrate(&user.User{}, &vote.VoteEvent{}, &game.SubmittedGame{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	database.DB = db
	database.UpdateStatus(false, "")
}

// SetupCatalog initializes the in-memory game catalog from the
// current database state. Call after SetupDB.
func SetupCatalog(t *testing.T) {
	t.Helper()
	if err := game.PrimeDB(); err != nil {
		t.Fatalf("failed to initialize catalog: %v", err)
	}
}
