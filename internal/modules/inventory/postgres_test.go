package inventory

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

func getTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5432 user=postgres password=postgres dbname=stockroom_test sslmode=disable"
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("postgres not available: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS inventory_items (
		id       BIGSERIAL PRIMARY KEY,
		name     TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		price    DOUBLE PRECISION NOT NULL DEFAULT 0,
		category TEXT NOT NULL DEFAULT '',
		supplier TEXT NOT NULL DEFAULT ''
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestPostgres_CreateAssignsID(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()
	repo := NewPostgresRepository(db)

	item := &Item{Name: "test-widget", Quantity: 5, Price: 1.25, Category: "tools", Supplier: "Acme"}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id=$1`, item.ID)

	if item.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	got, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if *got != *item {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, item)
	}
}

func TestPostgres_UpdateOverwrites(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()
	repo := NewPostgresRepository(db)

	item := &Item{Name: "test-update", Quantity: 1}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM inventory_items WHERE id=$1`, item.ID)

	repl := &Item{Name: "test-updated", Quantity: 9, Price: 3.5}
	if err := repo.Update(ctx, item.ID, repl); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "test-updated" || got.Quantity != 9 || got.Price != 3.5 {
		t.Errorf("update not applied: %+v", got)
	}
	if got.Category != "" || got.Supplier != "" {
		t.Errorf("unsent fields should reset to defaults: %+v", got)
	}
}

func TestPostgres_MissingIDsReturnNotFound(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()
	repo := NewPostgresRepository(db)

	const absent = int64(999999999)

	if _, err := repo.GetByID(ctx, absent); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, absent, &Item{Name: "x", Quantity: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, absent); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestPostgres_DeleteRemovesRow(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()
	repo := NewPostgresRepository(db)

	item := &Item{Name: "test-delete", Quantity: 1}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
