package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/sales-insights/internal/config"
	"github.com/diewo77/sales-insights/internal/loader"
	"github.com/diewo77/sales-insights/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func writeCSVDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		loader.CustomerFile:  "CID,FNAME1,LNAME,PRICETBL\n1,A,B,STANDARD\n2,C,D,PREMIUM\n",
		loader.InventoryFile: "IID,CID,INDATE,OUTDATE\n10,1,2024-01-01,\n11,2,2024-01-02,2024-01-03\n",
		loader.DetailFile:    "IID,price_table_item_id,item_baseprice,item_name\n10,5,12.50,\n11,5,bad,\n",
		loader.PricelistFile: "item_id,name,baseprice\n5,Shirt,12.50\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestImportAndLoad(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	counts, err := Import(ctx, conn, loader.NewCSVSource(writeCSVDir(t)))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if counts != (ImportCounts{Customers: 2, Inventory: 2, Details: 2, Pricelist: 1}) {
		t.Fatalf("unexpected counts %+v", counts)
	}

	ds, rep := loader.LoadAll(ctx, loader.NewDBSource(conn), zap.NewNop())
	if len(rep.FailedTables()) != 0 {
		t.Fatalf("failed tables: %v", rep.FailedTables())
	}
	lines := ds.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 sale lines, got %d", len(lines))
	}
	if lines[0].TotalPrice.String() != "12.5" || lines[0].Status != models.StatusProcessing {
		t.Errorf("unexpected first line %+v", lines[0])
	}
	if !lines[1].TotalPrice.IsZero() {
		t.Errorf("malformed price should load as zero, got %s", lines[1].TotalPrice)
	}
}

func TestImport_ReplacesExistingRows(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	src := loader.NewCSVSource(writeCSVDir(t))

	for i := 0; i < 2; i++ {
		if _, err := Import(ctx, conn, src); err != nil {
			t.Fatalf("import %d: %v", i, err)
		}
	}
	var n int64
	conn.Model(&models.Customer{}).Count(&n)
	if n != 2 {
		t.Errorf("expected 2 customers after re-import, got %d", n)
	}
}

func TestImport_MissingFileLeavesDatabaseUntouched(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()
	dir := writeCSVDir(t)
	if _, err := Import(ctx, conn, loader.NewCSVSource(dir)); err != nil {
		t.Fatalf("import: %v", err)
	}

	if err := os.Remove(filepath.Join(dir, loader.PricelistFile)); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(ctx, conn, loader.NewCSVSource(dir)); err == nil {
		t.Fatal("expected error for missing pricelist")
	}

	var n int64
	conn.Model(&models.PricelistItem{}).Count(&n)
	if n != 1 {
		t.Errorf("pricelist should be untouched, got %d rows", n)
	}
}

func TestDialector(t *testing.T) {
	if _, err := Dialector(config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected unsupported driver error")
	}
	d, err := Dialector(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	if err != nil {
		t.Fatalf("sqlite dialector: %v", err)
	}
	if d.Name() != "sqlite" {
		t.Errorf("Name() = %q", d.Name())
	}
}

func TestConnect_SQLite(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "test.db"), ConnectRetries: 1}
	conn, err := Connect(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !conn.Migrator().HasTable(&models.DetailRecord{}) {
		t.Error("details table missing after migrate")
	}
}
