package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/diewo77/sales-insights/internal/models"
)

func TestReadRows(t *testing.T) {
	input := "\ufeffCID, FNAME1 ,LNAME\n" +
		"1,Ana,Li\n" +
		"\n" +
		",,\n" +
		"3,Cy\n"

	rows, err := ReadRows(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "1", rows[0].Get("CID"))
	assert.Equal(t, "Ana", rows[0].Get("FNAME1"))
	assert.Equal(t, "3", rows[1].Get("CID"))
	assert.Equal(t, "", rows[1].Get("LNAME"))
}

func TestReadRows_Empty(t *testing.T) {
	rows, err := ReadRows(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadRows_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadRows(ctx, strings.NewReader("a\n1\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCSVSource_LoadAll(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write(CustomerFile, "CID,FNAME1,LNAME,PRICETBL\n1,A,B,STANDARD\n")
	write(InventoryFile, "IID,CID,INDATE,OUTDATE\n10,1,2024-01-01,\n")
	write(DetailFile, "IID,price_table_item_id,item_baseprice\n10,5,12.50\n99,5,1.00\n")
	write(PricelistFile, "item_id,name,baseprice\n5,Shirt,12.50\n")

	ds, rep := LoadAll(context.Background(), NewCSVSource(dir), zap.NewNop())

	assert.Empty(t, rep.FailedTables())
	assert.Equal(t, map[string]int{TableCustomers: 1, TableInventory: 1, TableDetails: 2, TablePricelist: 1}, rep.Rows)
	require.Len(t, ds.Lines(), 1)
	assert.Equal(t, "12.5", ds.Lines()[0].TotalPrice.String())
	assert.Equal(t, 1, rep.Lines)
}

func TestLoadAll_MissingTableIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CustomerFile), []byte("CID\n1\n"), 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	ds, rep := LoadAll(context.Background(), NewCSVSource(dir), zap.New(core))

	assert.True(t, ds.Loaded())
	assert.Len(t, ds.Customers(), 1)
	assert.Empty(t, ds.Lines())
	assert.Equal(t, []string{TableInventory, TableDetails, TablePricelist}, rep.FailedTables())
	assert.Equal(t, 3, logs.FilterMessage("table load failed, using empty table").Len())
}

type failingSource struct{ stubSource }

func (failingSource) Details(context.Context) ([]models.DetailRecord, error) {
	return nil, errors.New("boom")
}

type stubSource struct{}

func (stubSource) Name() string { return "stub" }
func (stubSource) Customers(context.Context) ([]models.Customer, error) {
	return []models.Customer{{CID: "1"}}, nil
}
func (stubSource) Inventory(context.Context) ([]models.InventoryRecord, error) {
	return []models.InventoryRecord{{IID: "10", CID: "1"}}, nil
}
func (stubSource) Details(context.Context) ([]models.DetailRecord, error) {
	return []models.DetailRecord{{IID: "10", ItemID: "5", BasePrice: "3"}}, nil
}
func (stubSource) Pricelist(context.Context) ([]models.PricelistItem, error) {
	return []models.PricelistItem{{ItemID: "5"}}, nil
}

func TestLoadAll_FailingTable(t *testing.T) {
	ds, rep := LoadAll(context.Background(), failingSource{}, nil)

	assert.Equal(t, "stub", rep.Source)
	assert.Equal(t, []string{TableDetails}, rep.FailedTables())
	assert.Len(t, ds.Inventory(), 1)
	assert.Empty(t, ds.Lines())

	ds, rep = LoadAll(context.Background(), stubSource{}, nil)
	assert.Empty(t, rep.FailedTables())
	assert.Len(t, ds.Lines(), 1)
}

func TestOpen(t *testing.T) {
	src, err := Open("csv", "testdata", nil)
	require.NoError(t, err)
	assert.Equal(t, "csv:testdata", src.Name())

	_, err = Open("db", "", nil)
	assert.Error(t, err)

	_, err = Open("s3", "", nil)
	assert.ErrorIs(t, err, ErrUnknownSource)
}
