package dataset_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/dataset/datasettest"
	"github.com/diewo77/sales-insights/internal/models"
)

func TestMerge_SingleLine(t *testing.T) {
	lines := datasettest.Single().Lines()

	require.Len(t, lines, 1)
	assert.Equal(t, "12.5", lines[0].TotalPrice.String())
	assert.Equal(t, models.StatusProcessing, lines[0].Status)
	assert.Equal(t, "A B", lines[0].CustomerName)
	assert.Equal(t, "Shirt", lines[0].ProductName)
	assert.Equal(t, models.DefaultCategory, lines[0].Category)
}

func TestMerge_UnknownOrderProducesNoLines(t *testing.T) {
	lines := dataset.Merge(
		datasettest.Customers(),
		datasettest.Inventory(),
		[]models.DetailRecord{{IID: "missing", ItemID: "P1", BasePrice: "1"}},
		datasettest.Pricelist(),
	)
	assert.Empty(t, lines)
}

func TestMerge_JoinSoundness(t *testing.T) {
	ds := datasettest.New()
	lines := ds.Lines()

	orders := map[string]models.InventoryRecord{}
	for _, o := range ds.Inventory() {
		orders[o.IID] = o
	}
	customers := map[string]bool{}
	for _, c := range ds.Customers() {
		customers[c.CID] = true
	}
	items := map[string]bool{}
	for _, p := range ds.Pricelist() {
		items[p.ItemID] = true
	}

	require.Len(t, lines, 7)
	assert.LessOrEqual(t, len(lines), len(ds.Details()))
	for _, l := range lines {
		o, ok := orders[l.IID]
		require.True(t, ok, "line %s has no order", l.IID)
		assert.True(t, customers[o.CID])
		assert.True(t, items[l.ItemID])
	}
}

func TestMerge_KeepsDetailOrder(t *testing.T) {
	lines := datasettest.New().Lines()

	var got []string
	for _, l := range lines {
		got = append(got, l.IID+"/"+l.ItemID)
	}
	assert.Equal(t, []string{"I1/P1", "I1/P2", "I2/P2", "I3/P1", "I3/P3", "I4/P4", "I4/P1"}, got)
}

func TestMerge_FirstRecordWinsOnDuplicateKeys(t *testing.T) {
	lines := dataset.Merge(
		[]models.Customer{{CID: "C1", FirstName: "First"}, {CID: "C1", FirstName: "Second"}},
		[]models.InventoryRecord{{IID: "I1", CID: "C1", Category: "A"}, {IID: "I1", CID: "C1", Category: "B"}},
		[]models.DetailRecord{{IID: "I1", ItemID: "P1", BasePrice: "2"}},
		[]models.PricelistItem{{ItemID: "P1", Name: "one"}, {ItemID: "P1", Name: "two"}},
	)

	require.Len(t, lines, 1)
	assert.Equal(t, "First", lines[0].CustomerName)
	assert.Equal(t, "A", lines[0].Category)
	assert.Equal(t, "one", lines[0].ProductName)
}

func TestMerge_MalformedPriceIsZero(t *testing.T) {
	lines := datasettest.New().Lines()
	last := lines[len(lines)-1]
	assert.True(t, last.TotalPrice.IsZero())
}

func TestNew_CopiesInput(t *testing.T) {
	customers := datasettest.Customers()
	ds := dataset.New(customers, nil, nil, nil)
	customers[0].CID = "changed"
	assert.Equal(t, "C1", ds.Customers()[0].CID)
}

func TestStore(t *testing.T) {
	s := dataset.NewStore()
	assert.False(t, s.Loaded())
	assert.Empty(t, s.Current().Lines())

	require.NoError(t, s.Publish(datasettest.New()))
	assert.True(t, s.Loaded())
	assert.ErrorIs(t, s.Publish(datasettest.Single()), dataset.ErrAlreadyPublished)
	assert.Len(t, s.Current().Lines(), 7)
}

func TestStore_ConcurrentReaders(t *testing.T) {
	s := dataset.NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Current().Lines()
		}()
	}
	require.NoError(t, s.Publish(datasettest.New()))
	wg.Wait()
	assert.True(t, s.Loaded())
}
