package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/dataset/datasettest"
	"github.com/diewo77/sales-insights/internal/loader"
	"github.com/diewo77/sales-insights/internal/models"
	"github.com/diewo77/sales-insights/internal/query"
	"github.com/diewo77/sales-insights/internal/report"
	"github.com/diewo77/sales-insights/internal/services"
)

var fixedNow = time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T, ds *dataset.Dataset) *services.InsightService {
	t.Helper()
	store := dataset.NewStore()
	if ds != nil {
		require.NoError(t, store.Publish(ds))
	}
	return services.NewInsightService(store, zaptest.NewLogger(t),
		services.WithClock(func() time.Time { return fixedNow }))
}

func TestAsk_Envelope(t *testing.T) {
	svc := newService(t, datasettest.New())

	resp, err := svc.Ask(context.Background(), "  How many orders are pending?  ")
	require.NoError(t, err)
	assert.Equal(t, "How many orders are pending?", resp.Query)
	assert.True(t, resp.DataGrounded)
	assert.Equal(t, fixedNow, resp.Timestamp)
	assert.Empty(t, resp.ValidationWarning)
	assert.Equal(t, query.KindBacklog, resp.Result.Kind())

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, map[string]any{"pending_orders": 3.0, "pending_revenue": 23.0}, body["result"])
	assert.NotContains(t, body, "validation_warning")
}

func TestAsk_Rejected(t *testing.T) {
	svc := newService(t, datasettest.New())

	_, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, services.ErrEmptyQuery)

	_, err = svc.Ask(context.Background(), strings.Repeat("a", services.MaxQueryLength+1))
	assert.ErrorIs(t, err, services.ErrQueryTooLong)

	_, err = svc.Ask(context.Background(), strings.Repeat("é", services.MaxQueryLength))
	assert.NoError(t, err)
}

func TestAsk_CancelledContext(t *testing.T) {
	svc := newService(t, datasettest.New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Ask(ctx, "total revenue")
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestAsk_WarnsOnNegativeGrowth(t *testing.T) {
	svc := newService(t, datasettest.New())

	resp, err := svc.Ask(context.Background(), "What is the revenue growth?")
	require.NoError(t, err)
	assert.Contains(t, resp.ValidationWarning, "revenue_growth_rate")
}

func TestAsk_BeforeLoadAnswersFromEmptyDataset(t *testing.T) {
	svc := newService(t, nil)

	resp, err := svc.Ask(context.Background(), "total orders")
	require.NoError(t, err)
	assert.Equal(t, query.Count{Key: "total_orders", Value: 0}, resp.Result)
	assert.False(t, svc.Health().DataLoaded)
}

func TestAnalyze(t *testing.T) {
	svc := newService(t, datasettest.New())

	resp, err := svc.Analyze("")
	require.NoError(t, err)
	assert.Equal(t, analytics.ModeComprehensive, resp.AnalysisType)
	assert.Equal(t, fixedNow, resp.Timestamp)

	resp, err = svc.Analyze("product_performance")
	require.NoError(t, err)
	assert.IsType(t, analytics.ProductPerformance{}, resp.Analysis)

	_, err = svc.Analyze("forecast")
	assert.ErrorIs(t, err, analytics.ErrUnknownMode)
}

func TestReport(t *testing.T) {
	svc := newService(t, datasettest.New())

	resp, err := svc.Report("customer")
	require.NoError(t, err)
	assert.Equal(t, report.TypeCustomer, resp.Type)
	assert.Contains(t, resp.Report, "Alice Martin")

	_, err = svc.Report("pdf")
	assert.ErrorIs(t, err, report.ErrUnknownReport)
}

func TestSummaryAndHealth(t *testing.T) {
	svc := newService(t, datasettest.New())

	s := svc.Summary()
	assert.Equal(t, 6, s.TotalOrders)
	assert.Equal(t, 59.0, s.TotalRevenue)

	h := svc.Health()
	assert.Equal(t, "healthy", h.Status)
	assert.True(t, h.DataLoaded)
}

type fixtureSource struct {
	failDetails bool
}

func (fixtureSource) Name() string { return "fixture" }
func (fixtureSource) Customers(context.Context) ([]models.Customer, error) {
	return datasettest.Customers(), nil
}
func (fixtureSource) Inventory(context.Context) ([]models.InventoryRecord, error) {
	return datasettest.Inventory(), nil
}
func (f fixtureSource) Details(context.Context) ([]models.DetailRecord, error) {
	if f.failDetails {
		return nil, errors.New("disk on fire")
	}
	return datasettest.Details(), nil
}
func (fixtureSource) Pricelist(context.Context) ([]models.PricelistItem, error) {
	return datasettest.Pricelist(), nil
}

func TestLoad(t *testing.T) {
	svc := newService(t, nil)

	rep, err := svc.Load(context.Background(), fixtureSource{})
	require.NoError(t, err)
	assert.Equal(t, 7, rep.Lines)
	assert.True(t, svc.Health().DataLoaded)
	assert.Equal(t, 59.0, svc.Summary().TotalRevenue)

	_, err = svc.Load(context.Background(), fixtureSource{})
	assert.ErrorIs(t, err, dataset.ErrAlreadyPublished)
}

func TestLoad_FailedTableStillPublishes(t *testing.T) {
	svc := newService(t, nil)

	rep, err := svc.Load(context.Background(), fixtureSource{failDetails: true})
	require.NoError(t, err)
	assert.Equal(t, []string{loader.TableDetails}, rep.FailedTables())
	assert.Equal(t, 0, rep.Lines)
	assert.Equal(t, 0.0, svc.Summary().TotalRevenue)
}

func TestAsk_OversizedPriceIsZero(t *testing.T) {
	svc := newService(t, dataset.New(
		[]models.Customer{{CID: "1", FirstName: "A"}},
		[]models.InventoryRecord{{IID: "10", CID: "1", InDate: "2024-01-01"}},
		[]models.DetailRecord{{IID: "10", ItemID: "5", BasePrice: "1e400"}},
		[]models.PricelistItem{{ItemID: "5", Name: "Shirt"}},
	))

	resp, err := svc.Ask(context.Background(), "what is the total revenue")
	require.NoError(t, err)
	assert.Empty(t, resp.ValidationWarning)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"result":{"total_revenue":0}`)

	_, err = json.Marshal(svc.Summary())
	require.NoError(t, err)
}
