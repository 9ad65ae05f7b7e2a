package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diewo77/sales-insights/internal/config"
	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/dataset/datasettest"
	"github.com/diewo77/sales-insights/internal/services"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store := dataset.NewStore()
	if err := store.Publish(datasettest.New()); err != nil {
		t.Fatalf("publish: %v", err)
	}
	svc := services.NewInsightService(store, zap.NewNop())
	return NewApp(svc, zap.NewNop(), config.ServerConfig{CORSOrigins: []string{"*"}})
}

func TestRoutes(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		method, path, body string
		code               int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/data/summary", "", http.StatusOK},
		{http.MethodPost, "/api/query", `{"query":"total revenue"}`, http.StatusOK},
		{http.MethodPost, "/api/query", `{"query":""}`, http.StatusBadRequest},
		{http.MethodPost, "/api/analytics/advanced", `{"type":"product_performance"}`, http.StatusOK},
		{http.MethodPost, "/api/reports/text", `{"type":"customer"}`, http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/query", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			app.ServeHTTP(w, r)
			if w.Code != tt.code {
				t.Fatalf("expected %d got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestRoutes_SetRequestID(t *testing.T) {
	app := newTestApp(t)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestWriteOutput_YAMLKeepsOrder(t *testing.T) {
	v := map[string]any{"b": 1}
	var buf bytes.Buffer
	if err := writeOutput(&buf, outputYAML, v); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "b: 1\n" {
		t.Fatalf("unexpected yaml %q", got)
	}

	buf.Reset()
	raw := json.RawMessage(`{"zeta":"12","alpha":34.5}`)
	if err := writeOutput(&buf, outputYAML, raw); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "zeta: \"12\"\nalpha: 34.5\n" {
		t.Fatalf("unexpected yaml %q", got)
	}

	if err := writeOutput(&buf, "xml", v); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func writeCSVDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"Customer.csv":  "CID,FNAME1,LNAME,PRICETBL\n1,A,B,STANDARD\n",
		"Inventory.csv": "IID,CID,INDATE,OUTDATE\n10,1,2024-01-01,\n",
		"Detail.csv":    "IID,price_table_item_id,item_baseprice\n10,5,12.50\n",
		"Pricelist.csv": "item_id,name,baseprice\n5,Shirt,12.50\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_Query(t *testing.T) {
	dir := writeCSVDir(t)
	out, err := run(t, "query", "--source", "csv", "--data-dir", dir, "How", "many", "orders", "are", "pending?")
	if err != nil {
		t.Fatalf("query: %v\n%s", err, out)
	}
	var resp struct {
		Query  string         `json:"query"`
		Result map[string]any `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if resp.Query != "How many orders are pending?" || resp.Result["pending_orders"] != 1.0 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCLI_SummaryYAML(t *testing.T) {
	dir := writeCSVDir(t)
	out, err := run(t, "summary", "--data-dir", dir, "--source", "csv", "-o", "yaml")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !strings.Contains(out, "total_revenue: 12.5\n") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
}

func TestCLI_Report(t *testing.T) {
	dir := writeCSVDir(t)
	out, err := run(t, "report", "customer", "--data-dir", dir, "--source", "csv")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !strings.HasPrefix(out, "# Customer Analysis Report") {
		t.Fatalf("unexpected report:\n%s", out)
	}
}

func TestCLI_Errors(t *testing.T) {
	dir := writeCSVDir(t)
	if _, err := run(t, "analytics", "forecast", "--data-dir", dir, "--source", "csv"); err == nil {
		t.Fatal("expected unknown mode error")
	}
	if _, err := run(t, "summary", "--source", "ftp"); err == nil {
		t.Fatal("expected unknown source error")
	}
	if _, err := run(t, "query", "--data-dir", dir, "  "); err == nil {
		t.Fatal("expected blank question error")
	}
	if _, err := run(t, "summary", "-o", "xml"); err == nil {
		t.Fatal("expected unknown output error")
	}
}
