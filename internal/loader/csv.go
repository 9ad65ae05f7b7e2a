package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/diewo77/sales-insights/internal/models"
)

// File names expected inside a CSV directory.
const (
	CustomerFile  = "Customer.csv"
	InventoryFile = "Inventory.csv"
	DetailFile    = "Detail.csv"
	PricelistFile = "Pricelist.csv"
)

// CSVSource reads one file per table from Dir.
type CSVSource struct {
	Dir string
}

func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{Dir: dir}
}

func (s *CSVSource) Name() string { return "csv:" + s.Dir }

func (s *CSVSource) Customers(ctx context.Context) ([]models.Customer, error) {
	return readTable(ctx, filepath.Join(s.Dir, CustomerFile), models.CustomerFromRow)
}

func (s *CSVSource) Inventory(ctx context.Context) ([]models.InventoryRecord, error) {
	return readTable(ctx, filepath.Join(s.Dir, InventoryFile), models.InventoryFromRow)
}

func (s *CSVSource) Details(ctx context.Context) ([]models.DetailRecord, error) {
	return readTable(ctx, filepath.Join(s.Dir, DetailFile), models.DetailFromRow)
}

func (s *CSVSource) Pricelist(ctx context.Context) ([]models.PricelistItem, error) {
	return readTable(ctx, filepath.Join(s.Dir, PricelistFile), models.PricelistFromRow)
}

func readTable[T any](ctx context.Context, path string, from func(models.Row) T) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, from(r))
	}
	return out, nil
}

// ReadRows parses CSV with a header line into rows keyed by header.
// Malformed lines are skipped. Missing trailing fields read as blank.
func ReadRows(ctx context.Context, r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []models.Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				continue
			}
			return nil, err
		}
		if blank(record) {
			continue
		}
		row := make(models.Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
