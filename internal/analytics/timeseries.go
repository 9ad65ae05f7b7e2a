package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/models"
)

const (
	monthLayout = "2006-01"
	dayLayout   = "2006-01-02"
)

type bucket struct {
	key string
	sum decimal.Decimal
}

// bucketsBy groups line revenue by a date key, oldest first. Lines without
// a readable order date are skipped.
func bucketsBy(lines []models.SaleLine, layout string) []bucket {
	sums := make(map[string]decimal.Decimal)
	for _, l := range lines {
		t, ok := models.ParseDate(l.OrderDate)
		if !ok {
			continue
		}
		k := t.Format(layout)
		sums[k] = sums[k].Add(l.TotalPrice)
	}
	out := make([]bucket, 0, len(sums))
	for k, v := range sums {
		out = append(out, bucket{key: k, sum: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

func revenueBy(lines []models.SaleLine, layout string) Ranking {
	buckets := bucketsBy(lines, layout)
	out := make(Ranking, len(buckets))
	for i, b := range buckets {
		out[i] = Pair[float64]{Key: b.key, Value: round2(b.sum)}
	}
	return out
}

// MonthlyRevenue keys are YYYY-MM.
func MonthlyRevenue(ds *dataset.Dataset) Ranking {
	return revenueBy(ds.Lines(), monthLayout)
}

// DailyRevenue keys are YYYY-MM-DD.
func DailyRevenue(ds *dataset.Dataset) Ranking {
	return revenueBy(ds.Lines(), dayLayout)
}

// RevenueGrowthRate compares the last month with the first, in percent.
// It is 0 with fewer than two months or a zero first month.
func RevenueGrowthRate(ds *dataset.Dataset) float64 {
	months := bucketsBy(ds.Lines(), monthLayout)
	if len(months) < 2 || months[0].sum.IsZero() {
		return 0
	}
	first, last := months[0].sum, months[len(months)-1].sum
	return round2(last.Sub(first).Div(first).Mul(decimal.NewFromInt(100)))
}

// Period is a calendar window relative to the current time.
type Period string

const (
	Today     Period = "today"
	Yesterday Period = "yesterday"
	ThisWeek  Period = "this week"
	ThisMonth Period = "this month"
	ThisYear  Period = "this year"
)

// Periods is the lookup order used when matching text.
var Periods = []Period{Today, Yesterday, ThisWeek, ThisMonth, ThisYear}

// Bounds returns the half-open window [from, to) for p around now. Weeks
// start on Monday.
func (p Period) Bounds(now time.Time) (from, to time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := day.AddDate(0, 0, 1)
	switch p {
	case Yesterday:
		return day.AddDate(0, 0, -1), day
	case ThisWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset), tomorrow
	case ThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), tomorrow
	case ThisYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location()), tomorrow
	default:
		return day, tomorrow
	}
}

// PeriodStats counts activity of lines whose order date falls in a period.
type PeriodStats struct {
	Period    Period
	Orders    int
	Revenue   float64
	Customers int
}

func StatsForPeriod(ds *dataset.Dataset, p Period, now time.Time) PeriodStats {
	from, to := p.Bounds(now)
	orders := make(map[string]struct{})
	customers := make(map[string]struct{})
	revenue := decimal.Zero
	for _, l := range ds.Lines() {
		t, ok := models.ParseDate(l.OrderDate)
		if !ok {
			continue
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		if t.Before(from) || !t.Before(to) {
			continue
		}
		orders[l.IID] = struct{}{}
		customers[l.CID] = struct{}{}
		revenue = revenue.Add(l.TotalPrice)
	}
	return PeriodStats{
		Period:    p,
		Orders:    len(orders),
		Revenue:   round2(revenue),
		Customers: len(customers),
	}
}

// orderDateRange returns the oldest and newest readable INDATE, as stored.
func orderDateRange(ds *dataset.Dataset) (oldest, newest string) {
	var lo, hi time.Time
	for _, o := range ds.Inventory() {
		t, ok := models.ParseDate(o.InDate)
		if !ok {
			continue
		}
		if oldest == "" || t.Before(lo) {
			lo, oldest = t, o.InDate
		}
		if newest == "" || t.After(hi) {
			hi, newest = t, o.InDate
		}
	}
	return oldest, newest
}

// ordersSince counts orders received on or after since.
func ordersSince(ds *dataset.Dataset, since time.Time) int {
	n := 0
	for _, o := range ds.Inventory() {
		t, ok := models.ParseDate(o.InDate)
		if ok && !t.Before(since) {
			n++
		}
	}
	return n
}
