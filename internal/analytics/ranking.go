// Package analytics computes the aggregates answered by the query layer.
// Every function is a pure read over a *dataset.Dataset. Money is summed as
// decimal and rounded to two places only when a result is built.
package analytics

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/diewo77/sales-insights/internal/models"
)

// Pair is one keyed value of an Ordered result.
type Pair[V any] struct {
	Key   string
	Value V
}

// Ordered is a keyed result whose JSON object keeps slice order.
type Ordered[V any] []Pair[V]

// Ranking is the shape of every top-N and group-by answer.
type Ranking = Ordered[float64]

func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o Ordered[V]) Keys() []string {
	keys := make([]string, len(o))
	for i, p := range o {
		keys[i] = p.Key
	}
	return keys
}

func (o Ordered[V]) Lookup(key string) (V, bool) {
	for _, p := range o {
		if p.Key == key {
			return p.Value, true
		}
	}
	var zero V
	return zero, false
}

// First returns the leading key, or "" when empty.
func (o Ordered[V]) First() string {
	if len(o) == 0 {
		return ""
	}
	return o[0].Key
}

// Dimension selects the SaleLine field a ranking groups by.
type Dimension int

const (
	ByProduct Dimension = iota
	ByCustomer
	ByCategory
)

func (d Dimension) key(l models.SaleLine) string {
	switch d {
	case ByCustomer:
		return l.CustomerName
	case ByCategory:
		return l.Category
	default:
		return l.ProductName
	}
}

// Metric selects what a ranking measures per group.
type Metric int

const (
	// Revenue sums TotalPrice.
	Revenue Metric = iota
	// Quantity counts lines.
	Quantity
	// Orders counts distinct IIDs.
	Orders
)

// group is one bucket of a group-by, in first-seen order.
type group struct {
	key    string
	seq    int
	sum    decimal.Decimal
	lines  int
	orders map[string]struct{}
}

func (g *group) measure(m Metric) decimal.Decimal {
	switch m {
	case Quantity:
		return decimal.NewFromInt(int64(g.lines))
	case Orders:
		return decimal.NewFromInt(int64(len(g.orders)))
	default:
		return g.sum
	}
}

func groupLines(lines []models.SaleLine, dim Dimension) []*group {
	index := make(map[string]*group)
	var groups []*group
	for _, l := range lines {
		k := dim.key(l)
		g, ok := index[k]
		if !ok {
			g = &group{key: k, seq: len(groups), orders: make(map[string]struct{})}
			index[k] = g
			groups = append(groups, g)
		}
		g.sum = g.sum.Add(l.TotalPrice)
		g.lines++
		g.orders[l.IID] = struct{}{}
	}
	return groups
}

// sortGroups orders by metric descending; ties keep first-seen order.
func sortGroups(groups []*group, m Metric) {
	sort.SliceStable(groups, func(i, j int) bool {
		c := groups[i].measure(m).Cmp(groups[j].measure(m))
		if c != 0 {
			return c > 0
		}
		return groups[i].seq < groups[j].seq
	})
}

// TopN groups lines by dim, measures each group with m and returns the n
// largest. n <= 0 returns every group.
func TopN(lines []models.SaleLine, dim Dimension, m Metric, n int) Ranking {
	groups := groupLines(lines, dim)
	sortGroups(groups, m)
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	out := make(Ranking, len(groups))
	for i, g := range groups {
		out[i] = Pair[float64]{Key: g.key, Value: round2(g.measure(m))}
	}
	return out
}

// round2 clamps sums beyond the float64 range so results stay encodable.
func round2(d decimal.Decimal) float64 {
	f := d.Round(2).InexactFloat64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	}
	return f
}
