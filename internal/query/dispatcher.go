// Package query maps free-text questions onto analytics calls.
//
// Matching is plain substring search on the lowercased text. Groups are
// tried in order and the first group whose keywords appear handles the
// query, even when later groups would also match ("customer revenue" is a
// customer question). Inside a group, intents are tried in order and the
// group's default view answers when none matches.
package query

import (
	"strings"
	"time"

	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/dataset"
)

// Result sizes per call site.
const (
	TopProducts  = 5
	TopCustomers = 10
	RecentLimit  = 10
)

type handler func(d *Dispatcher, q string) Result

type intent struct {
	name   string
	match  func(q string) bool
	handle handler
}

type group struct {
	name     string
	keywords []string
	intents  []intent
	fallback handler
}

// Dispatcher answers queries against one dataset.
type Dispatcher struct {
	ds     *dataset.Dataset
	now    func() time.Time
	groups []group
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock sets the time source used for period questions.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func New(ds *dataset.Dataset, opts ...Option) *Dispatcher {
	if ds == nil {
		ds = dataset.Empty()
	}
	d := &Dispatcher{ds: ds, now: time.Now, groups: groups}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Route names the group and intent that handled a query.
type Route struct {
	Group  string
	Intent string
}

// Dispatch answers text. It never fails; unmatched text gets Help.
func (d *Dispatcher) Dispatch(text string) Result {
	res, _ := d.Route(text)
	return res
}

// Route answers text and reports which group and intent did so.
func (d *Dispatcher) Route(text string) (Result, Route) {
	q := strings.ToLower(text)
	for _, g := range d.groups {
		if !containsAny(q, g.keywords...) {
			continue
		}
		for _, in := range g.intents {
			if in.match(q) {
				return in.handle(d, q), Route{Group: g.name, Intent: in.name}
			}
		}
		return g.fallback(d, q), Route{Group: g.name, Intent: "default"}
	}
	return fallbackHelp(), Route{Group: "help", Intent: "fallback"}
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}

func anyOf(words ...string) func(string) bool {
	return func(q string) bool { return containsAny(q, words...) }
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(q string) bool {
		for _, p := range preds {
			if !p(q) {
				return false
			}
		}
		return true
	}
}

// detectPeriod returns the first period named in q.
func detectPeriod(q string) (analytics.Period, bool) {
	for _, p := range analytics.Periods {
		if strings.Contains(q, string(p)) {
			return p, true
		}
	}
	return "", false
}

func mentionsPeriod(q string) bool {
	_, ok := detectPeriod(q)
	return ok
}
