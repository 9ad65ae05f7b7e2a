// Package services answers questions, analytics and report requests
// against the published dataset.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/dataset"
	"github.com/diewo77/sales-insights/internal/loader"
	"github.com/diewo77/sales-insights/internal/metrics"
	"github.com/diewo77/sales-insights/internal/query"
	"github.com/diewo77/sales-insights/internal/report"
)

// MaxQueryLength is the longest accepted question, in characters.
const MaxQueryLength = 500

var (
	ErrEmptyQuery   = errors.New("query is empty")
	ErrQueryTooLong = errors.New("query is too long")
)

type InsightService struct {
	store *dataset.Store
	log   *zap.Logger
	now   func() time.Time
}

type Option func(*InsightService)

// WithClock replaces time.Now for timestamps and period questions.
func WithClock(now func() time.Time) Option {
	return func(s *InsightService) { s.now = now }
}

func NewInsightService(store *dataset.Store, log *zap.Logger, opts ...Option) *InsightService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &InsightService{store: store, log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryResponse is the envelope returned for every answered question.
type QueryResponse struct {
	Query             string       `json:"query"`
	Result            query.Result `json:"result"`
	Timestamp         time.Time    `json:"timestamp"`
	DataGrounded      bool         `json:"data_grounded"`
	ValidationWarning string       `json:"validation_warning,omitempty"`
}

// Ask answers one free-text question. Blank or oversized text is rejected
// before any aggregation runs.
func (s *InsightService) Ask(ctx context.Context, text string) (*QueryResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.QueryRejections.WithLabelValues("empty").Inc()
		return nil, ErrEmptyQuery
	}
	if utf8.RuneCountInString(text) > MaxQueryLength {
		metrics.QueryRejections.WithLabelValues("too_long").Inc()
		return nil, fmt.Errorf("%w: limit is %d characters", ErrQueryTooLong, MaxQueryLength)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	d := query.New(s.store.Current(), query.WithClock(s.now))
	res, route := d.Route(text)
	metrics.QueryDuration.WithLabelValues(route.Group).Observe(time.Since(start).Seconds())
	metrics.QueriesTotal.WithLabelValues(route.Group, string(res.Kind())).Inc()

	resp := &QueryResponse{
		Query:        text,
		Result:       res,
		Timestamp:    s.now(),
		DataGrounded: true,
	}
	if warn := query.Check(res); warn != "" {
		metrics.ValidationWarnings.Inc()
		resp.ValidationWarning = warn
		s.log.Warn("implausible query result",
			zap.String("query", text),
			zap.String("group", route.Group),
			zap.String("warning", warn),
		)
	}
	s.log.Debug("query answered",
		zap.String("group", route.Group),
		zap.String("intent", route.Intent),
		zap.String("kind", string(res.Kind())),
	)
	return resp, nil
}

func (s *InsightService) Summary() analytics.Summary {
	return analytics.DataSummary(s.store.Current())
}

type AnalyticsResponse struct {
	AnalysisType analytics.Mode `json:"analysis_type"`
	Analysis     any            `json:"analysis"`
	Timestamp    time.Time      `json:"timestamp"`
}

// Analyze runs one advanced analysis. A blank mode means comprehensive.
func (s *InsightService) Analyze(mode string) (*AnalyticsResponse, error) {
	m, err := analytics.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out, err := analytics.Analyze(s.store.Current(), m, now)
	if err != nil {
		return nil, err
	}
	metrics.AnalyticsRuns.WithLabelValues(string(m)).Inc()
	return &AnalyticsResponse{AnalysisType: m, Analysis: out, Timestamp: now}, nil
}

type ReportResponse struct {
	Report string      `json:"report"`
	Type   report.Type `json:"type"`
}

func (s *InsightService) Report(kind string) (*ReportResponse, error) {
	t, err := report.ParseType(kind)
	if err != nil {
		return nil, err
	}
	text, err := report.Render(s.store.Current(), t, s.now())
	if err != nil {
		return nil, err
	}
	return &ReportResponse{Report: text, Type: t}, nil
}

type Health struct {
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	DataLoaded bool      `json:"data_loaded"`
}

func (s *InsightService) Health() Health {
	return Health{Status: "healthy", Timestamp: s.now(), DataLoaded: s.store.Loaded()}
}

// Load reads src, publishes the resulting dataset and records row counts.
// Table failures are not errors here; only a second publish is.
func (s *InsightService) Load(ctx context.Context, src loader.Source) (loader.Report, error) {
	ds, rep := loader.LoadAll(ctx, src, s.log)
	if err := s.store.Publish(ds); err != nil {
		return rep, fmt.Errorf("publish dataset: %w", err)
	}
	for _, t := range loader.Tables {
		metrics.DatasetRows.WithLabelValues(t).Set(float64(rep.Rows[t]))
	}
	for _, t := range rep.FailedTables() {
		metrics.TableLoadFailures.WithLabelValues(t).Inc()
	}
	metrics.SaleLines.Set(float64(rep.Lines))
	s.log.Info("dataset published",
		zap.String("source", rep.Source),
		zap.Int("sale_lines", rep.Lines),
		zap.Strings("failed_tables", rep.FailedTables()),
	)
	return rep, nil
}
