package handlers

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/diewo77/sales-insights/httpx"
	"github.com/diewo77/sales-insights/internal/analytics"
	"github.com/diewo77/sales-insights/internal/report"
	"github.com/diewo77/sales-insights/internal/services"
	"github.com/diewo77/sales-insights/validation"
)

const maxBodyBytes = 1 << 16

type InsightHandler struct {
	svc *services.InsightService
	log *zap.Logger
}

func NewInsightHandler(svc *services.InsightService, log *zap.Logger) *InsightHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsightHandler{svc: svc, log: log}
}

type QueryRequest struct {
	Query string `json:"query" validate:"required"`
}

type AnalyticsRequest struct {
	Type string `json:"type"`
}

type ReportRequest struct {
	Type string `json:"type"`
}

func (h *InsightHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Health())
}

func (h *InsightHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := httpx.DecodeJSON(w, r, &req, maxBodyBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	v := validation.Struct(req)
	validation.MaxLength("query", req.Query, services.MaxQueryLength, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	resp, err := h.svc.Ask(r.Context(), req.Query)
	switch {
	case errors.Is(err, services.ErrEmptyQuery):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"query": "required"})
		return
	case errors.Is(err, services.ErrQueryTooLong):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", validation.Violations{"query": "too_long"})
		return
	case err != nil:
		h.log.Error("query failed", zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *InsightHandler) Summary(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.svc.Summary())
}

func (h *InsightHandler) Advanced(w http.ResponseWriter, r *http.Request) {
	var req AnalyticsRequest
	if err := httpx.DecodeJSON(w, r, &req, maxBodyBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	resp, err := h.svc.Analyze(req.Type)
	if errors.Is(err, analytics.ErrUnknownMode) {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_analysis_type", map[string]any{
			"type":    req.Type,
			"allowed": analytics.Modes,
		})
		return
	}
	if err != nil {
		h.log.Error("analysis failed", zap.String("type", req.Type), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, resp)
}

func (h *InsightHandler) Report(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := httpx.DecodeJSON(w, r, &req, maxBodyBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	resp, err := h.svc.Report(req.Type)
	if errors.Is(err, report.ErrUnknownReport) {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_report_type", map[string]any{
			"type":    req.Type,
			"allowed": report.Types,
		})
		return
	}
	if err != nil {
		h.log.Error("report failed", zap.String("type", req.Type), zap.Error(err))
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, resp)
}
