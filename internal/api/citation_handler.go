package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/citecheck/internal/api/shared"
	"github.com/phrazzld/citecheck/internal/citation"
	"github.com/phrazzld/citecheck/internal/config"
	"github.com/phrazzld/citecheck/internal/platform/metrics"
	"github.com/phrazzld/citecheck/internal/redact"
)

// CitationHandler serves the citation validation endpoints.
type CitationHandler struct {
	registry *citation.Registry
	cfg      config.ValidationConfig
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewCitationHandler creates a CitationHandler. A nil registry means the
// built-in styles; a nil logger means slog.Default(); a nil metrics records
// nothing.
func NewCitationHandler(
	registry *citation.Registry,
	cfg config.ValidationConfig,
	logger *slog.Logger,
	m *metrics.Metrics,
) *CitationHandler {
	if registry == nil {
		registry = citation.DefaultRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = string(citation.DefaultStyle)
	}
	return &CitationHandler{
		registry: registry,
		cfg:      cfg,
		logger:   logger.With("component", "citation_handler"),
		metrics:  m,
	}
}

// check validates one citation and records its outcome.
func (h *CitationHandler) check(text, format string) citation.Report {
	report := h.registry.Check(text, format)
	_, known := h.registry.Lookup(format)

	switch {
	case !known:
		// Unknown style names are caller-controlled, so they share one label.
		h.metrics.ObserveValidation("other", metrics.OutcomeUnsupported)
	case report.FormatCorrect:
		h.metrics.ObserveValidation(string(report.Style), metrics.OutcomeConforming)
	default:
		h.metrics.ObserveValidation(string(report.Style), metrics.OutcomeNonConforming)
	}
	return report
}

// Validate handles POST /api/citations/validate requests.
func (h *CitationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	detail, err := wantsDetail(r)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	var req ValidateCitationRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		respondWithRequestError(w, r, err)
		return
	}

	format := resolveFormat(req.Format, h.cfg.DefaultStyle)
	report := h.check(req.Citation, format)

	h.logger.DebugContext(r.Context(), "citation validated",
		"trace_id", shared.GetTraceID(r.Context()),
		"style", report.Style,
		"citation", redact.Citation(req.Citation),
		"format_correct", report.FormatCorrect)

	if detail {
		shared.RespondWithJSON(w, r, http.StatusOK, report)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, report.Result)
}

// ValidateBatch handles POST /api/citations/validate/batch requests.
func (h *CitationHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	detail, err := wantsDetail(r)
	if err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	var req BatchValidateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Request body is required")
			return
		}
		respondWithRequestError(w, r, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		respondWithRequestError(w, r, err)
		return
	}

	if h.cfg.MaxBatchSize > 0 && len(req.Citations) > h.cfg.MaxBatchSize {
		respondWithRequestError(w, r,
			fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(req.Citations), h.cfg.MaxBatchSize))
		return
	}

	format := resolveFormat(req.Format, h.cfg.DefaultStyle)
	results := make([]any, 0, len(req.Citations))
	conforming := 0
	for _, c := range req.Citations {
		report := h.check(c, format)
		if report.FormatCorrect {
			conforming++
		}
		if detail {
			results = append(results, report)
		} else {
			results = append(results, report.Result)
		}
	}

	h.logger.InfoContext(r.Context(), "citation batch validated",
		"trace_id", shared.GetTraceID(r.Context()),
		"style", citation.ParseStyle(format),
		"count", len(req.Citations),
		"conforming", conforming)

	shared.RespondWithJSON(w, r, http.StatusOK, BatchValidateResponse{Results: results})
}

// ListStyles handles GET /api/styles requests.
func (h *CitationHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	styles := h.registry.Styles()
	resp := StylesResponse{Styles: make([]StyleResponse, 0, len(styles))}
	for _, s := range styles {
		rule, _ := h.registry.Lookup(string(s))
		resp.Styles = append(resp.Styles, StyleResponse{Style: s, Version: rule.Version()})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
