package swms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/safework-tools/swms-atlas/pkg/models/api"
	"github.com/safework-tools/swms-atlas/pkg/models/domain"
	"github.com/safework-tools/swms-atlas/pkg/monitor"
	"github.com/safework-tools/swms-atlas/pkg/services/document"
	"github.com/safework-tools/swms-atlas/pkg/services/regulatory"
	"github.com/safework-tools/swms-atlas/pkg/services/templates"
)

const defaultRecentLimit = 20

// DocumentService is the document lifecycle surface the handler depends on.
type DocumentService interface {
	Create(ctx context.Context, doc domain.SWMSDocument) (domain.SWMSDocument, error)
	Get(ctx context.Context, id string) (domain.SWMSDocument, error)
	List(ctx context.Context) ([]domain.SWMSDocument, error)
	Analyze(ctx context.Context, id string) (domain.ComplianceResult, error)
	LatestCompliance(ctx context.Context, id string) (domain.ComplianceResult, bool, error)
}

// Analyzer runs a stateless compliance analysis.
type Analyzer interface {
	Analyze(assessments []domain.RiskAssessment, tradeType string) domain.ComplianceResult
}

// AnalysisLog exposes recent analysis runs.
type AnalysisLog interface {
	Recent(n int) []monitor.Entry
}

type Handler struct {
	documents DocumentService
	analyzer  Analyzer
	log       AnalysisLog
	validate  *validator.Validate
}

func NewHandler(documents DocumentService, analyzer Analyzer, log AnalysisLog) *Handler {
	return &Handler{
		documents: documents,
		analyzer:  analyzer,
		log:       log,
		validate:  validator.New(),
	}
}

func (h *Handler) ListTrades(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, regulatory.Trades())
}

func (h *Handler) GetTradeRequirements(w http.ResponseWriter, r *http.Request) {
	reqs := regulatory.ForTrade(chi.URLParam(r, "trade"))
	writeJSON(r.Context(), w, api.TradeRequirements{
		Trade:            reqs.Trade,
		PrimaryStandards: reqs.PrimaryStandards,
		WHSActs:          reqs.WHSActs,
		CodesOfPractice:  reqs.CodesOfPractice,
	})
}

func (h *Handler) ListTradeTemplates(w http.ResponseWriter, r *http.Request) {
	response := []api.TaskTemplate{}
	for _, t := range templates.ForTrade(chi.URLParam(r, "trade")) {
		response = append(response, templateToAPI(t))
	}
	writeJSON(r.Context(), w, response)
}

// Analyze runs the compliance engine over assessments posted in the request
// body, without touching any stored document.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req api.AnalyzeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	assessments := make([]domain.RiskAssessment, 0, len(req.Assessments))
	for _, a := range req.Assessments {
		assessments = append(assessments, assessmentFromAPI(a))
	}

	result := h.analyzer.Analyze(assessments, req.TradeType)
	writeJSON(r.Context(), w, resultToAPI(result))
}

func (h *Handler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req api.CreateDocumentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	doc := domain.SWMSDocument{
		Title:               req.Title,
		TradeType:           req.TradeType,
		PrincipalContractor: req.PrincipalContractor,
		SiteAddress:         req.SiteAddress,
	}
	for _, a := range req.Assessments {
		doc.Assessments = append(doc.Assessments, assessmentFromAPI(a))
	}

	created, err := h.documents.Create(r.Context(), doc)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(r.Context(), w, documentToAPI(created))
}

func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	response := []api.SWMSDocument{}
	for _, d := range docs {
		response = append(response, documentToAPI(d))
	}
	writeJSON(r.Context(), w, response)
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(r.Context(), w, documentToAPI(doc))
}

func (h *Handler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	result, err := h.documents.Analyze(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(r.Context(), w, resultToAPI(result))
}

func (h *Handler) GetCompliance(w http.ResponseWriter, r *http.Request) {
	result, found, err := h.documents.LatestCompliance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		http.Error(w, "document has not been analyzed", http.StatusNotFound)
		return
	}
	writeJSON(r.Context(), w, resultToAPI(result))
}

func (h *Handler) RecentAnalyses(w http.ResponseWriter, r *http.Request) {
	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid 'limit' parameter", http.StatusBadRequest)
			return
		}
		limit = n
	}

	response := []api.AnalysisEntry{}
	for _, e := range h.log.Recent(limit) {
		response = append(response, api.AnalysisEntry{
			DocumentID:   e.DocumentID,
			Trade:        e.Trade,
			OverallScore: e.OverallScore,
			IssueCount:   e.IssueCount,
			DurationMS:   float64(e.Duration.Microseconds()) / 1000,
			At:           e.At,
		})
	}
	writeJSON(r.Context(), w, response)
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, document.ErrNotFound) {
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}
