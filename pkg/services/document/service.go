// Package document manages SWMS documents: persistence, retrieval, and
// running the compliance analysis with the result recorded and stored.
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safework-tools/swms-atlas/pkg/models/domain"
	"github.com/safework-tools/swms-atlas/pkg/models/store"
	"github.com/safework-tools/swms-atlas/pkg/monitor"
	"github.com/safework-tools/swms-atlas/pkg/services/compliance"
	compliancestore "github.com/safework-tools/swms-atlas/pkg/store/duckdb/compliance"
	documentstore "github.com/safework-tools/swms-atlas/pkg/store/duckdb/document"
)

// ErrNotFound mirrors the store sentinel so handlers need not import the
// store package.
var ErrNotFound = documentstore.ErrNotFound

type Service struct {
	docs     documentstore.Store
	results  compliancestore.Store
	analyzer *compliance.Analyzer
	log      *monitor.Log
	now      func() time.Time
}

func NewService(docs documentstore.Store, results compliancestore.Store, analyzer *compliance.Analyzer, log *monitor.Log) *Service {
	return &Service{
		docs:     docs,
		results:  results,
		analyzer: analyzer,
		log:      log,
		now:      time.Now,
	}
}

// Create assigns ids and timestamps and persists a new document.
func (s *Service) Create(ctx context.Context, doc domain.SWMSDocument) (domain.SWMSDocument, error) {
	doc.ID = uuid.NewString()
	now := s.now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	for i := range doc.Assessments {
		if doc.Assessments[i].ID == "" {
			doc.Assessments[i].ID = uuid.NewString()
		}
	}

	if err := s.docs.Save(ctx, toDocumentRecord(doc), toAssessmentRecords(doc)); err != nil {
		return domain.SWMSDocument{}, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

// Update replaces a document's content, keeping its id and creation time.
func (s *Service) Update(ctx context.Context, doc domain.SWMSDocument) (domain.SWMSDocument, error) {
	existing, err := s.Get(ctx, doc.ID)
	if err != nil {
		return domain.SWMSDocument{}, err
	}
	doc.CreatedAt = existing.CreatedAt
	doc.UpdatedAt = s.now().UTC()
	for i := range doc.Assessments {
		if doc.Assessments[i].ID == "" {
			doc.Assessments[i].ID = uuid.NewString()
		}
	}

	if err := s.docs.Save(ctx, toDocumentRecord(doc), toAssessmentRecords(doc)); err != nil {
		return domain.SWMSDocument{}, fmt.Errorf("save document: %w", err)
	}
	return doc, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.SWMSDocument, error) {
	rec, assessments, err := s.docs.Get(ctx, id)
	if err != nil {
		return domain.SWMSDocument{}, err
	}
	return fromRecords(rec, assessments), nil
}

func (s *Service) List(ctx context.Context) ([]domain.SWMSDocument, error) {
	records, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]domain.SWMSDocument, 0, len(records))
	for _, rec := range records {
		docs = append(docs, fromRecords(rec, nil))
	}
	return docs, nil
}

// Analyze loads the document, runs the compliance engine, persists the
// verdict and records the run in the analysis log.
func (s *Service) Analyze(ctx context.Context, id string) (domain.ComplianceResult, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return domain.ComplianceResult{}, err
	}

	started := s.now()
	result := s.analyzer.Analyze(doc.Assessments, doc.TradeType)
	elapsed := s.now().Sub(started)

	if s.log != nil {
		s.log.Record(monitor.Entry{
			DocumentID:   doc.ID,
			Trade:        doc.TradeType,
			OverallScore: result.OverallScore,
			IssueCount:   len(result.Issues),
			Duration:     elapsed,
			At:           started.UTC(),
		})
	}

	if err := s.results.Save(ctx, toComplianceRecord(doc.ID, result, started.UTC())); err != nil {
		return domain.ComplianceResult{}, fmt.Errorf("save compliance result: %w", err)
	}
	return result, nil
}

// LatestCompliance returns the stored verdict from the most recent analysis.
func (s *Service) LatestCompliance(ctx context.Context, id string) (domain.ComplianceResult, bool, error) {
	rec, found, err := s.results.Latest(ctx, id)
	if err != nil || !found {
		return domain.ComplianceResult{}, found, err
	}
	return fromComplianceRecord(rec), true, nil
}

func toDocumentRecord(doc domain.SWMSDocument) store.DocumentRecord {
	return store.DocumentRecord{
		ID:                  doc.ID,
		Title:               doc.Title,
		TradeType:           doc.TradeType,
		PrincipalContractor: doc.PrincipalContractor,
		SiteAddress:         doc.SiteAddress,
		CreatedAt:           doc.CreatedAt,
		UpdatedAt:           doc.UpdatedAt,
	}
}

func toAssessmentRecords(doc domain.SWMSDocument) []store.AssessmentRecord {
	records := make([]store.AssessmentRecord, 0, len(doc.Assessments))
	for i, a := range doc.Assessments {
		records = append(records, store.AssessmentRecord{
			ID:                  a.ID,
			DocumentID:          doc.ID,
			Position:            i,
			Activity:            a.Activity,
			Hazards:             a.Hazards,
			Likelihood:          a.Likelihood,
			Consequence:         a.Consequence,
			InitialRiskScore:    a.InitialRiskScore,
			ControlMeasures:     a.ControlMeasures,
			ResidualLikelihood:  a.ResidualLikelihood,
			ResidualConsequence: a.ResidualConsequence,
			ResidualRiskScore:   a.ResidualRiskScore,
			RiskLevel:           a.RiskLevel,
			Legislation:         a.Legislation,
		})
	}
	return records
}

func fromRecords(rec store.DocumentRecord, assessments []store.AssessmentRecord) domain.SWMSDocument {
	doc := domain.SWMSDocument{
		ID:                  rec.ID,
		Title:               rec.Title,
		TradeType:           rec.TradeType,
		PrincipalContractor: rec.PrincipalContractor,
		SiteAddress:         rec.SiteAddress,
		CreatedAt:           rec.CreatedAt,
		UpdatedAt:           rec.UpdatedAt,
	}
	for _, a := range assessments {
		doc.Assessments = append(doc.Assessments, domain.RiskAssessment{
			ID:                  a.ID,
			Activity:            a.Activity,
			Hazards:             a.Hazards,
			Likelihood:          a.Likelihood,
			Consequence:         a.Consequence,
			InitialRiskScore:    a.InitialRiskScore,
			ControlMeasures:     a.ControlMeasures,
			ResidualLikelihood:  a.ResidualLikelihood,
			ResidualConsequence: a.ResidualConsequence,
			ResidualRiskScore:   a.ResidualRiskScore,
			RiskLevel:           a.RiskLevel,
			Legislation:         a.Legislation,
		})
	}
	return doc
}

func toComplianceRecord(documentID string, result domain.ComplianceResult, analyzedAt time.Time) store.ComplianceRecord {
	rec := store.ComplianceRecord{
		DocumentID:            documentID,
		IsCompliant:           result.IsCompliant,
		OverallScore:          result.OverallScore,
		RiskScoreAccuracy:     result.RiskScoreAccuracy,
		StandardsCompliance:   result.StandardsCompliance,
		LegislationCompliance: result.LegislationCompliance,
		Recommendations:       result.Recommendations,
		AnalyzedAt:            analyzedAt,
	}
	for _, issue := range result.Issues {
		rec.Issues = append(rec.Issues, store.IssueRecord{
			Type:       string(issue.Type),
			Category:   string(issue.Category),
			Message:    issue.Message,
			RiskID:     issue.RiskID,
			Resolution: issue.Resolution,
		})
	}
	return rec
}

func fromComplianceRecord(rec store.ComplianceRecord) domain.ComplianceResult {
	result := domain.ComplianceResult{
		IsCompliant:           rec.IsCompliant,
		OverallScore:          rec.OverallScore,
		RiskScoreAccuracy:     rec.RiskScoreAccuracy,
		StandardsCompliance:   rec.StandardsCompliance,
		LegislationCompliance: rec.LegislationCompliance,
		Issues:                []domain.Issue{},
		Recommendations:       rec.Recommendations,
	}
	for _, issue := range rec.Issues {
		result.Issues = append(result.Issues, domain.Issue{
			Type:       domain.IssueSeverity(issue.Type),
			Category:   domain.IssueCategory(issue.Category),
			Message:    issue.Message,
			RiskID:     issue.RiskID,
			Resolution: issue.Resolution,
		})
	}
	return result
}
