package compliance

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/safework-tools/swms-atlas/pkg/models/store"
)

// Store persists compliance verdicts per document. Every analysis run appends
// a row; Latest returns the most recent one.
type Store interface {
	Save(ctx context.Context, record store.ComplianceRecord) error
	Latest(ctx context.Context, documentID string) (store.ComplianceRecord, bool, error)
}

type complianceStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &complianceStore{db: db}, nil
}

func (s *complianceStore) Save(ctx context.Context, record store.ComplianceRecord) error {
	issues, err := json.Marshal(record.Issues)
	if err != nil {
		return fmt.Errorf("marshal issues: %w", err)
	}
	recommendations, err := json.Marshal(record.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO compliance_results (
			document_id, is_compliant, overall_score, risk_score_accuracy,
			standards_compliance, legislation_compliance, issues, recommendations, analyzed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.DocumentID, record.IsCompliant, record.OverallScore, record.RiskScoreAccuracy,
		record.StandardsCompliance, record.LegislationCompliance, issues, recommendations, record.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("insert compliance result: %w", err)
	}
	return nil
}

func (s *complianceStore) Latest(ctx context.Context, documentID string) (store.ComplianceRecord, bool, error) {
	var r store.ComplianceRecord
	var issues, recommendations []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document_id, is_compliant, overall_score, risk_score_accuracy,
			standards_compliance, legislation_compliance, issues, recommendations, analyzed_at
		FROM compliance_results
		WHERE document_id = ?
		ORDER BY analyzed_at DESC
		LIMIT 1`, documentID,
	).Scan(
		&r.DocumentID, &r.IsCompliant, &r.OverallScore, &r.RiskScoreAccuracy,
		&r.StandardsCompliance, &r.LegislationCompliance, &issues, &recommendations, &r.AnalyzedAt,
	)
	if err == sql.ErrNoRows {
		return store.ComplianceRecord{}, false, nil
	}
	if err != nil {
		return store.ComplianceRecord{}, false, fmt.Errorf("query compliance result: %w", err)
	}

	if len(issues) > 0 {
		if err := json.Unmarshal(issues, &r.Issues); err != nil {
			return store.ComplianceRecord{}, false, fmt.Errorf("unmarshal issues: %w", err)
		}
	}
	if len(recommendations) > 0 {
		if err := json.Unmarshal(recommendations, &r.Recommendations); err != nil {
			return store.ComplianceRecord{}, false, fmt.Errorf("unmarshal recommendations: %w", err)
		}
	}
	return r, true, nil
}
