package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/safework-tools/swms-atlas/pkg/models/store"
	"github.com/safework-tools/swms-atlas/pkg/store/duckdb"
)

// Store persists SWMS documents and their risk assessment rows.
type Store interface {
	Save(ctx context.Context, doc store.DocumentRecord, assessments []store.AssessmentRecord) error
	Get(ctx context.Context, id string) (store.DocumentRecord, []store.AssessmentRecord, error)
	List(ctx context.Context) ([]store.DocumentRecord, error)
}

// ErrNotFound is returned when a document id has no row.
var ErrNotFound = fmt.Errorf("document not found")

type documentStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &documentStore{db: db}, nil
}

// Save upserts the document header and replaces its assessment rows in one
// transaction.
func (s *documentStore) Save(ctx context.Context, doc store.DocumentRecord, assessments []store.AssessmentRecord) error {
	return duckdb.RunInTransaction(ctx, s.db, func(ctx context.Context) error {
		tx := duckdb.GetTransaction(ctx)

		if _, err := tx.ExecContext(ctx, `DELETE FROM risk_assessments WHERE document_id = ?`, doc.ID); err != nil {
			return fmt.Errorf("clear assessments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM swms_documents WHERE id = ?`, doc.ID); err != nil {
			return fmt.Errorf("clear document: %w", err)
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO swms_documents (
				id, title, trade_type, principal_contractor, site_address, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			doc.ID, doc.Title, doc.TradeType, doc.PrincipalContractor, doc.SiteAddress, doc.CreatedAt, doc.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO risk_assessments (
				id, document_id, position, activity, hazards, likelihood, consequence,
				initial_risk_score, control_measures, residual_likelihood,
				residual_consequence, residual_risk_score, risk_level, legislation
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare statement: %w", err)
		}
		defer stmt.Close()

		for _, a := range assessments {
			hazards, err := json.Marshal(a.Hazards)
			if err != nil {
				return fmt.Errorf("marshal hazards: %w", err)
			}
			controls, err := json.Marshal(a.ControlMeasures)
			if err != nil {
				return fmt.Errorf("marshal control measures: %w", err)
			}
			legislation, err := json.Marshal(a.Legislation)
			if err != nil {
				return fmt.Errorf("marshal legislation: %w", err)
			}

			_, err = stmt.ExecContext(ctx,
				a.ID, doc.ID, a.Position, a.Activity, hazards, a.Likelihood, a.Consequence,
				a.InitialRiskScore, controls, a.ResidualLikelihood,
				a.ResidualConsequence, a.ResidualRiskScore, a.RiskLevel, legislation,
			)
			if err != nil {
				return fmt.Errorf("insert assessment %s: %w", a.ID, err)
			}
		}
		return nil
	})
}

func (s *documentStore) Get(ctx context.Context, id string) (store.DocumentRecord, []store.AssessmentRecord, error) {
	var doc store.DocumentRecord
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, trade_type, principal_contractor, site_address, created_at, updated_at
		FROM swms_documents WHERE id = ?`, id,
	).Scan(&doc.ID, &doc.Title, &doc.TradeType, &doc.PrincipalContractor, &doc.SiteAddress, &doc.CreatedAt, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return store.DocumentRecord{}, nil, ErrNotFound
	}
	if err != nil {
		return store.DocumentRecord{}, nil, fmt.Errorf("query document: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, position, activity, hazards, likelihood, consequence,
			initial_risk_score, control_measures, residual_likelihood,
			residual_consequence, residual_risk_score, risk_level, legislation
		FROM risk_assessments WHERE document_id = ? ORDER BY position`, id)
	if err != nil {
		return store.DocumentRecord{}, nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []store.AssessmentRecord
	for rows.Next() {
		var a store.AssessmentRecord
		var hazards, controls, legislation []byte
		err := rows.Scan(
			&a.ID, &a.Position, &a.Activity, &hazards, &a.Likelihood, &a.Consequence,
			&a.InitialRiskScore, &controls, &a.ResidualLikelihood,
			&a.ResidualConsequence, &a.ResidualRiskScore, &a.RiskLevel, &legislation,
		)
		if err != nil {
			return store.DocumentRecord{}, nil, fmt.Errorf("scan assessment: %w", err)
		}
		a.DocumentID = id
		if err := unmarshalList(hazards, &a.Hazards); err != nil {
			return store.DocumentRecord{}, nil, fmt.Errorf("unmarshal hazards: %w", err)
		}
		if err := unmarshalList(controls, &a.ControlMeasures); err != nil {
			return store.DocumentRecord{}, nil, fmt.Errorf("unmarshal control measures: %w", err)
		}
		if err := unmarshalList(legislation, &a.Legislation); err != nil {
			return store.DocumentRecord{}, nil, fmt.Errorf("unmarshal legislation: %w", err)
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return store.DocumentRecord{}, nil, fmt.Errorf("iterate assessments: %w", err)
	}

	return doc, assessments, nil
}

func (s *documentStore) List(ctx context.Context) ([]store.DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, trade_type, principal_contractor, site_address, created_at, updated_at
		FROM swms_documents ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []store.DocumentRecord
	for rows.Next() {
		var d store.DocumentRecord
		err := rows.Scan(&d.ID, &d.Title, &d.TradeType, &d.PrincipalContractor, &d.SiteAddress, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func unmarshalList(data []byte, dst *[]string) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
