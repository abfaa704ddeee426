// Package duckdb provisions the embedded database the document and
// compliance stores persist into.
package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const documentsSchema = `
	CREATE TABLE IF NOT EXISTS swms_documents (
		id VARCHAR PRIMARY KEY,
		title VARCHAR NOT NULL,
		trade_type VARCHAR NOT NULL,
		principal_contractor VARCHAR,
		site_address VARCHAR,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);
`

const assessmentsSchema = `
	CREATE TABLE IF NOT EXISTS risk_assessments (
		id VARCHAR NOT NULL,
		document_id VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		activity VARCHAR NOT NULL,
		hazards JSON,
		likelihood INTEGER,
		consequence INTEGER,
		initial_risk_score INTEGER,
		control_measures JSON,
		residual_likelihood INTEGER,
		residual_consequence INTEGER,
		residual_risk_score INTEGER,
		risk_level VARCHAR,
		legislation JSON,
		PRIMARY KEY (document_id, id)
	);
`

const complianceSchema = `
	CREATE TABLE IF NOT EXISTS compliance_results (
		document_id VARCHAR NOT NULL,
		is_compliant BOOLEAN NOT NULL,
		overall_score INTEGER NOT NULL,
		risk_score_accuracy INTEGER NOT NULL,
		standards_compliance INTEGER NOT NULL,
		legislation_compliance INTEGER NOT NULL,
		issues JSON,
		recommendations JSON,
		analyzed_at TIMESTAMP NOT NULL
	);
`

var bootQueries = []string{
	documentsSchema,
	assessmentsSchema,
	complianceSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the database at the configured path and applies
// the schema. Use ":memory:" for tests.
func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			if _, err := exec.ExecContext(context.Background(), query, nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(c), nil
}
