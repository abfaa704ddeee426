package store

import "time"

// DocumentRecord is the persisted shape of a SWMS document header.
type DocumentRecord struct {
	ID                  string
	Title               string
	TradeType           string
	PrincipalContractor string
	SiteAddress         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AssessmentRecord flattens one risk assessment row. List fields are stored
// as JSON columns.
type AssessmentRecord struct {
	ID                  string
	DocumentID          string
	Position            int
	Activity            string
	Hazards             []string
	Likelihood          int
	Consequence         int
	InitialRiskScore    int
	ControlMeasures     []string
	ResidualLikelihood  int
	ResidualConsequence int
	ResidualRiskScore   int
	RiskLevel           string
	Legislation         []string
}

// IssueRecord is one persisted compliance finding.
type IssueRecord struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	RiskID     string `json:"risk_id,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

// ComplianceRecord is the persisted verdict for one analysis run of a document.
type ComplianceRecord struct {
	DocumentID            string
	IsCompliant           bool
	OverallScore          int
	RiskScoreAccuracy     int
	StandardsCompliance   int
	LegislationCompliance int
	Issues                []IssueRecord
	Recommendations       []string
	AnalyzedAt            time.Time
}
