package api

import "time"

type Issue struct {
	Type       string `json:"type"`
	Category   string `json:"category"`
	Message    string `json:"message"`
	RiskID     string `json:"riskId,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

type ComplianceResult struct {
	IsCompliant           bool     `json:"isCompliant"`
	OverallScore          int      `json:"overallScore"`
	RiskScoreAccuracy     int      `json:"riskScoreAccuracy"`
	StandardsCompliance   int      `json:"standardsCompliance"`
	LegislationCompliance int      `json:"legislationCompliance"`
	Issues                []Issue  `json:"issues"`
	Recommendations       []string `json:"recommendations"`
}

type AnalysisEntry struct {
	DocumentID   string    `json:"documentId,omitempty"`
	Trade        string    `json:"trade"`
	OverallScore int       `json:"overallScore"`
	IssueCount   int       `json:"issueCount"`
	DurationMS   float64   `json:"durationMs"`
	At           time.Time `json:"at"`
}
