package domain

// IssueSeverity ranks a compliance finding.
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityHigh     IssueSeverity = "high"
	SeverityMedium   IssueSeverity = "medium"
	SeverityLow      IssueSeverity = "low"
)

// Rank orders severities, critical first. Unknown severities sort last.
func (s IssueSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// IssueCategory groups findings by the rule family that produced them.
// CategoryDocumentation is reserved for future checks and currently unused.
type IssueCategory string

const (
	CategoryRiskCalculation IssueCategory = "risk_calculation"
	CategoryStandards       IssueCategory = "standards"
	CategoryLegislation     IssueCategory = "legislation"
	CategoryDocumentation   IssueCategory = "documentation"
)

// Issue is one compliance finding. RiskID is a weak back-reference to the
// originating assessment and may be empty for document-level findings.
type Issue struct {
	Type       IssueSeverity
	Category   IssueCategory
	Message    string
	RiskID     string
	Resolution string
}

// ComplianceResult is the aggregate verdict for one analysis run. It is fully
// recomputed on every run, never patched.
type ComplianceResult struct {
	IsCompliant           bool
	OverallScore          int
	RiskScoreAccuracy     int
	StandardsCompliance   int
	LegislationCompliance int
	Issues                []Issue
	Recommendations       []string
}
