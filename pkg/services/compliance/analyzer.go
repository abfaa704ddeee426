// Package compliance evaluates a SWMS document's risk assessments against
// the risk matrix and the jurisdiction's regulatory reference tables, and
// aggregates the findings into a single compliance verdict.
package compliance

import (
	"fmt"
	"strings"

	"github.com/safework-tools/swms-atlas/pkg/models/domain"
	"github.com/safework-tools/swms-atlas/pkg/services/regulatory"
	"github.com/safework-tools/swms-atlas/pkg/services/risk"
)

// Policy contains the fixed thresholds and penalties the analyzer applies.
type Policy struct {
	// InitialScorePenalty is deducted from risk score accuracy when a
	// reported initial score disagrees with the matrix (default: 10)
	InitialScorePenalty int
	// ResidualScorePenalty is deducted when a reported residual score
	// disagrees with the matrix (default: 10)
	ResidualScorePenalty int
	// ReductionPenalty is deducted when the residual score does not reduce
	// the initial score (default: 15)
	ReductionPenalty int
	// ControlShortfallPenalty is deducted when a high-risk activity documents
	// too few control measures (default: 15)
	ControlShortfallPenalty int
	// MissingStandardPenalty is deducted per trade-required standard absent
	// from the document (default: 5)
	MissingStandardPenalty int
	// MissingWHSPenalty is deducted when a High or Extreme activity cites no
	// WHS legislation (default: 20)
	MissingWHSPenalty int
	// MissingControlPenalty is deducted per unmet hazard-category control
	// requirement (default: 10)
	MissingControlPenalty int
	// HighRiskScore is the initial score at which the control-measure count
	// check applies (default: 15)
	HighRiskScore int
	// MinControlMeasures is the minimum control count for high-risk
	// activities (default: 3)
	MinControlMeasures int
	// CompliantScore is the overall score required for a compliant verdict
	// (default: 85)
	CompliantScore int
	// AccuracyReviewBelow triggers the matrix-review recommendation
	// (default: 90)
	AccuracyReviewBelow int
	// ComplianceReviewBelow triggers the standards and legislation
	// recommendations (default: 85)
	ComplianceReviewBelow int
}

// DefaultPolicy returns the thresholds and penalties the analyzer ships with.
func DefaultPolicy() Policy {
	return Policy{
		InitialScorePenalty:     10,
		ResidualScorePenalty:    10,
		ReductionPenalty:        15,
		ControlShortfallPenalty: 15,
		MissingStandardPenalty:  5,
		MissingWHSPenalty:       20,
		MissingControlPenalty:   10,
		HighRiskScore:           15,
		MinControlMeasures:      3,
		CompliantScore:          85,
		AccuracyReviewBelow:     90,
		ComplianceReviewBelow:   85,
	}
}

// Analyzer runs the compliance rules. It holds only immutable configuration,
// so a single instance is safe for concurrent use; every Analyze call builds
// fresh accumulators and returns a new result.
type Analyzer struct {
	policy     Policy
	classifier risk.ClassifierTable
}

// NewAnalyzer builds an analyzer from a policy and a classifier table.
func NewAnalyzer(policy Policy, classifier risk.ClassifierTable) *Analyzer {
	return &Analyzer{policy: policy, classifier: classifier}
}

// NewDefaultAnalyzer builds an analyzer with the default policy and the
// canonical classifier table.
func NewDefaultAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultPolicy(), risk.DefaultClassifierTable())
}

// Analyze evaluates every assessment in one synchronous pass and returns the
// aggregate verdict. The whole list is re-evaluated on every call; there is
// no incremental mode. Business-rule violations become Issues, never errors.
//
// The trade standards coverage pass runs even for an empty assessment list,
// so an empty document is penalized for every standard its trade requires.
func (a *Analyzer) Analyze(assessments []domain.RiskAssessment, tradeType string) domain.ComplianceResult {
	riskAccuracy := 100
	standards := 100
	legislation := 100
	var issues []domain.Issue

	normalized := make([]domain.RiskAssessment, len(assessments))
	for i, ra := range assessments {
		normalized[i] = ra.Normalize()
	}

	for _, ra := range normalized {
		v := risk.Validate(ra.Likelihood, ra.Consequence, ra.InitialRiskScore)
		if !v.IsValid {
			riskAccuracy -= a.policy.InitialScorePenalty
			issues = append(issues, domain.Issue{
				Type:     domain.SeverityHigh,
				Category: domain.CategoryRiskCalculation,
				Message: fmt.Sprintf("Initial risk score for %q is %d but the matrix gives %d for likelihood %d and consequence %d",
					ra.Activity, v.ReportedScore, v.ExpectedScore, risk.Clamp(ra.Likelihood), risk.Clamp(ra.Consequence)),
				RiskID:     ra.ID,
				Resolution: fmt.Sprintf("Set the initial risk score to %d", v.ExpectedScore),
			})
		}

		rv := risk.Validate(ra.ResidualLikelihood, ra.ResidualConsequence, ra.ResidualRiskScore)
		if !rv.IsValid {
			riskAccuracy -= a.policy.ResidualScorePenalty
			issues = append(issues, domain.Issue{
				Type:     domain.SeverityHigh,
				Category: domain.CategoryRiskCalculation,
				Message: fmt.Sprintf("Residual risk score for %q is %d but the matrix gives %d for likelihood %d and consequence %d",
					ra.Activity, rv.ReportedScore, rv.ExpectedScore, risk.Clamp(ra.ResidualLikelihood), risk.Clamp(ra.ResidualConsequence)),
				RiskID:     ra.ID,
				Resolution: fmt.Sprintf("Set the residual risk score to %d", rv.ExpectedScore),
			})
		}

		// Independent of the matrix checks: both scores can be individually
		// valid and still fail to show a reduction.
		if ra.ResidualRiskScore >= ra.InitialRiskScore {
			riskAccuracy -= a.policy.ReductionPenalty
			issues = append(issues, domain.Issue{
				Type:     domain.SeverityCritical,
				Category: domain.CategoryRiskCalculation,
				Message: fmt.Sprintf("Residual risk score %d for %q does not reduce the initial risk score %d; control measures must reduce risk",
					ra.ResidualRiskScore, ra.Activity, ra.InitialRiskScore),
				RiskID:     ra.ID,
				Resolution: "Add or strengthen control measures so the residual risk is lower than the initial risk",
			})
		}

		if ra.InitialRiskScore >= a.policy.HighRiskScore && len(ra.ControlMeasures) < a.policy.MinControlMeasures {
			standards -= a.policy.ControlShortfallPenalty
			issues = append(issues, domain.Issue{
				Type:     domain.SeverityCritical,
				Category: domain.CategoryStandards,
				Message: fmt.Sprintf("%q has an initial risk score of %d but only %d control measures documented",
					ra.Activity, ra.InitialRiskScore, len(ra.ControlMeasures)),
				RiskID:     ra.ID,
				Resolution: fmt.Sprintf("Document at least %d control measures for high-risk activities", a.policy.MinControlMeasures),
			})
		}
	}

	standards, issues = a.checkStandardsCoverage(normalized, tradeType, standards, issues)
	legislation, issues = a.checkLegislation(normalized, legislation, issues)

	return aggregate(a.policy, riskAccuracy, standards, legislation, issues)
}

// checkStandardsCoverage verifies that every standard the trade requires is
// cited somewhere in the document. Matching is deliberately forgiving: the
// citation prefix (text before the first colon) only has to appear as a
// substring of some mentioned citation.
func (a *Analyzer) checkStandardsCoverage(assessments []domain.RiskAssessment, tradeType string, standards int, issues []domain.Issue) (int, []domain.Issue) {
	reqs := regulatory.ForTrade(tradeType)
	for _, required := range reqs.RequiredStandards() {
		prefix := strings.ToLower(regulatory.CitationPrefix(required))
		mentioned := false
		for _, ra := range assessments {
			for _, cited := range ra.Legislation {
				if strings.Contains(strings.ToLower(cited), prefix) {
					mentioned = true
					break
				}
			}
			if mentioned {
				break
			}
		}
		if !mentioned {
			standards -= a.policy.MissingStandardPenalty
			issues = append(issues, domain.Issue{
				Type:     domain.SeverityMedium,
				Category: domain.CategoryStandards,
				Message: fmt.Sprintf("Required standard %q for %s work is not referenced by any risk assessment",
					required, reqs.Trade),
				Resolution: fmt.Sprintf("Add %q to the legislation references of the relevant assessment", required),
			})
		}
	}
	return standards, issues
}

// checkLegislation re-derives each assessment's risk level from its initial
// score (the stored riskLevel field is never trusted), requires WHS citations
// for High and Extreme activities, and matches hazard-category control
// requirements against the documented control measures.
func (a *Analyzer) checkLegislation(assessments []domain.RiskAssessment, legislation int, issues []domain.Issue) (int, []domain.Issue) {
	for _, ra := range assessments {
		level := a.classifier.Classify(ra.InitialRiskScore)
		if level == risk.LevelHigh || level == risk.LevelExtreme {
			citesWHS := false
			for _, cited := range ra.Legislation {
				if strings.Contains(strings.ToUpper(cited), "WHS") {
					citesWHS = true
					break
				}
			}
			if !citesWHS {
				legislation -= a.policy.MissingWHSPenalty
				issues = append(issues, domain.Issue{
					Type:     domain.SeverityCritical,
					Category: domain.CategoryLegislation,
					Message: fmt.Sprintf("%q is rated %s risk but cites no WHS legislation",
						ra.Activity, level),
					RiskID:     ra.ID,
					Resolution: "Reference the applicable WHS Act or Regulation for this activity",
				})
			}
		}

		activity := normalizeText(ra.Activity)
		for _, hr := range regulatory.HazardRequirements() {
			if !strings.Contains(activity, hr.Category) {
				continue
			}
			for _, requirement := range hr.Requirements {
				if controlsCover(ra.ControlMeasures, requirement) {
					continue
				}
				legislation -= a.policy.MissingControlPenalty
				issues = append(issues, domain.Issue{
					Type:     domain.SeverityHigh,
					Category: domain.CategoryLegislation,
					Message: fmt.Sprintf("%q involves %s hazards but the control measures do not address: %s",
						ra.Activity, hr.Category, requirement),
					RiskID:     ra.ID,
					Resolution: fmt.Sprintf("Add a control measure covering %q", requirement),
				})
			}
		}
	}
	return legislation, issues
}

// controlsCover reports whether any control measure mentions the requirement.
// The match is a loose heuristic inherited from the source rules: the first
// ten characters of the requirement as a case-insensitive substring.
func controlsCover(controls []string, requirement string) bool {
	key := strings.ToLower(requirement)
	if len(key) > 10 {
		key = key[:10]
	}
	for _, c := range controls {
		if strings.Contains(strings.ToLower(c), key) {
			return true
		}
	}
	return false
}

// normalizeText lowercases and collapses runs of whitespace to single spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
