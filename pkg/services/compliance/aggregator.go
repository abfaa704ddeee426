package compliance

import (
	"math"
	"sort"

	"github.com/safework-tools/swms-atlas/pkg/models/domain"
)

// aggregate folds the three running sub-scores and the issue list into the
// final verdict. The overall score is the rounded mean of the raw sub-scores;
// all four are floored at zero afterwards. A compliant verdict requires both
// the score threshold and zero critical issues.
func aggregate(policy Policy, riskAccuracy, standards, legislation int, issues []domain.Issue) domain.ComplianceResult {
	overall := int(math.Round(float64(riskAccuracy+standards+legislation) / 3.0))

	criticals := 0
	for _, issue := range issues {
		if issue.Type == domain.SeverityCritical {
			criticals++
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Type.Rank() < issues[j].Type.Rank()
	})
	if issues == nil {
		issues = []domain.Issue{}
	}

	result := domain.ComplianceResult{
		IsCompliant:           overall >= policy.CompliantScore && criticals == 0,
		OverallScore:          floorZero(overall),
		RiskScoreAccuracy:     floorZero(riskAccuracy),
		StandardsCompliance:   floorZero(standards),
		LegislationCompliance: floorZero(legislation),
		Issues:                issues,
		Recommendations:       recommendations(policy, riskAccuracy, standards, legislation, criticals),
	}
	return result
}

func recommendations(policy Policy, riskAccuracy, standards, legislation, criticals int) []string {
	recs := []string{}
	if riskAccuracy < policy.AccuracyReviewBelow {
		recs = append(recs, "Review risk score calculations against the likelihood and consequence matrix")
	}
	if standards < policy.ComplianceReviewBelow {
		recs = append(recs, "Include all Australian Standards applicable to this trade in the legislation references")
	}
	if legislation < policy.ComplianceReviewBelow {
		recs = append(recs, "Address WHS legislation requirements for high-risk activities")
	}
	if criticals > 0 {
		recs = append(recs, "Resolve all critical issues before finalizing this SWMS")
	}
	return recs
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
