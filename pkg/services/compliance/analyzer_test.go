package compliance

import (
	"fmt"
	"testing"

	"github.com/safework-tools/swms-atlas/pkg/models/domain"
	"github.com/safework-tools/swms-atlas/pkg/services/risk"
	"github.com/safework-tools/swms-atlas/pkg/services/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generalCitations satisfies the "general" trade standards coverage check.
var generalCitations = []string{
	"AS/NZS 4801:2001",
	"WHS Act 2011",
	"WHS Regulation 2017",
	"Construction work: Code of Practice",
}

// validAssessment builds an assessment whose scores agree with the matrix and
// which passes every rule for the "general" trade.
func validAssessment(id string) domain.RiskAssessment {
	return domain.RiskAssessment{
		ID:               id,
		Activity:         "Erect timber wall frames",
		Hazards:          []string{"Frames toppling"},
		Likelihood:       3,
		Consequence:      3,
		InitialRiskScore: risk.ExpectedScore(3, 3),
		ControlMeasures: []string{
			"Temporary bracing fixed before releasing frames",
			"Nail gun used with sequential trigger",
			"Two-person lifts for full-height frames",
		},
		ResidualLikelihood:  2,
		ResidualConsequence: 2,
		ResidualRiskScore:   risk.ExpectedScore(2, 2),
		Legislation:         generalCitations,
	}
}

func countIssues(issues []domain.Issue, severity domain.IssueSeverity, category domain.IssueCategory) int {
	n := 0
	for _, issue := range issues {
		if issue.Type == severity && issue.Category == category {
			n++
		}
	}
	return n
}

func TestAnalyze_CleanDocumentIsCompliant(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	result := analyzer.Analyze([]domain.RiskAssessment{validAssessment("a1")}, "general")

	assert.True(t, result.IsCompliant)
	assert.Equal(t, 100, result.OverallScore)
	assert.Equal(t, 100, result.RiskScoreAccuracy)
	assert.Equal(t, 100, result.StandardsCompliance)
	assert.Equal(t, 100, result.LegislationCompliance)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Recommendations)
}

func TestAnalyze_TemplateSeededDocumentIsCompliant(t *testing.T) {
	analyzer := NewDefaultAnalyzer()
	classifier := risk.DefaultClassifierTable()

	var assessments []domain.RiskAssessment
	for _, tpl := range templates.ForTrade("electrical") {
		assessments = append(assessments, templates.Assessment(tpl, classifier))
	}
	require.NotEmpty(t, assessments)

	result := analyzer.Analyze(assessments, "electrical")

	assert.True(t, result.IsCompliant, "issues: %+v", result.Issues)
	assert.Empty(t, result.Issues)
}

func TestAnalyze_WrongResidualScenario(t *testing.T) {
	// One assessment: initial score correct for (4,4), residual reported as
	// 20 against residual factors (2,2), and only two control measures.
	analyzer := NewDefaultAnalyzer()

	a := domain.RiskAssessment{
		ID:                  "a1",
		Activity:            "Erect timber wall frames",
		Likelihood:          4,
		Consequence:         4,
		InitialRiskScore:    16,
		ControlMeasures:     []string{"Bracing", "Exclusion zone"},
		ResidualLikelihood:  2,
		ResidualConsequence: 2,
		ResidualRiskScore:   20,
		Legislation:         generalCitations,
	}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityHigh, domain.CategoryRiskCalculation),
		"residual score 20 should fail matrix validation against expected 4")
	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityCritical, domain.CategoryRiskCalculation),
		"residual 20 >= initial 16 should flag an unreduced risk")
	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityCritical, domain.CategoryStandards),
		"score 16 with two control measures should flag a control shortfall")
	assert.GreaterOrEqual(t, len(result.Issues), 3)
	assert.LessOrEqual(t, result.RiskScoreAccuracy, 75, "accuracy should drop by at least 25")
	assert.False(t, result.IsCompliant)
}

func TestAnalyze_EmptyListStillChecksTradeStandards(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	result := analyzer.Analyze(nil, "electrical")

	// Six required citations for electrical work, none mentioned.
	assert.Equal(t, 100, result.RiskScoreAccuracy)
	assert.Equal(t, 100, result.LegislationCompliance)
	assert.Equal(t, 70, result.StandardsCompliance)
	assert.Len(t, result.Issues, 6)
	for _, issue := range result.Issues {
		assert.Equal(t, domain.SeverityMedium, issue.Type)
		assert.Equal(t, domain.CategoryStandards, issue.Category)
	}
}

func TestAnalyze_MissingWiringRulesStandard(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Activity = "Terminate cabling at distribution board"
	a.Legislation = []string{
		"AS/NZS 3012:2019",
		"AS/NZS 3760:2022",
		"WHS Act 2011",
		"WHS Regulation 2017 Part 4.7",
		"Managing electrical risks in the workplace: Code of Practice",
	}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "electrical")

	found := false
	for _, issue := range result.Issues {
		if issue.Type == domain.SeverityMedium && issue.Category == domain.CategoryStandards {
			assert.Contains(t, issue.Message, "AS/NZS 3000:2018")
			found = true
		}
	}
	assert.True(t, found, "missing AS/NZS 3000 should produce a standards issue")
	assert.Equal(t, 95, result.StandardsCompliance)
}

func TestAnalyze_EqualScoresFlagUnreducedRisk(t *testing.T) {
	// Both scores are individually matrix-valid; the monotonicity check is
	// independent and must still fire.
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Likelihood = 4
	a.Consequence = 4
	a.InitialRiskScore = 16
	a.ResidualLikelihood = 4
	a.ResidualConsequence = 4
	a.ResidualRiskScore = 16

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityCritical, domain.CategoryRiskCalculation))
	assert.False(t, result.IsCompliant)
}

func TestAnalyze_CriticalIssueBlocksComplianceDespiteHighScore(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Likelihood = 4
	a.Consequence = 4
	a.InitialRiskScore = 16
	a.ResidualLikelihood = 4
	a.ResidualConsequence = 4
	a.ResidualRiskScore = 16

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	// Only the reduction penalty applies: overall is round((85+100+100)/3).
	assert.Equal(t, 95, result.OverallScore)
	assert.GreaterOrEqual(t, result.OverallScore, 85)
	assert.False(t, result.IsCompliant, "critical issue must block compliance regardless of score")
}

func TestAnalyze_HighRiskWithoutWHSCitation(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Likelihood = 5
	a.Consequence = 3
	a.InitialRiskScore = risk.ExpectedScore(5, 3)
	a.ResidualLikelihood = 2
	a.ResidualConsequence = 2
	a.ResidualRiskScore = risk.ExpectedScore(2, 2)
	a.Legislation = []string{"AS/NZS 4801:2001"}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityCritical, domain.CategoryLegislation))
	assert.Equal(t, 80, result.LegislationCompliance)
}

func TestAnalyze_LowRiskDoesNotRequireWHSCitation(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Likelihood = 2
	a.Consequence = 2
	a.InitialRiskScore = risk.ExpectedScore(2, 2)
	a.ResidualLikelihood = 1
	a.ResidualConsequence = 1
	a.ResidualRiskScore = risk.ExpectedScore(1, 1)
	a.Legislation = []string{"AS/NZS 4801:2001"}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	assert.Zero(t, countIssues(result.Issues, domain.SeverityCritical, domain.CategoryLegislation))
}

func TestAnalyze_HazardCategoryRequirements(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Activity = "Electrical rough-in through ceiling cavity"
	a.Likelihood = 2
	a.Consequence = 2
	a.InitialRiskScore = risk.ExpectedScore(2, 2)
	a.ResidualLikelihood = 1
	a.ResidualConsequence = 1
	a.ResidualRiskScore = risk.ExpectedScore(1, 1)
	a.ControlMeasures = []string{"Wear gloves"}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	// The electrical hazard category carries three mandatory requirements.
	assert.Equal(t, 3, countIssues(result.Issues, domain.SeverityHigh, domain.CategoryLegislation))
	assert.Equal(t, 70, result.LegislationCompliance)
}

func TestAnalyze_HazardRequirementMatchIsLoose(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Activity = "Electrical rough-in through ceiling cavity"
	a.Likelihood = 2
	a.Consequence = 2
	a.InitialRiskScore = risk.ExpectedScore(2, 2)
	a.ResidualLikelihood = 1
	a.ResidualConsequence = 1
	a.ResidualRiskScore = risk.ExpectedScore(1, 1)
	// Different wording, but each control contains the first ten characters
	// of a required phrase.
	a.ControlMeasures = []string{
		"ISOLATION AND TAGGING of all circuits in the work area",
		"Electrician to test for dead prior to starting",
		"Residual current devices fitted to all leads",
	}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	assert.Zero(t, countIssues(result.Issues, domain.SeverityHigh, domain.CategoryLegislation))
}

func TestAnalyze_ScoresNeverGoNegative(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	var assessments []domain.RiskAssessment
	for i := 0; i < 15; i++ {
		assessments = append(assessments, domain.RiskAssessment{
			ID:                fmt.Sprintf("a%d", i),
			Activity:          "Electrical work at height in confined space excavation",
			Likelihood:        5,
			Consequence:       5,
			InitialRiskScore:  99,
			ResidualRiskScore: 99,
		})
	}

	result := analyzer.Analyze(assessments, "electrical")

	assert.GreaterOrEqual(t, result.RiskScoreAccuracy, 0)
	assert.GreaterOrEqual(t, result.StandardsCompliance, 0)
	assert.GreaterOrEqual(t, result.LegislationCompliance, 0)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.False(t, result.IsCompliant)
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.ResidualRiskScore = a.InitialRiskScore
	assessments := []domain.RiskAssessment{a, validAssessment("a2")}

	first := analyzer.Analyze(assessments, "electrical")
	second := analyzer.Analyze(assessments, "electrical")

	require.Equal(t, first, second)
}

func TestAnalyze_IssuesSortedBySeverity(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Likelihood = 4
	a.Consequence = 4
	a.InitialRiskScore = 16
	a.ResidualLikelihood = 2
	a.ResidualConsequence = 2
	a.ResidualRiskScore = 20
	a.ControlMeasures = []string{"Bracing"}
	a.Legislation = nil

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	require.NotEmpty(t, result.Issues)
	for i := 1; i < len(result.Issues); i++ {
		assert.LessOrEqual(t, result.Issues[i-1].Type.Rank(), result.Issues[i].Type.Rank(),
			"issues must be ordered critical first")
	}
}

func TestAnalyze_DefaultsAbsentFactorsToOne(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := domain.RiskAssessment{
		ID:                "a1",
		Activity:          "Sweep the site office",
		InitialRiskScore:  1,
		ResidualRiskScore: 0,
		ControlMeasures:   []string{"Keep walkways clear"},
		Legislation:       generalCitations,
	}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	// Factors default to (1,1): expected score 1, so the initial score is
	// valid and only the residual mismatch (0 != 1) fires.
	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityHigh, domain.CategoryRiskCalculation))
	assert.Equal(t, 90, result.RiskScoreAccuracy)
}

func TestAnalyze_DoesNotTrustStoredRiskLevel(t *testing.T) {
	analyzer := NewDefaultAnalyzer()

	a := validAssessment("a1")
	a.Likelihood = 5
	a.Consequence = 5
	a.InitialRiskScore = risk.ExpectedScore(5, 5)
	a.ResidualLikelihood = 2
	a.ResidualConsequence = 2
	a.ResidualRiskScore = risk.ExpectedScore(2, 2)
	a.RiskLevel = "Low" // lies
	a.Legislation = []string{"AS/NZS 4801:2001"}

	result := analyzer.Analyze([]domain.RiskAssessment{a}, "general")

	assert.Equal(t, 1, countIssues(result.Issues, domain.SeverityCritical, domain.CategoryLegislation),
		"level must be re-derived from the score, not read from the record")
}

func TestAnalyze_CustomPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.MissingStandardPenalty = 25
	analyzer := NewAnalyzer(policy, risk.DefaultClassifierTable())

	result := analyzer.Analyze(nil, "demolition")

	// Demolition requires five citations; 5 * 25 drives standards to zero.
	assert.Equal(t, 0, result.StandardsCompliance)
}
