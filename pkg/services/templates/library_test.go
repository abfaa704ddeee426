package templates

import (
	"testing"

	"github.com/safework-tools/swms-atlas/pkg/services/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrary_TemplatesAreInternallyConsistent(t *testing.T) {
	classifier := risk.DefaultClassifierTable()

	for _, tpl := range All() {
		t.Run(tpl.ID, func(t *testing.T) {
			assert.NotEmpty(t, tpl.Trade)
			assert.NotEmpty(t, tpl.Activity)
			assert.NotEmpty(t, tpl.Hazards)
			assert.NotEmpty(t, tpl.Legislation)

			a := Assessment(tpl, classifier)

			assert.Equal(t, risk.ExpectedScore(tpl.Likelihood, tpl.Consequence), a.InitialRiskScore)
			assert.Less(t, a.ResidualRiskScore, a.InitialRiskScore,
				"template residual risk must be lower than initial risk")

			if a.InitialRiskScore >= 15 {
				assert.GreaterOrEqual(t, len(a.ControlMeasures), 3,
					"high-risk templates need at least three control measures")
			}
		})
	}
}

func TestForTrade(t *testing.T) {
	electrical := ForTrade("electrical")
	require.NotEmpty(t, electrical)
	for _, tpl := range electrical {
		assert.Equal(t, "electrical", tpl.Trade)
	}

	assert.Empty(t, ForTrade("unknown-trade"))
	assert.Equal(t, electrical, ForTrade("  Electrical "))
}

func TestGet(t *testing.T) {
	tpl, ok := Get("elec-switchboard")
	require.True(t, ok)
	assert.Equal(t, "electrical", tpl.Trade)

	_, ok = Get("missing")
	assert.False(t, ok)
}

func TestAssessment_CopiesSlices(t *testing.T) {
	tpl, ok := Get("elec-switchboard")
	require.True(t, ok)

	a := Assessment(tpl, risk.DefaultClassifierTable())
	a.Hazards[0] = "mutated"

	fresh, _ := Get("elec-switchboard")
	assert.NotEqual(t, "mutated", fresh.Hazards[0])
}

func TestAssessment_DerivesLevelFromClassifier(t *testing.T) {
	tpl, ok := Get("roof-sheeting")
	require.True(t, ok)

	a := Assessment(tpl, risk.DefaultClassifierTable())
	// (4,5) scores 21 which classifies as Extreme.
	assert.Equal(t, 21, a.InitialRiskScore)
	assert.Equal(t, string(risk.LevelExtreme), a.RiskLevel)
}
