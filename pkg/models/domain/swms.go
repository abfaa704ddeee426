package domain

import "time"

// RiskAssessment is one hazard/activity line of a SWMS document. Scores are
// caller-reported and may disagree with the risk matrix; the compliance
// analyzer validates them rather than trusting them.
type RiskAssessment struct {
	ID                  string
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

// Normalize applies the documented defaulting rules once, before analysis:
// zero likelihood/consequence default to 1, residual factors fall back to the
// initial factors. The receiver is not mutated.
func (a RiskAssessment) Normalize() RiskAssessment {
	if a.Likelihood == 0 {
		a.Likelihood = 1
	}
	if a.Consequence == 0 {
		a.Consequence = 1
	}
	if a.ResidualLikelihood == 0 {
		a.ResidualLikelihood = a.Likelihood
	}
	if a.ResidualConsequence == 0 {
		a.ResidualConsequence = a.Consequence
	}
	return a
}

// SWMSDocument is a Safe Work Method Statement under authoring.
type SWMSDocument struct {
	ID                  string
	Title               string
	TradeType           string
	PrincipalContractor string
	SiteAddress         string
	Assessments         []RiskAssessment
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TaskTemplate is a pre-built construction task that seeds a RiskAssessment
// with hazards, controls and legislation for a given trade.
type TaskTemplate struct {
	ID                  string
	Trade               string
	Name                string
	Activity            string
	Hazards             []string
	Likelihood          int
	Consequence         int
	ControlMeasures     []string
	ResidualLikelihood  int
	ResidualConsequence int
	Legislation         []string
}
