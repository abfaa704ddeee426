package api

import "time"

type RiskAssessment struct {
	ID                  string   `json:"id,omitempty"`
	Activity            string   `json:"activity" validate:"required"`
	Hazards             []string `json:"hazards"`
	Likelihood          int      `json:"likelihood"`
	Consequence         int      `json:"consequence"`
	InitialRiskScore    int      `json:"initialRiskScore"`
	ControlMeasures     []string `json:"controlMeasures"`
	ResidualLikelihood  int      `json:"residualLikelihood,omitempty"`
	ResidualConsequence int      `json:"residualConsequence,omitempty"`
	ResidualRiskScore   int      `json:"residualRiskScore"`
	RiskLevel           string   `json:"riskLevel,omitempty"`
	Legislation         []string `json:"legislation"`
}

type SWMSDocument struct {
	ID                  string           `json:"id"`
	Title               string           `json:"title"`
	TradeType           string           `json:"tradeType"`
	PrincipalContractor string           `json:"principalContractor,omitempty"`
	SiteAddress         string           `json:"siteAddress,omitempty"`
	Assessments         []RiskAssessment `json:"assessments"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

type CreateDocumentRequest struct {
	Title               string           `json:"title" validate:"required"`
	TradeType           string           `json:"tradeType" validate:"required"`
	PrincipalContractor string           `json:"principalContractor"`
	SiteAddress         string           `json:"siteAddress"`
	Assessments         []RiskAssessment `json:"assessments" validate:"dive"`
}

type AnalyzeRequest struct {
	TradeType   string           `json:"tradeType" validate:"required"`
	Assessments []RiskAssessment `json:"assessments" validate:"dive"`
}

type TaskTemplate struct {
	ID                  string   `json:"id"`
	Trade               string   `json:"trade"`
	Name                string   `json:"name"`
	Activity            string   `json:"activity"`
	Hazards             []string `json:"hazards"`
	Likelihood          int      `json:"likelihood"`
	Consequence         int      `json:"consequence"`
	ControlMeasures     []string `json:"controlMeasures"`
	ResidualLikelihood  int      `json:"residualLikelihood"`
	ResidualConsequence int      `json:"residualConsequence"`
	Legislation         []string `json:"legislation"`
}

type TradeRequirements struct {
	Trade            string   `json:"trade"`
	PrimaryStandards []string `json:"primaryStandards"`
	WHSActs          []string `json:"whsActs"`
	CodesOfPractice  []string `json:"codesOfPractice"`
}
