package swms

import (
	"github.com/safework-tools/swms-atlas/pkg/models/api"
	"github.com/safework-tools/swms-atlas/pkg/models/domain"
)

func assessmentFromAPI(a api.RiskAssessment) domain.RiskAssessment {
	return domain.RiskAssessment{
		ID:                  a.ID,
		Activity:            a.Activity,
		Hazards:             a.Hazards,
		Likelihood:          a.Likelihood,
		Consequence:         a.Consequence,
		InitialRiskScore:    a.InitialRiskScore,
		ControlMeasures:     a.ControlMeasures,
		ResidualLikelihood:  a.ResidualLikelihood,
		ResidualConsequence: a.ResidualConsequence,
		ResidualRiskScore:   a.ResidualRiskScore,
		RiskLevel:           a.RiskLevel,
		Legislation:         a.Legislation,
	}
}

func assessmentToAPI(a domain.RiskAssessment) api.RiskAssessment {
	return api.RiskAssessment{
		ID:                  a.ID,
		Activity:            a.Activity,
		Hazards:             a.Hazards,
		Likelihood:          a.Likelihood,
		Consequence:         a.Consequence,
		InitialRiskScore:    a.InitialRiskScore,
		ControlMeasures:     a.ControlMeasures,
		ResidualLikelihood:  a.ResidualLikelihood,
		ResidualConsequence: a.ResidualConsequence,
		ResidualRiskScore:   a.ResidualRiskScore,
		RiskLevel:           a.RiskLevel,
		Legislation:         a.Legislation,
	}
}

func documentToAPI(d domain.SWMSDocument) api.SWMSDocument {
	doc := api.SWMSDocument{
		ID:                  d.ID,
		Title:               d.Title,
		TradeType:           d.TradeType,
		PrincipalContractor: d.PrincipalContractor,
		SiteAddress:         d.SiteAddress,
		Assessments:         []api.RiskAssessment{},
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
	for _, a := range d.Assessments {
		doc.Assessments = append(doc.Assessments, assessmentToAPI(a))
	}
	return doc
}

func resultToAPI(r domain.ComplianceResult) api.ComplianceResult {
	result := api.ComplianceResult{
		IsCompliant:           r.IsCompliant,
		OverallScore:          r.OverallScore,
		RiskScoreAccuracy:     r.RiskScoreAccuracy,
		StandardsCompliance:   r.StandardsCompliance,
		LegislationCompliance: r.LegislationCompliance,
		Issues:                []api.Issue{},
		Recommendations:       r.Recommendations,
	}
	for _, issue := range r.Issues {
		result.Issues = append(result.Issues, api.Issue{
			Type:       string(issue.Type),
			Category:   string(issue.Category),
			Message:    issue.Message,
			RiskID:     issue.RiskID,
			Resolution: issue.Resolution,
		})
	}
	return result
}

func templateToAPI(t domain.TaskTemplate) api.TaskTemplate {
	return api.TaskTemplate{
		ID:                  t.ID,
		Trade:               t.Trade,
		Name:                t.Name,
		Activity:            t.Activity,
		Hazards:             t.Hazards,
		Likelihood:          t.Likelihood,
		Consequence:         t.Consequence,
		ControlMeasures:     t.ControlMeasures,
		ResidualLikelihood:  t.ResidualLikelihood,
		ResidualConsequence: t.ResidualConsequence,
		Legislation:         t.Legislation,
	}
}
