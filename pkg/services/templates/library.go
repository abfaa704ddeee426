// Package templates is the static construction-task library. Selecting a
// template pre-fills a risk assessment with hazards, control measures and
// legislation for the task. The production seed corpus is much larger; this
// library keeps a representative set behind the same lookup contract.
package templates

import (
	"strings"

	"github.com/safework-tools/swms-atlas/pkg/models/domain"
	"github.com/safework-tools/swms-atlas/pkg/services/risk"
)

var library = []domain.TaskTemplate{
	{
		ID: "elec-switchboard", Trade: "electrical",
		Name:     "Switchboard installation",
		Activity: "Install and terminate electrical wiring at the main switchboard",
		Hazards:  []string{"Electric shock from energised conductors", "Arc flash", "Manual handling of switchboard panels"},
		Likelihood: 3, Consequence: 5,
		ControlMeasures: []string{
			"Isolation and lock-out of energised circuits before work begins",
			"Test for dead before touching any conductor",
			"Residual current device protection on all portable equipment",
			"Insulated tools and voltage-rated gloves worn",
		},
		ResidualLikelihood: 2, ResidualConsequence: 3,
		Legislation: []string{"AS/NZS 3000:2018", "AS/NZS 3012:2019", "AS/NZS 3760:2022", "WHS Act 2011", "WHS Regulation 2017 Part 4.7", "Managing electrical risks in the workplace: Code of Practice"},
	},
	{
		ID: "elec-rough-in", Trade: "electrical",
		Name:     "Cable rough-in",
		Activity: "Rough-in of electrical cabling through wall and ceiling cavities",
		Hazards:  []string{"Electric shock from existing services", "Falls from ladders", "Cuts from sharp edges"},
		Likelihood: 3, Consequence: 4,
		ControlMeasures: []string{
			"Isolation and lock-out of energised circuits before work begins",
			"Test for dead before touching any conductor",
			"Residual current device protection on all portable equipment",
			"Platform ladder used and maintained",
		},
		ResidualLikelihood: 2, ResidualConsequence: 2,
		Legislation: []string{"AS/NZS 3000:2018", "AS/NZS 3012:2019", "AS/NZS 3760:2022", "WHS Act 2011", "WHS Regulation 2017 Part 4.7", "Managing electrical risks in the workplace: Code of Practice"},
	},
	{
		ID: "roof-sheeting", Trade: "roofing",
		Name:     "Roof sheeting at height",
		Activity: "Working at height installing metal roof sheeting",
		Hazards:  []string{"Fall from roof edge", "Falling objects", "UV exposure"},
		Likelihood: 4, Consequence: 5,
		ControlMeasures: []string{
			"Edge protection or guard rails at all open edges",
			"Harness and fall arrest system anchored to a rated point",
			"Exclusion zone below the work area",
			"Materials secured against wind",
		},
		ResidualLikelihood: 2, ResidualConsequence: 4,
		Legislation: []string{"AS 1562.1:2018", "AS/NZS 1891.1:2020", "WHS Act 2011", "WHS Regulation 2017 Part 4.4", "Managing the risk of falls at workplaces: Code of Practice"},
	},
	{
		ID: "trench-footings", Trade: "excavation",
		Name:     "Trench excavation",
		Activity: "Trench excavation for strip footings deeper than 1.5m",
		Hazards:  []string{"Trench collapse", "Contact with underground services", "Plant striking workers"},
		Likelihood: 4, Consequence: 5,
		ControlMeasures: []string{
			"Shoring, benching or battering of trench walls",
			"Underground services located before breaking ground",
			"Spoil piles kept clear of the trench edge",
			"Ladder access every 9m of open trench",
		},
		ResidualLikelihood: 2, ResidualConsequence: 4,
		Legislation: []string{"AS 2187.2:2006", "AS 3798:2007", "WHS Act 2011", "WHS Regulation 2017 Part 6.3", "Excavation work: Code of Practice"},
	},
	{
		ID: "carp-wall-frames", Trade: "carpentry",
		Name:     "Timber wall frames",
		Activity: "Erect and brace timber wall frames",
		Hazards:  []string{"Frames toppling during standing", "Nail gun injuries", "Manual handling strain"},
		Likelihood: 3, Consequence: 3,
		ControlMeasures: []string{
			"Temporary bracing fixed before releasing frames",
			"Nail gun used with sequential trigger",
			"Two-person lifts for full-height frames",
		},
		ResidualLikelihood: 2, ResidualConsequence: 2,
		Legislation: []string{"AS 1684.2:2021", "AS 1577:2018", "WHS Act 2011", "WHS Regulation 2017", "Managing the risk of falls at workplaces: Code of Practice"},
	},
	{
		ID: "demo-internal", Trade: "demolition",
		Name:     "Internal strip-out",
		Activity: "Demolition of internal non-load-bearing walls and ceilings",
		Hazards:  []string{"Structural collapse", "Hidden asbestos materials", "Dust and debris"},
		Likelihood: 4, Consequence: 4,
		ControlMeasures: []string{
			"Exclusion zone established around the work area",
			"Structural engineer assessment of load-bearing elements",
			"Hazardous materials survey before work starts",
			"Dust suppression by water mist",
		},
		ResidualLikelihood: 2, ResidualConsequence: 3,
		Legislation: []string{"AS 2601:2001", "WHS Act 2011", "WHS Regulation 2017 Part 6.2", "Demolition work: Code of Practice", "How to manage and control asbestos in the workplace: Code of Practice"},
	},
	{
		ID: "scaf-erect", Trade: "scaffolding",
		Name:     "Modular scaffold erection",
		Activity: "Erect modular scaffold to second storey working height",
		Hazards:  []string{"Falls during erection", "Dropped components", "Scaffold instability"},
		Likelihood: 4, Consequence: 4,
		ControlMeasures: []string{
			"Edge protection or guard rails at all open edges",
			"Harness and fall arrest system anchored to a rated point",
			"Components passed hand to hand, never thrown",
			"Scafftag updated at each handover",
		},
		ResidualLikelihood: 2, ResidualConsequence: 3,
		Legislation: []string{"AS/NZS 1576.1:2019", "AS/NZS 4576:2020", "WHS Act 2011", "WHS Regulation 2017 Part 4.4", "Scaffolds and scaffolding work: Code of Practice"},
	},
	{
		ID: "conc-cutting", Trade: "concreting",
		Name:     "Concrete cutting",
		Activity: "Concrete cutting and coring with silica dust controls",
		Hazards:  []string{"Respirable crystalline silica", "Noise", "Blade kickback"},
		Likelihood: 4, Consequence: 4,
		ControlMeasures: []string{
			"Wet cutting or on-tool dust extraction in use",
			"Respiratory protection fitted and fit-tested",
			"Hearing protection worn inside the cutting zone",
		},
		ResidualLikelihood: 2, ResidualConsequence: 3,
		Legislation: []string{"AS 3600:2018", "AS 3610:2018", "WHS Act 2011", "WHS Regulation 2017", "Formwork: Code of Practice", "Managing respirable crystalline silica dust exposure: Code of Practice"},
	},
	{
		ID: "plumb-drainage", Trade: "plumbing",
		Name:     "Below-ground drainage",
		Activity: "Install below-ground drainage in open excavation",
		Hazards:  []string{"Trench collapse", "Contact with live services", "Contaminated ground"},
		Likelihood: 3, Consequence: 4,
		ControlMeasures: []string{
			"Shoring, benching or battering of trench walls",
			"Underground services located before breaking ground",
			"Hygiene facilities and decontamination on site",
		},
		ResidualLikelihood: 2, ResidualConsequence: 2,
		Legislation: []string{"AS/NZS 3500:2021", "AS 2885.1:2018", "WHS Act 2011", "WHS Regulation 2017", "Excavation work: Code of Practice"},
	},
	{
		ID: "paint-spray", Trade: "painting",
		Name:     "Interior spray painting",
		Activity: "Spray painting interior surfaces in enclosed rooms",
		Hazards:  []string{"Solvent vapour inhalation", "Fire from flammable vapours", "Eye contact with overspray"},
		Likelihood: 3, Consequence: 3,
		ControlMeasures: []string{
			"Mechanical ventilation running for the duration of spraying",
			"Respiratory protection fitted and fit-tested",
			"Ignition sources removed from the spray area",
		},
		ResidualLikelihood: 2, ResidualConsequence: 2,
		Legislation: []string{"AS/NZS 4361.2:2017", "WHS Act 2011", "WHS Regulation 2017 Part 7.1", "Managing risks of hazardous chemicals in the workplace: Code of Practice"},
	},
	{
		ID: "gen-site-setup", Trade: "general",
		Name:     "Site establishment",
		Activity: "Site establishment including fencing, signage and amenities",
		Hazards:  []string{"Manual handling of fencing panels", "Vehicle movement", "Public interface"},
		Likelihood: 2, Consequence: 3,
		ControlMeasures: []string{
			"Mechanical aids used for loads over 20kg",
			"Traffic management plan in place for deliveries",
			"Perimeter fencing completed before other works start",
		},
		ResidualLikelihood: 1, ResidualConsequence: 2,
		Legislation: []string{"AS/NZS 4801:2001", "WHS Act 2011", "WHS Regulation 2017", "Construction work: Code of Practice"},
	},
	{
		ID: "gen-confined-pit", Trade: "general",
		Name:     "Confined space pit entry",
		Activity: "Confined space entry for services pit inspection",
		Hazards:  []string{"Oxygen-deficient atmosphere", "Toxic gases", "Engulfment"},
		Likelihood: 3, Consequence: 5,
		ControlMeasures: []string{
			"Entry permit issued and standby person in place",
			"Atmospheric testing before and during entry",
			"Rescue equipment staged at the entry point",
		},
		ResidualLikelihood: 2, ResidualConsequence: 3,
		Legislation: []string{"AS/NZS 4801:2001", "AS 2865:2009", "WHS Act 2011", "WHS Regulation 2017", "Construction work: Code of Practice", "Confined spaces: Code of Practice"},
	},
}

var byID = func() map[string]domain.TaskTemplate {
	m := make(map[string]domain.TaskTemplate, len(library))
	for _, t := range library {
		m[t.ID] = t
	}
	return m
}()

// All returns every template in library order.
func All() []domain.TaskTemplate {
	out := make([]domain.TaskTemplate, len(library))
	copy(out, library)
	return out
}

// ForTrade returns the templates for a trade, in library order.
func ForTrade(trade string) []domain.TaskTemplate {
	trade = strings.ToLower(strings.TrimSpace(trade))
	var out []domain.TaskTemplate
	for _, t := range library {
		if t.Trade == trade {
			out = append(out, t)
		}
	}
	return out
}

// Get looks a template up by id.
func Get(id string) (domain.TaskTemplate, bool) {
	t, ok := byID[id]
	return t, ok
}

// Assessment materializes a template into a risk assessment with scores and
// level derived from the matrix, so a freshly seeded line starts out valid.
func Assessment(t domain.TaskTemplate, classifier risk.ClassifierTable) domain.RiskAssessment {
	initial := risk.ExpectedScore(t.Likelihood, t.Consequence)
	residual := risk.ExpectedScore(t.ResidualLikelihood, t.ResidualConsequence)
	return domain.RiskAssessment{
		ID:                  t.ID,
		Activity:            t.Activity,
		Hazards:             append([]string(nil), t.Hazards...),
		Likelihood:          t.Likelihood,
		Consequence:         t.Consequence,
		InitialRiskScore:    initial,
		ControlMeasures:     append([]string(nil), t.ControlMeasures...),
		ResidualLikelihood:  t.ResidualLikelihood,
		ResidualConsequence: t.ResidualConsequence,
		ResidualRiskScore:   residual,
		RiskLevel:           string(classifier.Classify(initial)),
		Legislation:         append([]string(nil), t.Legislation...),
	}
}
