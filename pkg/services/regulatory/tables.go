// Package regulatory holds the static reference tables the compliance
// analyzer cross-references: trade-specific standards and hazard-category
// control requirements for Australian construction work.
package regulatory

import "strings"

// TradeRequirements lists the standards, WHS instruments and codes of
// practice a trade's SWMS is expected to cite.
type TradeRequirements struct {
	Trade            string
	PrimaryStandards []string
	WHSActs          []string
	CodesOfPractice  []string
}

// RequiredStandards flattens all citation groups into the single list the
// coverage check iterates.
func (r TradeRequirements) RequiredStandards() []string {
	out := make([]string, 0, len(r.PrimaryStandards)+len(r.WHSActs)+len(r.CodesOfPractice))
	out = append(out, r.PrimaryStandards...)
	out = append(out, r.WHSActs...)
	out = append(out, r.CodesOfPractice...)
	return out
}

// HazardRequirement pairs a hazard category keyword with the control-measure
// phrases an activity in that category must document.
type HazardRequirement struct {
	Category     string
	Requirements []string
}

var tradeTable = map[string]TradeRequirements{
	"electrical": {
		Trade:            "electrical",
		PrimaryStandards: []string{"AS/NZS 3000:2018", "AS/NZS 3012:2019", "AS/NZS 3760:2022"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017 Part 4.7"},
		CodesOfPractice:  []string{"Managing electrical risks in the workplace: Code of Practice"},
	},
	"plumbing": {
		Trade:            "plumbing",
		PrimaryStandards: []string{"AS/NZS 3500:2021", "AS 2885.1:2018"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017"},
		CodesOfPractice:  []string{"Excavation work: Code of Practice"},
	},
	"carpentry": {
		Trade:            "carpentry",
		PrimaryStandards: []string{"AS 1684.2:2021", "AS 1577:2018"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017"},
		CodesOfPractice:  []string{"Managing the risk of falls at workplaces: Code of Practice"},
	},
	"scaffolding": {
		Trade:            "scaffolding",
		PrimaryStandards: []string{"AS/NZS 1576.1:2019", "AS/NZS 4576:2020"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017 Part 4.4"},
		CodesOfPractice:  []string{"Scaffolds and scaffolding work: Code of Practice"},
	},
	"demolition": {
		Trade:            "demolition",
		PrimaryStandards: []string{"AS 2601:2001"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017 Part 6.2"},
		CodesOfPractice:  []string{"Demolition work: Code of Practice", "How to manage and control asbestos in the workplace: Code of Practice"},
	},
	"excavation": {
		Trade:            "excavation",
		PrimaryStandards: []string{"AS 2187.2:2006", "AS 3798:2007"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017 Part 6.3"},
		CodesOfPractice:  []string{"Excavation work: Code of Practice"},
	},
	"roofing": {
		Trade:            "roofing",
		PrimaryStandards: []string{"AS 1562.1:2018", "AS/NZS 1891.1:2020"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017 Part 4.4"},
		CodesOfPractice:  []string{"Managing the risk of falls at workplaces: Code of Practice"},
	},
	"concreting": {
		Trade:            "concreting",
		PrimaryStandards: []string{"AS 3600:2018", "AS 3610:2018"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017"},
		CodesOfPractice:  []string{"Formwork: Code of Practice", "Managing respirable crystalline silica dust exposure: Code of Practice"},
	},
	"painting": {
		Trade:            "painting",
		PrimaryStandards: []string{"AS/NZS 4361.2:2017"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017 Part 7.1"},
		CodesOfPractice:  []string{"Managing risks of hazardous chemicals in the workplace: Code of Practice"},
	},
	"general": {
		Trade:            "general",
		PrimaryStandards: []string{"AS/NZS 4801:2001"},
		WHSActs:          []string{"WHS Act 2011", "WHS Regulation 2017"},
		CodesOfPractice:  []string{"Construction work: Code of Practice"},
	},
}

// hazardTable is ordered so analysis output is deterministic across runs.
var hazardTable = []HazardRequirement{
	{Category: "electrical", Requirements: []string{
		"isolation and lock-out of energised circuits before work begins",
		"test for dead before touching any conductor",
		"residual current device protection on all portable equipment",
	}},
	{Category: "height", Requirements: []string{
		"edge protection or guard rails at all open edges",
		"harness and fall arrest system anchored to a rated point",
	}},
	{Category: "excavation", Requirements: []string{
		"shoring, benching or battering of trench walls",
		"underground services located before breaking ground",
	}},
	{Category: "asbestos", Requirements: []string{
		"licensed asbestos removalist engaged for removal work",
		"air monitoring during and after removal",
	}},
	{Category: "confined space", Requirements: []string{
		"entry permit issued and standby person in place",
		"atmospheric testing before and during entry",
	}},
	{Category: "manual handling", Requirements: []string{
		"mechanical aids used for loads over 20kg",
		"team lifts arranged for awkward or heavy items",
	}},
	{Category: "demolition", Requirements: []string{
		"exclusion zone established around the work area",
		"structural engineer assessment of load-bearing elements",
	}},
	{Category: "silica", Requirements: []string{
		"wet cutting or on-tool dust extraction in use",
		"respiratory protection fitted and fit-tested",
	}},
}

// ForTrade returns the requirements for a trade. Unknown trades fall back to
// the general construction profile.
func ForTrade(trade string) TradeRequirements {
	if r, ok := tradeTable[strings.ToLower(strings.TrimSpace(trade))]; ok {
		return r
	}
	return tradeTable["general"]
}

// Trades lists the known trade profiles in a stable order.
func Trades() []string {
	return []string{
		"carpentry", "concreting", "demolition", "electrical", "excavation",
		"general", "painting", "plumbing", "roofing", "scaffolding",
	}
}

// HazardRequirements returns the ordered category requirement table.
func HazardRequirements() []HazardRequirement {
	return hazardTable
}

// CitationPrefix extracts the identifying part of a standard citation: the
// text before the first colon, e.g. "AS/NZS 3000" from "AS/NZS 3000:2018".
func CitationPrefix(citation string) string {
	if i := strings.Index(citation, ":"); i >= 0 {
		return strings.TrimSpace(citation[:i])
	}
	return strings.TrimSpace(citation)
}
