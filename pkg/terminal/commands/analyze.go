package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/safework-tools/swms-atlas/pkg/models/api"
	"github.com/safework-tools/swms-atlas/pkg/models/domain"
	"github.com/safework-tools/swms-atlas/pkg/services/compliance"
	"github.com/safework-tools/swms-atlas/pkg/services/config"
	"github.com/safework-tools/swms-atlas/pkg/terminal/export"
	"github.com/spf13/cobra"
)

type AnalyzeCmd struct {
	filePath string
	cfgPath  string
	reporter *export.Reporter
}

// NewAnalyzeCmd builds the `analyze` command: read a SWMS document from a
// JSON file, run the compliance engine and print the report.
func NewAnalyzeCmd(reporter *export.Reporter) *cobra.Command {
	ac := &AnalyzeCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a SWMS document for compliance",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.filePath, "file", "", "Path to the SWMS document JSON file")
	cmd.Flags().StringVar(&ac.cfgPath, "config", "", "Optional path to a service config file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(ac.filePath)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}

	var req api.AnalyzeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse document file: %w", err)
	}
	if req.TradeType == "" {
		return fmt.Errorf("document file must set tradeType")
	}

	cfg, err := config.Load(ac.cfgPath)
	if err != nil {
		return err
	}
	analyzer := compliance.NewAnalyzer(cfg.Policy, cfg.ClassifierTable())

	assessments := make([]domain.RiskAssessment, 0, len(req.Assessments))
	for _, a := range req.Assessments {
		assessments = append(assessments, domain.RiskAssessment{
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
		})
	}

	result := analyzer.Analyze(assessments, req.TradeType)
	return ac.reporter.Handle(req.TradeType, result)
}
