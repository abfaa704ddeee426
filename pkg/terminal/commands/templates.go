package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/safework-tools/swms-atlas/pkg/services/regulatory"
	"github.com/safework-tools/swms-atlas/pkg/services/templates"
	"github.com/spf13/cobra"
)

// NewTemplatesCmd builds the `templates` command listing the task library
// for a trade.
func NewTemplatesCmd(out io.Writer) *cobra.Command {
	var trade string
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List task templates for a trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			found := templates.ForTrade(trade)
			if len(found) == 0 {
				return fmt.Errorf("no templates for trade %q; known trades: %s",
					trade, strings.Join(regulatory.Trades(), ", "))
			}
			for _, t := range found {
				fmt.Fprintf(out, "%s  %s\n", t.ID, t.Name)
				fmt.Fprintf(out, "    activity: %s\n", t.Activity)
				fmt.Fprintf(out, "    hazards:  %s\n", strings.Join(t.Hazards, "; "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&trade, "trade", "", "Trade to list templates for")
	_ = cmd.MarkFlagRequired("trade")
	return cmd
}

// NewRequirementsCmd builds the `requirements` command printing the
// regulatory references a trade's SWMS must cite.
func NewRequirementsCmd(out io.Writer) *cobra.Command {
	var trade string
	cmd := &cobra.Command{
		Use:   "requirements",
		Short: "Show the standards and WHS references required for a trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs := regulatory.ForTrade(trade)
			fmt.Fprintf(out, "Requirements for %s work:\n", reqs.Trade)
			printGroup(out, "Primary standards", reqs.PrimaryStandards)
			printGroup(out, "WHS instruments", reqs.WHSActs)
			printGroup(out, "Codes of practice", reqs.CodesOfPractice)
			return nil
		},
	}

	cmd.Flags().StringVar(&trade, "trade", "", "Trade to show requirements for")
	_ = cmd.MarkFlagRequired("trade")
	return cmd
}

func printGroup(out io.Writer, title string, items []string) {
	fmt.Fprintf(out, "  %s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "    - %s\n", item)
	}
}
