package main

import (
	"fmt"
	"os"

	"github.com/safework-tools/swms-atlas/pkg/terminal/commands"
	"github.com/safework-tools/swms-atlas/pkg/terminal/export"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "swms",
		Short: "SWMS Atlas compliance tooling",
	}

	reporter := export.NewReporter(os.Stdout)
	rootCmd.AddCommand(commands.NewAnalyzeCmd(reporter))
	rootCmd.AddCommand(commands.NewTemplatesCmd(os.Stdout))
	rootCmd.AddCommand(commands.NewRequirementsCmd(os.Stdout))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
