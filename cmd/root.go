package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termcheck",
		Short: "Translation glossary adherence checker",
		Long: `Termcheck verifies how consistently a translation glossary is applied
across a pair of documents.

Given a glossary of source terms and their approved translations, it counts
whole-word occurrences of each term in the source and target documents and
derives adherence KPIs (utilization rate, coverage rate, count discrepancy,
totals). An optional benchmark translation can be checked against the same
glossary for comparison.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
