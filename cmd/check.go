package cmd

import (
	"github.com/lehigh-university-libraries/termcheck/internal/checkcmd"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Glossary adherence check tools",
		Long: `Tools for checking how consistently a glossary is applied in a translation.

Supports running checks over glossary and document files, rendering saved
results as text, JSON, or CSV reports, and inspecting glossary files.`,
	}

	// Add check subcommands
	cmd.AddCommand(checkcmd.NewRunCmd())
	cmd.AddCommand(checkcmd.NewReportCmd())
	cmd.AddCommand(checkcmd.NewInspectCmd())

	return cmd
}
