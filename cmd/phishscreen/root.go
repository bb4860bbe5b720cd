package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for phishscreen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phishscreen",
		Short: "Heuristic phishing screener for URLs and email headers",
		Long: `Phishscreen classifies a URL or a block of raw email headers as safe or
suspicious, assigning a risk level and a list of human-readable reasons.

All checks run locally: a trusted-domain allowlist, structural and
lexical URL heuristics, a typosquatting detector, header-consistency
checks, and a persistent ledger of user-submitted abuse reports. No
network lookups are performed.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewEmailCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
