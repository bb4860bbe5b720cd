package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"phishscreen/internal/config"
	"phishscreen/internal/ledger"
	"phishscreen/internal/model"
	"phishscreen/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <url>",
		Short: "Report a URL as phishing",
		Long: `Report records a URL in the local abuse ledger. Future scans of
the exact same URL string will flag it as reported. The URL is stored
as given; no normalization is applied.

The command shows the verdict for the URL as it stands after the
report: unsafe, high risk, with the report noted among the reasons.

Examples:
  phishscreen report http://phishing.example/login`,
		Args: cobra.ExactArgs(1),
		RunE: runReportCmd,
	}

	addCommonFlags(cmd)

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	target := args[0]

	// Reporting requires the ledger; unlike scanning there is nothing
	// useful to do without it.
	ldgr, err := ledger.Open(cfg.EffectiveDataDir(), ledger.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open report ledger: %w", err)
	}
	defer ldgr.Close()

	screener := newScreener(cfg, ldgr, logger)

	// Scan before recording so the verdict reflects the URL as the
	// reporter saw it, then overlay the report outcome.
	verdict := screener.ScanURL(ctx, target)

	if err := ldgr.Report(ctx, target); err != nil {
		return fmt.Errorf("failed to record report: %w", err)
	}
	logger.Info("URL reported", "url", target)

	verdict.MarkReported()

	result := report.Result{
		Type:      model.ScanTypeURL,
		Target:    target,
		Verdict:   verdict,
		ScannedAt: time.Now(),
	}

	writer, cleanup, err := newResultWriter(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := writer.Write(&result); err != nil {
		return fmt.Errorf("failed to write verdict: %w", err)
	}

	return nil
}

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans and reported URLs",
		Long: `History lists recent scan results, newest first. With --reports it
instead lists every URL in the local abuse ledger with its report
count.

Examples:
  # Last 20 scans
  phishscreen history

  # Last 5 scans
  phishscreen history --limit 5

  # All reported URLs
  phishscreen history --reports`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .phishscreen in current or home directory)")
	cmd.Flags().String("data-dir", "",
		"Directory for the report ledger database (default: XDG data dir)")
	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of history entries to show (0 for all)")
	cmd.Flags().Bool("reports", false,
		"List reported URLs instead of scan history")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()

	var err error
	cfg.DataDir, err = cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	ldgr, err := ledger.Open(cfg.EffectiveDataDir(), ledger.Options{CreateIfNotExists: false})
	if err != nil {
		return fmt.Errorf("failed to open report ledger: %w", err)
	}
	defer ldgr.Close()

	showReports, err := cmd.Flags().GetBool("reports")
	if err != nil {
		return err
	}
	if showReports {
		return listReports(ctx, cmd, ldgr)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	entries, err := ldgr.ListHistory(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list scan history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scans recorded yet.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-5s  %-24s  %s\n",
			e.Date.Format("2006-01-02 15:04"), e.Type, e.Result, e.Target)
	}

	return nil
}

// listReports prints every URL in the abuse ledger.
func listReports(ctx context.Context, cmd *cobra.Command, ldgr *ledger.Ledger) error {
	records, err := ldgr.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reported URLs: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No URLs have been reported yet.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %3d report(s)  %s\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.ReportCount, r.URL)
	}

	return nil
}
