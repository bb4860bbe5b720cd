package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"phishscreen/internal/config"
	"phishscreen/internal/heuristic"
	"phishscreen/internal/ledger"
	phishlog "phishscreen/internal/log"
	"phishscreen/internal/model"
	"phishscreen/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [url...]",
		Short: "Scan one or more URLs for phishing indicators",
		Long: `Scan classifies URLs as safe or suspicious using local heuristics:

- Trusted-domain allowlist with subdomain normalization
- IP-literal hosts, suspicious terms, excessive subdomains
- Insecure schemes and URL obfuscation characters
- Typosquatting similarity against trusted domains
- The local ledger of user-submitted abuse reports

Examples:
  # Scan a single URL
  phishscreen scan https://example.com/login

  # Scan several URLs concurrently
  phishscreen scan https://a.example https://b.example

  # Scan URLs listed in a file (one per line, # comments allowed)
  phishscreen scan --list urls.txt

  # Output JSON
  phishscreen scan --json https://example.com

Configuration file (.phishscreen) example:
  trustedDomains:
    - intranet.corp.example
  suspiciousTerms:
    - invoice`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	addCommonFlags(cmd)
	cmd.Flags().StringP("list", "l", "",
		"File containing URLs to scan, one per line")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent scans")

	return cmd
}

// addCommonFlags registers the flags shared by the scan, email, and
// report commands.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .phishscreen in current or home directory)")
	cmd.Flags().String("data-dir", "",
		"Directory for the report ledger database (default: XDG data dir)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the rendered verdict to the specified file as well")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output")
	cmd.Flags().Bool("no-history", false,
		"Do not record this scan in the history list")
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	targets := args
	listPath, err := cmd.Flags().GetString("list")
	if err != nil {
		return err
	}
	if listPath != "" {
		fromFile, err := readTargetList(listPath)
		if err != nil {
			return err
		}
		targets = append(targets, fromFile...)
	}
	if len(targets) == 0 {
		return config.ErrNoTarget
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	return runScan(ctx, cmd, cfg, targets, logger)
}

// runScan scans all targets concurrently and renders verdicts in input
// order.
func runScan(ctx context.Context, cmd *cobra.Command, cfg *config.Config, targets []string, logger *slog.Logger) error {
	ldgr := openLedger(cfg, logger)
	if ldgr != nil {
		defer ldgr.Close()
	}

	screener := newScreener(cfg, ldgr, logger)

	logger.Info("starting scan", "targets", len(targets), "batchSize", cfg.BatchSize)

	results := make([]report.Result, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.BatchSize)
	for i, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdict := screener.ScanURL(gctx, target)
			results[i] = report.Result{
				Type:      model.ScanTypeURL,
				Target:    target,
				Verdict:   verdict,
				ScannedAt: time.Now(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	writer, cleanup, err := newResultWriter(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	recordHistory, err := shouldRecordHistory(cmd)
	if err != nil {
		return err
	}

	for i := range results {
		if _, err := writer.Write(&results[i]); err != nil {
			return fmt.Errorf("failed to write verdict: %w", err)
		}

		if recordHistory && ldgr != nil {
			entry := model.NewURLHistoryEntry(results[i].Target, &results[i].Verdict, results[i].ScannedAt)
			if err := ldgr.AddHistory(ctx, entry); err != nil {
				logger.Warn("failed to record scan history", "target", results[i].Target, "error", err)
			}
		}
	}

	return nil
}

// readTargetList reads URLs from a file, one per line.
// Blank lines and lines starting with '#' are skipped.
func readTargetList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open target list: %w", err)
	}
	defer f.Close()

	var targets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || line[0] == '#' {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read target list: %w", err)
	}

	return targets, nil
}

// buildConfig creates a Config from the flags shared across commands.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.DataDir, err = cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.NoColor, err = cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user explicitly specified a config file, it must exist.
	// Otherwise a missing file just means no extensions.
	explicit := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicit {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger with credential redaction.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return phishlog.NewLogger(w, verbose)
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// openLedger opens the report ledger, failing open to nil when the
// database is unavailable. Scans proceed without prior-report data.
func openLedger(cfg *config.Config, logger *slog.Logger) *ledger.Ledger {
	l, err := ledger.Open(cfg.EffectiveDataDir(), ledger.DefaultOptions())
	if err != nil {
		logger.Warn("report ledger unavailable, scanning without prior reports", "error", err)
		return nil
	}
	return l
}

// newScreener builds the heuristic screener from configuration.
func newScreener(cfg *config.Config, ldgr *ledger.Ledger, logger *slog.Logger) *heuristic.Screener {
	opts := []heuristic.Option{
		heuristic.WithExtraHostTerms(cfg.ExtraSuspiciousTerms),
		heuristic.WithLogger(logger),
	}
	if ldgr != nil {
		opts = append(opts, heuristic.WithReportSource(ldgr))
	}
	return heuristic.NewScreener(cfg.TrustedDomains, opts...)
}

// newResultWriter builds the verdict writer for the configured format,
// optionally teeing into --output. The returned cleanup must be called
// after the last write.
func newResultWriter(cmd *cobra.Command, cfg *config.Config) (report.Writer, func(), error) {
	out := cmd.OutOrStdout()

	console := formatWriter(out, cfg, colorEnabled(out, cfg))
	cleanup := func() {}

	if cfg.OutputPath == "" {
		return console, cleanup, nil
	}

	f, err := os.Create(cfg.OutputPath) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	cleanup = func() { _ = f.Close() }

	// Files never get ANSI colors.
	return report.NewMultiWriter(console, formatWriter(f, cfg, false)), cleanup, nil
}

// formatWriter builds a writer for the selected output format.
func formatWriter(out io.Writer, cfg *config.Config, useColor bool) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out,
			report.WithColor(useColor),
			report.WithVerbose(cfg.Verbose),
		)
	}
}

// colorEnabled reports whether colored output should be used for out.
func colorEnabled(out io.Writer, cfg *config.Config) bool {
	if cfg.NoColor {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// shouldRecordHistory reads the --no-history flag.
func shouldRecordHistory(cmd *cobra.Command) (bool, error) {
	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return false, err
	}
	return !noHistory, nil
}
