package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"phishscreen/internal/model"
	"phishscreen/internal/report"
)

// NewEmailCmd creates the email command.
func NewEmailCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email [file]",
		Short: "Analyze raw email headers for phishing indicators",
		Long: `Email analyzes a raw email header block using local heuristics:

- Return-Path vs From address mismatch (spoofing)
- SPF/DKIM authentication failures
- Suspicious headers left by bulk-mail tooling
- Unusually long mail server relay chains

The header block is read from the given file, or from standard input
when no file is specified.

Examples:
  # Analyze headers stored in a file
  phishscreen email headers.txt

  # Pipe headers from another tool
  formail -X "" < message.eml | phishscreen email`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEmailCmd,
	}

	addCommonFlags(cmd)

	return cmd
}

// runEmailCmd executes the email command.
func runEmailCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	headers, err := readHeaders(cmd, args)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	ldgr := openLedger(cfg, logger)
	if ldgr != nil {
		defer ldgr.Close()
	}

	screener := newScreener(cfg, ldgr, logger)

	verdict := screener.ScanEmail(headers)
	result := report.Result{
		Type:      model.ScanTypeEmail,
		Target:    headers,
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

	recordHistory, err := shouldRecordHistory(cmd)
	if err != nil {
		return err
	}
	if recordHistory && ldgr != nil {
		entry := model.NewEmailHistoryEntry(headers, &verdict, result.ScannedAt)
		if err := ldgr.AddHistory(ctx, entry); err != nil {
			logger.Warn("failed to record scan history", "error", err)
		}
	}

	return nil
}

// readHeaders reads the raw header block from the file argument or stdin.
func readHeaders(cmd *cobra.Command, args []string) (string, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0]) //nolint:gosec // User-provided header path is intentional
		if err != nil {
			return "", fmt.Errorf("failed to read header file: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read headers from stdin: %w", err)
		}
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no email headers provided")
	}
	return string(data), nil
}
