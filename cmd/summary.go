package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"horas/config"
	"horas/importer"
	"horas/internal/formatter"
	"horas/internal/logging"
	"horas/report"
	"horas/watcher"
)

var summaryWatch bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print month/week totals and daily/weekly/monthly averages.",
	Long: `Read the worklog file and print the five summary values:
- Horas no Mês Atual / Horas na Semana Atual: totals of the month and ISO week of the latest date in the data
- Média de Horas Diárias / Semanais / Mensais: mean of the per-day, per-week and per-month totals

A missing or empty file prints zeros. With --watch the summary is printed
again every time the file's modification time changes.`,
	Example: `
  # Summary of the configured file
  horas summary

  # Summary of another file, refreshed on change
  horas summary --file ./outro.csv --watch
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		logger := logging.Component(slog.Default(), logging.ComponentApp)
		options := importOptions(cfg, slog.Default())
		out := cmd.OutOrStdout()

		session := watcher.NewSession(cfg.Data.File, watcher.WithLogger(slog.Default()))
		if err := printSummary(out, cfg.Data.File, options); err != nil {
			return err
		}
		if !summaryWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("watching worklog file", "path", cfg.Data.File, "interval", cfg.Watch.Interval)
		err = watcher.Poll(ctx, session, cfg.Data.File, cfg.Watch.Interval, slog.Default(), func(modTime time.Time) error {
			return printSummary(out, cfg.Data.File, options)
		})
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func printSummary(w io.Writer, path string, options importer.Options) error {
	result, err := importer.Run(path, options)
	if err != nil {
		return err
	}

	summary := report.Summarize(result.Table)
	_, err = fmt.Fprintln(w, formatter.FormatSummary(summary, formatter.SummaryInfo{
		Source:      path,
		Rows:        result.Table.Len(),
		RowsDropped: result.RowsDropped,
	}))
	return err
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().BoolVarP(&summaryWatch, "watch", "w", false, "Re-print the summary whenever the file changes")
}
