package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"horas/config"
	"horas/importer"
	"horas/output"
	"horas/report"
)

var errExportOverwritesSource = errors.New("export output is the worklog file itself")

var (
	exportFormat string
	exportMode   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the worklog to CSV/Excel",
	Long: `Export the loaded worklog.

Modes:
- raw: export each valid row with the columns Data, Atividade, Horas Totais
- daily: export per-day totals (Data, Horas Totais)

Output format can be selected explicitly via --format or inferred from --output extension.
Without --output, raw CSV is written to ./horas_totais.csv.`,
	Example: `
  # Export valid rows to CSV
  horas export --output ./horas_totais.csv

  # Export valid rows of an Excel worklog to CSV
  horas export --file ./horas.xlsx --output ./horas_totais.csv

  # Export daily totals to Excel
  horas export --mode daily --output ./diario.xlsx

  # Force Excel format independent of extension
  horas export --mode daily --format excel --output ./diario.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		same, err := samePath(exportOutput, cfg.Data.File)
		if err != nil {
			return err
		}
		if same {
			return fmt.Errorf("%w: %s", errExportOverwritesSource, exportOutput)
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		result, err := importer.Run(cfg.Data.File, importOptions(cfg, slog.Default()))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, result.Table); err != nil {
				return err
			}
			fmt.Fprintf(out, "Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", result.Table.Len(), format, exportOutput)
		case "daily":
			totals := report.DailyTotals(result.Table)
			if err := output.WriteDailyTotals(exportOutput, format, totals); err != nil {
				return err
			}
			fmt.Fprintf(out, "Export completed. Days: %d, Mode: daily, Format: %s, File: %s\n", len(totals), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, daily)", exportMode)
		}
		return nil
	},
}

// samePath reports whether a and b name the same file once made absolute and
// cleaned. Existing files are also compared by identity, which catches links.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", b, err)
	}
	if absA == absB {
		return true, nil
	}

	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	return errA == nil && errB == nil && os.SameFile(infoA, infoB), nil
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|daily")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "./"+output.DownloadFileName, "Output file path")
}
