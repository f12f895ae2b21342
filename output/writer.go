package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"horas/worklog"
)

const (
	// DownloadFileName is the name offered for the raw data download.
	DownloadFileName      = "horas_totais.csv"
	ExcelDownloadFileName = "horas_totais.xlsx"
	CSVContentType        = "text/csv"
	ExcelContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Writer interface {
	Write(path string, table worklog.Table) error
	Encode(w io.Writer, table worklog.Table) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

func writeFile(path string, encode func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}
	if err := encode(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close output %s: %w", path, err)
	}
	return nil
}
