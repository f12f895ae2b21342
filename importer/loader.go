package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"horas/internal/logging"
	"horas/worklog"
)

// ErrMissingColumn is returned when a non-empty source lacks the date or
// hours column.
var ErrMissingColumn = errors.New("missing required column")

type Options struct {
	// Format overrides extension-based detection: csv|excel|sqlite.
	Format string
	// Delimiter for delimited text; ',' when zero.
	Delimiter rune
	// SQLiteTable is the table read from SQLite sources.
	SQLiteTable string
	Logger      *slog.Logger
}

type Result struct {
	Table       worklog.Table
	RowsRead    int
	RowsLoaded  int
	RowsDropped int
}

// Load reads the worklog at path with default options.
func Load(path string) (worklog.Table, error) {
	result, err := Run(path, Options{})
	if err != nil {
		return worklog.Table{}, err
	}
	return result.Table, nil
}

// Run reads the worklog at path. A missing or zero-size file yields an empty
// table. Rows with an unparseable date or invalid hours are dropped and
// counted, never reported as errors.
func Run(path string, options Options) (*Result, error) {
	result := &Result{Table: worklog.Table{Entries: []worklog.Entry{}}}
	logger := logging.Component(options.Logger, logging.ComponentLoader)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("source file not found, using empty table", "path", path)
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat source file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source path %s is a directory", path)
	}
	if info.Size() == 0 {
		return result, nil
	}

	format, err := inferFormat(path, options.Format)
	if err != nil {
		return nil, err
	}
	reader, err := ReaderForFormat(format, options)
	if err != nil {
		return nil, err
	}

	headers, records, err := reader.Read(path)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		return result, nil
	}
	if !hasAnyHeader(headers, dateAliases) {
		return nil, fmt.Errorf("%w: date (expected one of %s) in %s", ErrMissingColumn, strings.Join(dateAliases, ", "), path)
	}
	if !hasAnyHeader(headers, hoursAliases) {
		return nil, fmt.Errorf("%w: hours (expected one of %s) in %s", ErrMissingColumn, strings.Join(hoursAliases, ", "), path)
	}

	result.RowsRead = len(records)
	for _, record := range records {
		entry, err := mapRecord(record)
		if err != nil {
			result.RowsDropped++
			logger.Debug("dropping row", "path", path, "row", record.RowNumber, "reason", err)
			continue
		}
		result.Table.Entries = append(result.Table.Entries, entry)
		result.RowsLoaded++
	}

	if result.RowsDropped > 0 {
		logger.Info("rows dropped while loading", "path", path, "dropped", result.RowsDropped, "loaded", result.RowsLoaded)
	}

	return result, nil
}

func mapRecord(record Record) (worklog.Entry, error) {
	date, err := parseDate(record.Get(dateAliases...))
	if err != nil {
		return worklog.Entry{}, fmt.Errorf("row %d: parse date: %w", record.RowNumber, err)
	}
	hours, err := parseHours(record.Get(hoursAliases...))
	if err != nil {
		return worklog.Entry{}, fmt.Errorf("row %d: parse hours: %w", record.RowNumber, err)
	}

	return worklog.Entry{
		Date:     date,
		Activity: record.Get(activityAliases...),
		Hours:    hours,
	}, nil
}

func inferFormat(path string, format string) (string, error) {
	if strings.TrimSpace(format) != "" {
		return format, nil
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch extension {
	case "xlsx", "xlsm", "xls":
		return "excel", nil
	case "db", "sqlite", "sqlite3":
		return "sqlite", nil
	case "tsv":
		return "tsv", nil
	default:
		return "csv", nil
	}
}
