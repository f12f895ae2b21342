package importer

import (
	"strings"
)

type Record struct {
	RowNumber int
	Values    map[string]string
}

// Get returns the first present value among keys, verbatim. Parsers trim
// their own input; labels keep surrounding spaces.
func (r Record) Get(keys ...string) string {
	for _, key := range keys {
		if value, ok := r.Values[normalizeHeader(key)]; ok {
			return value
		}
	}
	return ""
}

// Header aliases accepted for the three worklog columns.
var (
	dateAliases     = []string{"data", "date"}
	activityAliases = []string{"atividade", "activity"}
	hoursAliases    = []string{"horastotais", "hours", "totalhours", "horas"}
)

func normalizeHeader(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	trimmed = strings.ReplaceAll(trimmed, "_", "")
	trimmed = strings.ReplaceAll(trimmed, "-", "")
	trimmed = strings.ReplaceAll(trimmed, " ", "")
	return trimmed
}

func hasAnyHeader(headers []string, aliases []string) bool {
	for _, header := range headers {
		if matchesAlias(header, aliases) {
			return true
		}
	}
	return false
}

func matchesAlias(header string, aliases []string) bool {
	for _, alias := range aliases {
		if header == alias {
			return true
		}
	}
	return false
}

func recordValues(normalizedHeaders []string, row []string) map[string]string {
	values := make(map[string]string, len(normalizedHeaders))
	for i, header := range normalizedHeaders {
		if header == "" {
			continue
		}
		if i < len(row) {
			values[header] = row[i]
		} else {
			values[header] = ""
		}
	}
	return values
}

func normalizeHeaders(headers []string) []string {
	normalized := make([]string, len(headers))
	for i, header := range headers {
		normalized[i] = normalizeHeader(header)
	}
	return normalized
}
