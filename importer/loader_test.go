package importer

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"horas/worklog"
)

func TestLoad_MissingFileReturnsEmptyTable(t *testing.T) {
	t.Parallel()

	table, err := Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.NoError(t, err)

	assert.Equal(t, 0, table.Len())
	assert.Equal(t, []string{"Data", "Atividade", "Horas Totais"}, table.Columns())
}

func TestLoad_ZeroSizeFileReturnsEmptyTable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.csv", "")

	table, err := Load(path)
	require.NoError(t, err)
	assert.True(t, table.Empty())
	assert.Equal(t, worklog.Columns, table.Columns())
}

func TestLoad_HeaderOnlyFileReturnsEmptyTable(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "header.csv", "Data,Atividade,Horas Totais\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.True(t, table.Empty())
}

func TestLoad_SingleInvalidDateRowIsDropped(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "invalid.csv", "Data,Atividade,Horas Totais\nnot-a-date,Coding,3.0\n")

	result, err := Run(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Table.Len())
	assert.Equal(t, 1, result.RowsRead)
	assert.Equal(t, 1, result.RowsDropped)
}

func TestLoad_PreservesSourceOrderAndNormalizesDates(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "horas.csv", strings.Join([]string{
		"Data,Atividade,Horas Totais,Notas",
		"2024-06-08,Review,4.0,late",
		"2024-06-01 09:30:00,Coding,3.0,",
		",Coding,1.0,",
		"2024-06-02,Coding,2.0,",
	}, "\n")+"\n")

	result, err := Run(path, Options{})
	require.NoError(t, err)

	require.Len(t, result.Table.Entries, 3)
	assert.Equal(t, 4, result.RowsRead)
	assert.Equal(t, 3, result.RowsLoaded)
	assert.Equal(t, 1, result.RowsDropped)

	assert.Equal(t, worklog.Entry{Date: day(2024, 6, 8), Activity: "Review", Hours: 4}, result.Table.Entries[0])
	assert.Equal(t, worklog.Entry{Date: day(2024, 6, 1), Activity: "Coding", Hours: 3}, result.Table.Entries[1])
	assert.Equal(t, worklog.Entry{Date: day(2024, 6, 2), Activity: "Coding", Hours: 2}, result.Table.Entries[2])
}

func TestLoad_DropsInvalidHours(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "hours.csv", strings.Join([]string{
		"Data,Atividade,Horas Totais",
		"2024-06-01,Coding,-2",
		"2024-06-01,Coding,lots",
		"2024-06-01,Coding,",
		"2024-06-01,Coding,1.5",
	}, "\n"))

	result, err := Run(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.RowsDropped)
	require.Len(t, result.Table.Entries, 1)
	assert.Equal(t, 1.5, result.Table.Entries[0].Hours)
}

func TestLoad_AcceptsEnglishHeadersAndBOM(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "english.csv", "\ufeffdate,activity,total_hours\n2024-06-01,Coding,2.5\n")

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, "Coding", table.Entries[0].Activity)
	assert.Equal(t, 2.5, table.Entries[0].Hours)
}

func TestLoad_UTF16BOM(t *testing.T) {
	t.Parallel()

	content := "Data,Atividade,Horas Totais\n2024-06-01,Codificação,\"2,5\"\n"
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(content)
	require.NoError(t, err)
	path := writeFile(t, "utf16.csv", encoded)

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, worklog.Entry{Date: day(2024, 6, 1), Activity: "Codificação", Hours: 2.5}, table.Entries[0])
}

func TestLoad_TSVSource(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "horas.tsv", "Data\tAtividade\tHoras Totais\n2024-06-01\tCoding, review\t3\n2024-06-02\tDocs\t1,5\n")

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []worklog.Entry{
		{Date: day(2024, 6, 1), Activity: "Coding, review", Hours: 3},
		{Date: day(2024, 6, 2), Activity: "Docs", Hours: 1.5},
	}, table.Entries)
}

func TestLoad_KeepsActivityLabelVerbatim(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "padded.csv", "Data,Atividade,Horas Totais\n 2024-06-01 , Coding , 3 \n2024-06-01,Coding,1\n")

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Entries, 2)
	assert.Equal(t, " Coding ", table.Entries[0].Activity)
	assert.Equal(t, day(2024, 6, 1), table.Entries[0].Date)
	assert.Equal(t, 3.0, table.Entries[0].Hours)
	assert.Equal(t, "Coding", table.Entries[1].Activity)
}

func TestLoad_CustomDelimiter(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "semicolon.csv", "Data;Atividade;Horas Totais\n2024-06-01;Coding;2,5\n")

	result, err := Run(path, Options{Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, result.Table.Entries, 1)
	assert.Equal(t, 2.5, result.Table.Entries[0].Hours)
}

func TestLoad_MissingDateColumnFails(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "nodate.csv", "Atividade,Horas Totais\nCoding,1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestLoad_ExcelSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "horas.xlsx")
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	require.NoError(t, file.SetSheetRow(sheet, "A1", &[]any{"Data", "Atividade", "Horas Totais"}))
	require.NoError(t, file.SetSheetRow(sheet, "A2", &[]any{"2024-06-01", "Coding", 3.5}))
	require.NoError(t, file.SetSheetRow(sheet, "A3", &[]any{"invalid", "Coding", 1}))
	require.NoError(t, file.SaveAs(path))
	require.NoError(t, file.Close())

	result, err := Run(path, Options{})
	require.NoError(t, err)
	require.Len(t, result.Table.Entries, 1)
	assert.Equal(t, 1, result.RowsDropped)
	assert.Equal(t, worklog.Entry{Date: day(2024, 6, 1), Activity: "Coding", Hours: 3.5}, result.Table.Entries[0])
}

func TestSerialToISODate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-06-01 00:00:00", serialToISODate("45444"))
	assert.Equal(t, "2024-06-01", serialToISODate("2024-06-01"))
}

func TestLoad_SQLiteSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "horas.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE registros (data TEXT, atividade TEXT, horas_totais REAL);`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO registros VALUES ('2024-06-01', 'Coding', 3.0), ('2024-06-02', 'Review', 1.25), (NULL, 'Coding', 2.0);`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	result, err := Run(path, Options{SQLiteTable: "registros"})
	require.NoError(t, err)
	require.Len(t, result.Table.Entries, 2)
	assert.Equal(t, 1, result.RowsDropped)
	assert.Equal(t, worklog.Entry{Date: day(2024, 6, 2), Activity: "Review", Hours: 1.25}, result.Table.Entries[1])
}

func TestSQLiteReader_RejectsUnsafeTableName(t *testing.T) {
	t.Parallel()

	reader := &SQLiteReader{Table: `horas"; DROP TABLE horas; --`}
	_, _, err := reader.Read(filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestInferFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"horas.csv":     "csv",
		"horas.XLSX":    "excel",
		"horas.sqlite3": "sqlite",
		"horas.tsv":     "tsv",
		"horas":         "csv",
	}
	for path, want := range tests {
		got, err := inferFormat(path, "")
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	got, err := inferFormat("horas.csv", "excel")
	require.NoError(t, err)
	assert.Equal(t, "excel", got)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
