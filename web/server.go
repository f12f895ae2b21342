// Package web serves the single-user dashboard. It is read-only, bound to
// localhost by the serve command, and has no authentication.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"horas/importer"
	"horas/internal/logging"
	"horas/internal/timeutil"
	"horas/output"
	"horas/report"
	"horas/watcher"
)

//go:embed templates/*.html
var templateFS embed.FS

const footerInfo = "App beta desenvolvido para registrar e monitorar as horas totais dedicadas ao projeto."

type Options struct {
	DataPath string
	Load     importer.Options
	// WatchInterval bounds how often /api/changed touches the data file.
	WatchInterval time.Duration
	Logger        *slog.Logger
}

type Server struct {
	dataPath      string
	loadOptions   importer.Options
	watchInterval time.Duration
	logger        *slog.Logger
	mux           *http.ServeMux

	// session only bounds how often the file is stat'ed. Each page tracks
	// its own last seen modification time and passes it to /api/changed.
	mu      sync.Mutex
	session *watcher.Session
}

// snapshot is one load of the worklog together with the modification time
// observed just before reading it.
type snapshot struct {
	*importer.Result
	ModTime time.Time
}

type metricView struct {
	Label string
	Value string
}

type pageView struct {
	Title        string
	Mode         string
	Source       string
	Metrics      []metricView
	RowCount     int
	RowsDropped  int
	Empty        bool
	LatestDate   string
	ModTime      string
	PollSeconds  int
	FooterInfo   string
	DownloadPath string
	ExcelPath    string
}

type analysisPageView struct {
	pageView
	Charts []ChartView
}

type dataPageView struct {
	pageView
	Columns []string
	Rows    []RowView
}

type summaryResponse struct {
	report.Summary
	Rows        int `json:"rows"`
	RowsDropped int `json:"rowsDropped"`
}

type changedResponse struct {
	Changed bool   `json:"changed"`
	ModTime string `json:"modTime"`
}

func NewServer(options Options) http.Handler {
	interval := options.WatchInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := &Server{
		dataPath:      options.DataPath,
		loadOptions:   options.Load,
		watchInterval: interval,
		logger:        logging.Component(logger, logging.ComponentHTTP),
		session:       watcher.NewSession(options.DataPath, watcher.WithLogger(logger)),
	}
	if server.loadOptions.Logger == nil {
		server.loadOptions.Logger = logger
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /analysis", server.handleAnalysis)
	mux.HandleFunc("GET /data", server.handleData)
	mux.HandleFunc("GET /download/"+output.DownloadFileName, server.handleDownload)
	mux.HandleFunc("GET /download/"+output.ExcelDownloadFileName, server.handleDownloadExcel)
	mux.HandleFunc("GET /api/summary", server.handleAPISummary)
	mux.HandleFunc("GET /api/changed", server.handleAPIChanged)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(recorder, r)
	s.logger.Debug("request served",
		"method", r.Method,
		"path", r.URL.Path,
		"status", recorder.status,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/analysis", http.StatusFound)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	result, ok := s.load(w)
	if !ok {
		return
	}

	daily := report.DailyTotals(result.Table)
	view := analysisPageView{
		pageView: s.basePage("Análises Gráficas", "analysis", result),
	}
	if !result.Table.Empty() {
		view.Charts = []ChartView{
			BuildBarChart("Horas por Dia", "Data", daily),
			BuildBarChart("Horas por Tipo de Atividade", "Atividade", report.ActivityTotals(result.Table)),
			BuildLineChart("Horas Acumuladas por Data", "Data", report.Cumulative(daily)),
		}
	}

	s.render(w, "analysis.html", view)
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	result, ok := s.load(w)
	if !ok {
		return
	}

	view := dataPageView{
		pageView: s.basePage("Visualizar Dados", "data", result),
		Columns:  result.Table.Columns(),
		Rows:     BuildRows(result.Table),
	}
	s.render(w, "data.html", view)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	result, ok := s.load(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", output.CSVContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.DownloadFileName))
	if err := (&output.CSVWriter{}).Encode(w, result.Table); err != nil {
		s.logger.Error("encode csv download", "error", err)
	}
}

func (s *Server) handleDownloadExcel(w http.ResponseWriter, r *http.Request) {
	result, ok := s.load(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", output.ExcelContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.ExcelDownloadFileName))
	if err := (&output.ExcelWriter{}).Encode(w, result.Table); err != nil {
		s.logger.Error("encode excel download", "error", err)
	}
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	result, ok := s.load(w)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Summary:     report.Summarize(result.Table),
		Rows:        result.Table.Len(),
		RowsDropped: result.RowsDropped,
	})
}

// handleAPIChanged compares the file's modification time with the one the
// polling page was rendered from (?since=, empty for a missing file). The
// answer depends only on since, so any number of tabs see the same change.
// The file itself is stat'ed at most once per watch interval.
func (s *Server) handleAPIChanged(w http.ResponseWriter, r *http.Request) {
	since, err := parseModTime(r.URL.Query().Get("since"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	_, modTime := s.session.HasChanged(s.dataPath, s.watchInterval)
	s.mu.Unlock()

	resp := changedResponse{
		Changed: !modTime.Equal(since),
		ModTime: formatModTime(modTime),
	}
	if resp.Changed {
		s.logger.Debug("worklog file changed", "path", s.dataPath, "since", formatModTime(since), "mod_time", resp.ModTime)
	}
	writeJSON(w, http.StatusOK, resp)
}

// load re-reads the worklog for every request; there is no cache.
func (s *Server) load(w http.ResponseWriter) (*snapshot, bool) {
	s.mu.Lock()
	_, modTime := s.session.HasChanged(s.dataPath, 0)
	s.mu.Unlock()

	result, err := importer.Run(s.dataPath, s.loadOptions)
	if err != nil {
		s.logger.Error("load worklog", "path", s.dataPath, "error", err)
		http.Error(w, fmt.Sprintf("load worklog: %v", err), http.StatusInternalServerError)
		return nil, false
	}
	return &snapshot{Result: result, ModTime: modTime}, true
}

func formatModTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func parseModTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid since %q: expected RFC3339 time", value)
	}
	return parsed, nil
}

func (s *Server) basePage(title, mode string, result *snapshot) pageView {
	summary := report.Summarize(result.Table)
	metrics := make([]metricView, 0, 5)
	for _, metric := range summary.Metrics() {
		metrics = append(metrics, metricView{Label: metric.Label, Value: report.FormatHours(metric.Hours)})
	}

	latest := ""
	if date, ok := result.Table.MaxDate(); ok {
		latest = timeutil.DayKey(date)
	}

	return pageView{
		Title:        title,
		Mode:         mode,
		Source:       filepath.Base(s.dataPath),
		Metrics:      metrics,
		RowCount:     result.Table.Len(),
		RowsDropped:  result.RowsDropped,
		Empty:        result.Table.Empty(),
		LatestDate:   latest,
		ModTime:      formatModTime(result.ModTime),
		PollSeconds:  int(s.watchInterval / time.Second),
		FooterInfo:   footerInfo,
		DownloadPath: "/download/" + output.DownloadFileName,
		ExcelPath:    "/download/" + output.ExcelDownloadFileName,
	}
}

func (s *Server) render(w http.ResponseWriter, pageTemplate string, data any) {
	if err := renderTemplate(w, pageTemplate, data); err != nil {
		s.logger.Error("render page", "template", pageTemplate, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").Funcs(template.FuncMap{
		"fmtHours": func(value float64) string {
			return fmt.Sprintf("%.2f", value)
		},
	}).ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
