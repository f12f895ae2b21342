package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"horas/config"
	"horas/internal/logging"
	"horas/web"
)

const shutdownTimeout = 10 * time.Second

var (
	servePort   int
	serveNoOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local dashboard",
	Long: `Start a local HTTP server with the dashboard.

The sidebar shows the current month/week totals and the daily, weekly and
monthly averages. Two views are available: charts (hours per day, per activity
and cumulative) and the raw data table with a CSV download. Open pages reload
when the worklog file changes on disk.`,
	Example: `
  # Start on the configured port (default 8501)
  horas serve

  # Serve another file on a custom port without opening a browser
  horas serve --file ./horas.xlsx --port 9090 --no-open
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		port := cfg.Serve.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}
		logger := logging.Component(slog.Default(), logging.ComponentApp)

		server := &http.Server{
			Addr: fmt.Sprintf("127.0.0.1:%d", port),
			Handler: web.NewServer(web.Options{
				DataPath:      cfg.Data.File,
				Load:          importOptions(cfg, slog.Default()),
				WatchInterval: cfg.Watch.Interval,
				Logger:        slog.Default(),
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		group, ctx := errgroup.WithContext(ctx)
		group.Go(func() error {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			return nil
		})

		listenURL := fmt.Sprintf("http://localhost:%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s (file: %s)\n", listenURL, cfg.Data.File)
		if !serveNoOpen {
			if openErr := openURLInBrowser(listenURL); openErr != nil {
				logger.Warn("failed to open browser", "error", openErr)
			}
		}

		return group.Wait()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 8501, "HTTP port for the dashboard (overrides serve.port)")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "Do not open browser automatically")
}

func openURLInBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}
