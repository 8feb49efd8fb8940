package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xb0b1/portfolio/export"
	"github.com/0xb0b1/portfolio/handlers"
	"github.com/0xb0b1/portfolio/pages"
	"github.com/0xb0b1/portfolio/storage"
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site",
	Long: `The serve command runs the dynamic site. With DEPLOY_TARGET=static it
instead exports the site, serves the output directory and rebuilds whenever
content, messages or static files change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if serverPort != "" {
			appConfig.Port = serverPort
		}

		var handler http.Handler
		if appConfig.Static() {
			h, err := staticPreview(ctx)
			if err != nil {
				return err
			}
			handler = h
		} else {
			submissions, err := storage.NewSubmissionLog(appConfig.SubmissionsFile, func(err error) {
				logger.Errorf("Failed to save submission: %v", err)
			})
			if err != nil {
				return err
			}
			defer submissions.Close()
			logger.Infof("Submission log initialized with %d submissions", submissions.Count())

			h, err := handlers.NewRouter(pages.New(appConfig, logger), submissions, appConfig.StaticDir, logger)
			if err != nil {
				return err
			}
			handler = h
		}

		return listen(ctx, handler)
	},
}

// staticPreview exports once, then rebuilds in the background on changes.
func staticPreview(ctx context.Context) (http.Handler, error) {
	e := newExporter(appConfig)

	logger.Info("Performing initial build...")
	if err := exportOnce(ctx, e); err != nil {
		return nil, err
	}

	watcher, err := export.NewWatcher([]string{appConfig.ContentDir, appConfig.MessagesDir, appConfig.StaticDir}, export.DefaultDebounce, logger)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	go func() {
		err := watcher.Run(ctx, func() error {
			mu.Lock()
			defer mu.Unlock()
			return exportOnce(ctx, e)
		})
		if err != nil {
			logger.Errorf("Watcher stopped: %v", err)
		}
	}()

	out := appConfig.OutputDir
	fs := http.FileServer(http.Dir(out))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(r.URL.Path), "index.html")); errors.Is(err, os.ErrNotExist) {
				http.ServeFile(w, r, filepath.Join(out, "404.html"))
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fs.ServeHTTP(w, r)
	}), nil
}

func listen(ctx context.Context, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on http://localhost:%s", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func init() {
	serveCmd.Flags().StringVarP(&serverPort, "port", "p", "", "port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
