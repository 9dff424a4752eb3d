package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rrsched/rrsched/sim/history"
)

var serveAddr string // Listen address for the history view

// serveCmd exposes the recorded runs over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the run history over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store := mustOpenHistory(ctx)
		defer store.Close()

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           history.NewHandler(store),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()

		logrus.Infof("Serving run history from %s on %s", historyPath, serveAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server failed: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&historyPath, "history", "", "SQLite database recording finished runs")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
