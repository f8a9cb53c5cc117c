package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/docdigest/docdigest/internal/application"
	"github.com/docdigest/docdigest/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("DocDigest Summarization Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  GEMINI_API_KEY          Gemini API key (optional; enables model strategies)\n")
		fmt.Printf("  OPENAI_API_KEY          OpenAI API key (optional; enables model strategies)\n")
		fmt.Printf("  PORT                    Server port (default: 8080)\n")
		fmt.Printf("  HOST                    Server host (default: 0.0.0.0)\n")
		fmt.Printf("  HISTORY_BACKEND         History store: file, memory, or gcs (default: file)\n")
		fmt.Printf("  HISTORY_FILE            Path of the file-backed history store\n")
		fmt.Printf("  HISTORY_BUCKET          Bucket of the GCS-backed history store\n")
		fmt.Printf("  HISTORY_RETENTION_DAYS  Age out records older than this (0 disables)\n")
		fmt.Printf("  AUTH_TOKEN              Bearer token guarding history clearing (optional)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("DocDigest Summarization Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	router := server.NewRouter(app)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Scheduled history retention sweep. The store is already bounded to
	// the 50 most recent records on append; the sweep only ages out stale
	// entries when retention is configured.
	c := cron.New()
	if days := app.Config.HistoryRetentionDays; days > 0 {
		_, err := c.AddFunc(app.Config.RetentionSchedule, func() {
			cutoff := time.Now().AddDate(0, 0, -days)
			dropped, err := app.History.Prune(ctx, cutoff)
			if err != nil {
				log.Printf("❌ History retention sweep failed: %v", err)
				return
			}
			if dropped > 0 {
				log.Printf("🧹 History retention sweep removed %d records", dropped)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule retention sweep: %v", err)
		}
		log.Printf("📅 Scheduled history retention sweep: %s (older than %d days)", app.Config.RetentionSchedule, days)
	}
	c.Start()
	defer c.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-sigChan
	log.Println("🛑 Shutting down server...")

	cancel()
	c.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
