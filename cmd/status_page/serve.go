package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Serve a built status page locally",
	Long:  "Serves the output directory over HTTP for local review. Press Ctrl-C to stop.",
	RunE:  runServeCmd,
}

var (
	serveOutDir string
	servePort   int
)

func init() {
	serveCommand.Flags().StringVarP(&serveOutDir, "out", "o", "dist", "Output directory holding the built site")
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")

	rootCmd.AddCommand(serveCommand)
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(serveOutDir); err != nil {
		return fmt.Errorf("output directory %s not found (run build first): %w", serveOutDir, err)
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", servePort),
		Handler:      http.FileServer(http.Dir(serveOutDir)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Serving %s on http://localhost:%d", serveOutDir, servePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
