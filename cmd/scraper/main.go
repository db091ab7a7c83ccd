package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"CardScout/internal/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.yml", "Path to the YAML config file")
	flag.Parse()

	application := app.New(*configPath)
	defer application.Close()

	// Ctrl-C stops issuing new keyword fetches; the current keyword is
	// finished or abandoned, then the run winds down.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.RunScrape(ctx); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
