package main

import (
	"flag"
	"log"

	"CardScout/internal/app"
	"CardScout/internal/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	configPath := flag.String("config", "config.yml", "Path to the YAML config file")
	flag.Parse()

	application := app.New(*configPath)
	defer application.Close()

	log.Println("Starting card scrape API server...")
	server.Start(application)
}
