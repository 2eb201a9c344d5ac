package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Worfje/home-assistant-ultimaker/materials"
	"github.com/Worfje/home-assistant-ultimaker/sensor"
	"github.com/Worfje/home-assistant-ultimaker/server"
	"github.com/Worfje/home-assistant-ultimaker/ultimaker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Ultimaker Status Bridge starting")
	log.Printf("Server: %s", cfg.ListenAddr())
	log.Printf("Printer: %s (%s), poll interval %s", cfg.Printer.Host, cfg.Printer.Name, cfg.PollInterval())

	// Build the material catalog once; it is shared read-only.
	catalog := materials.NewCatalog()
	log.Printf("Material catalog: %d entries", catalog.Len())

	client := ultimaker.NewClient(cfg.Printer.Host)
	source := ultimaker.NewDataSource(client, cfg.PollInterval())
	extractor := sensor.NewExtractor(catalog)

	sensors := make([]*sensor.Sensor, 0, len(cfg.Sensors.Enabled))
	for _, key := range cfg.Sensors.Enabled {
		s, err := sensor.New(source, extractor, cfg.Printer.Name, key, cfg.Sensors.Decimals)
		if err != nil {
			log.Fatalf("Failed to create sensor: %v", err)
		}
		sensors = append(sensors, s)
	}
	log.Printf("Sensors: %d enabled", len(sensors))

	// Initial poll (non-fatal if the printer is offline - sensors degrade to
	// "not connected" and the next cycle retries).
	source.Refresh(context.Background())
	if snap := source.Latest(); snap != nil {
		if status, ok := snap.String("status"); ok {
			log.Printf("Printer status: %s", status)
		}
	}

	srv := server.New(server.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}, source, sensors, cfg.Printer.Host)

	// Handle graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Printf("Received signal %v, shutting down...", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)

		os.Exit(0)
	}()

	// Start the HTTP server (blocks).
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
