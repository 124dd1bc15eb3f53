// qrlinks prints the form URL for every registered checkpoint. The output
// feeds whatever QR generator prints the physical labels.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"rondas/internal/config"
	"rondas/internal/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	baseURL := flag.String("base-url", "http://localhost:8080", "Public base URL of the rondas server")
	flag.Parse()

	cfg := config.Load()

	registry := domain.DefaultRegistry()
	if cfg.Registry.File != "" {
		var err error
		registry, err = domain.LoadRegistryFile(cfg.Registry.File)
		if err != nil {
			log.Fatalf("failed to load registry file: %v", err)
		}
	}

	for _, id := range registry.IDs() {
		cp, err := registry.Resolve(id)
		if err != nil {
			log.Fatalf("resolve %s: %v", id, err)
		}
		fmt.Printf("%-25s %-15s %s/api/rondas/checkpoint?ronda=%s\n", cp.Local, cp.Grupo, *baseURL, cp.ID)
	}
}
