package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	envFile := flag.String("env", ".env", "Optional environment file")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		log.Printf("Warning: %v", err)
	}

	// Publishing is enabled only when a bucket is configured
	var publisher output.Publisher
	if s3Config := output.S3ConfigFromEnv(); s3Config.Bucket != "" {
		s3Publisher, err := output.NewS3Publisher(s3Config, renderer.NewDefaultLogger())
		if err != nil {
			log.Fatalf("Failed to create S3 publisher: %v", err)
		}
		publisher = s3Publisher
		log.Printf("Publishing renders to bucket %s", s3Config.Bucket)
	}

	// Create and start web server
	webServer := server.NewServer(*port, publisher)

	log.Printf("Path Tracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default to render", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}

// loadDotEnv loads an optional env file. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
