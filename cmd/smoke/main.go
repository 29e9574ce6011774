package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/elijahokolo60-dotcom/swagger-api/internal/smoketest"
	"github.com/elijahokolo60-dotcom/swagger-api/pkg/logger"
)

// Default configuration constants.
const (
	defaultTimeout = 10 * time.Second
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8000", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Log every passing check")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	config := &smoketest.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if err := smoketest.Run(ctx, config); err != nil {
		logger.Get().Error(ctx, "smoke checks failed", logger.Error(err))
		os.Exit(1)
	}
}
