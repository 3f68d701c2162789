/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the HRMS Lite server. Handles configuration,
  store bootstrap, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present) and parse command-line flags
  2. Connect to MongoDB and ensure unique indexes
  3. Create API handler with dependencies
  4. Configure HTTP router
  5. Start server with graceful shutdown

DEGRADED MODE:
  A missing or placeholder MONGODB_URL, or an unreachable server at
  startup, does NOT abort: the service starts with no storage handle.
  Dashboard endpoints serve canned demo data; everything that needs
  storage returns 503. The service stays reachable either way.

CONFIGURATION:
  -port         HTTP server port (default: PORT env or 8000)
  MONGODB_URL   Document store connection string
  DATABASE_NAME Database name (default: hrms_lite)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Disconnect from the store
  4. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - store/mongo/mongo.go: Database implementation
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hrms/hrms-lite/api"
	"github.com/hrms/hrms-lite/hrms"
	storemongo "github.com/hrms/hrms-lite/store/mongo"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	port := flag.Int("port", envInt("PORT", 8000), "HTTP server port")
	flag.Parse()

	mongoURL := os.Getenv("MONGODB_URL")
	dbName := envStr("DATABASE_NAME", "hrms_lite")

	// Initialize store. Failure leaves the service in degraded mode
	// rather than aborting startup.
	var store hrms.Store
	var mongoStore *storemongo.Store
	if isPlaceholder(mongoURL) {
		log.Println("MONGODB_URL not configured; running in degraded mode")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s, err := storemongo.New(ctx, mongoURL, dbName)
		if err != nil {
			log.Printf("Warning: store unreachable, running in degraded mode: %v", err)
		} else {
			if err := s.EnsureIndexes(ctx); err != nil {
				log.Printf("Warning: failed to create indexes: %v", err)
			}
			mongoStore = s
			store = s
			log.Println("Connected to MongoDB")
		}
		cancel()
	}

	// Initialize handler and router
	handler := api.NewHandler(store)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if mongoStore != nil {
		if err := mongoStore.Close(ctx); err != nil {
			log.Printf("Warning: failed to disconnect store: %v", err)
		}
	}

	log.Println("Server stopped")
}

// isPlaceholder reports whether the connection string is absent or an
// unfilled template like "mongodb+srv://<user>:<password>@...".
func isPlaceholder(url string) bool {
	return url == "" || strings.Contains(url, "<")
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
