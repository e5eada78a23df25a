// Command server runs the auth and data sync server.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/ignishealth/ignis/internal/app"
)

func main() {
	// Missing .env is fine, real deployments use environment variables.
	godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
