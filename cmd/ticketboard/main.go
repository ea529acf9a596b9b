// Command ticketboard serves the ticket dashboard: priority, type, status
// and user charts drawn from the ticketing server's data endpoints.
package main

import (
	"context"
	"log"

	"github.com/dalemusser/ticketboard/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		log.Fatalf("ticketboard: %v", err)
	}
}
