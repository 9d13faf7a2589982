package main

import (
	"context"
	"os"
	"os/signal"

	"example.poc/messenger-client/internal/api"
	"example.poc/messenger-client/internal/business"
	"example.poc/messenger-client/internal/config"
)

// Sends one test message with a freshly generated key to the configured
// messenger node and reports the outcome.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sender := api.NewRESTMessageSender(config.SendMessageURL())
	business.Run(ctx, sender, business.NewReporter(os.Stdout, os.Stderr))
}
