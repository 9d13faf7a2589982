package main

import (
	"context"
	"os"
	"os/signal"

	"example.poc/messenger-client/pkg"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ms, err := pkg.NewMessengerStub()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create messenger stub")
	}
	if err := ms.Start(log.Logger.WithContext(ctx)); err != nil {
		log.Fatal().Err(err).Msg("messenger stub stopped")
	}
	log.Info().Msg("messenger stub shutdown")
}
