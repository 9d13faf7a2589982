package pkg

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"example.poc/messenger-client/internal/config"
	"example.poc/messenger-client/internal/repository"
	"example.poc/messenger-client/internal/web"
	"example.poc/messenger-client/internal/worker"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

// MessengerStub is a local stand-in for a messenger node. It accepts
// /send_message and /get_message and keeps messages in memory until their
// ttl runs out.
type MessengerStub struct {
	port         int
	forcedStatus int
	repo         *repository.Repo
	expiry       *worker.ExpiryWorker
	router       *web.Router
}

type MessengerStubOption func(*MessengerStub)

func WithPort(port int) MessengerStubOption {
	return func(ms *MessengerStub) {
		ms.port = port
	}
}

func WithForcedStatus(code int) MessengerStubOption {
	return func(ms *MessengerStub) {
		ms.forcedStatus = code
	}
}

// NewMessengerStub reads port, forced status and expiry interval from config
// unless overridden by opts.
func NewMessengerStub(opts ...MessengerStubOption) (*MessengerStub, error) {
	ms := &MessengerStub{
		port:         config.StubServerPort(),
		forcedStatus: config.StubResponseStatus(),
		repo:         repository.NewRepository(),
	}
	for _, opt := range opts {
		opt(ms)
	}

	expiry, err := worker.NewExpiryWorker(ms.repo, config.ExpiryCheckInterval())
	if err != nil {
		return nil, fmt.Errorf("failed to create expiry worker: %w", err)
	}
	ms.expiry = expiry

	router, err := web.NewRouter(ms.repo, web.WithForcedStatus(ms.forcedStatus))
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}
	ms.router = router

	return ms, nil
}

// Start listens on the configured port and blocks until ctx is cancelled.
func (ms *MessengerStub) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", ms.port))
	if err != nil {
		return fmt.Errorf("failed to listen to port %d: %w", ms.port, err)
	}
	return ms.Serve(ctx, lis)
}

// Serve runs the stub on an existing listener. The listener is closed on return.
func (ms *MessengerStub) Serve(ctx context.Context, lis net.Listener) error {
	lg := zerolog.Ctx(ctx)
	if lg.GetLevel() == zerolog.Disabled {
		lg = &log.Logger
	}
	ctx = lg.With().Str("component", "messenger_stub").Logger().WithContext(ctx)

	srv := &http.Server{
		Handler:           ms.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			// in-flight requests get to finish during Shutdown
			return context.WithoutCancel(ctx)
		},
	}

	go func() {
		if err := ms.expiry.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			zerolog.Ctx(ctx).Err(err).Msg("expiry worker stopped")
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(lis)
	}()

	zerolog.Ctx(ctx).Info().
		Str("addr", lis.Addr().String()).
		Int("forced_status", ms.forcedStatus).
		Msg("messenger stub listening")

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve HTTP on %s: %w", lis.Addr(), err)
	case <-ctx.Done():
	}

	zerolog.Ctx(ctx).Info().Msg("stopping messenger stub, context cancelled")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down messenger stub: %w", err)
	}
	return nil
}

// Stored reports how many messages the stub currently holds, expired or not.
func (ms *MessengerStub) Stored() int {
	return ms.repo.Count()
}
