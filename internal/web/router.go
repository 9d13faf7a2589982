package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"example.poc/messenger-client/internal/api"
	"example.poc/messenger-client/internal/repository"
	"example.poc/messenger-client/internal/util"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Router serves the subset of the messenger node API the sender talks to.
type Router struct {
	repo         repository.IRepository
	forcedStatus int
	router       chi.Router
}

type RouterOption func(*Router)

// WithForcedStatus makes /send_message answer every request with code
// instead of storing the message. Codes outside 100-599 and 200 are ignored.
func WithForcedStatus(code int) RouterOption {
	return func(r *Router) {
		if code >= 100 && code <= 599 && code != http.StatusOK {
			r.forcedStatus = code
		}
	}
}

func NewRouter(repo repository.IRepository, opts ...RouterOption) (*Router, error) {
	if repo == nil {
		return nil, fmt.Errorf("illegal argument: repository cannot be nil")
	}

	r := &Router{repo: repo}
	for _, opt := range opts {
		opt(r)
	}
	r.router = r.getHandler()

	return r, nil
}

func (ro *Router) getHandler() chi.Router {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(requestLogger)

	mux.Post("/send_message", ro.handleSendMessage)
	mux.Post("/get_message", ro.handleGetMessage)

	return mux
}

func (ro *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ro.router.ServeHTTP(w, r)
}

func (ro *Router) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	if ro.forcedStatus != 0 {
		util.ResponseAsJSON(w, ro.forcedStatus, statusResponse{Status: statusError, Error: "forced response status"})
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("failed to json decode request: %v", err), http.StatusBadRequest)
		return
	}
	if err := req.ValidateStrict(); err != nil {
		http.Error(w, fmt.Sprintf("request validation error: %v", err), http.StatusBadRequest)
		return
	}

	msg, err := ro.repo.SaveMessage(req.PubKey, req.Message, time.Duration(req.TTL)*time.Millisecond)
	if err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("failed to save message")
		util.ResponseAsJSON(w, http.StatusInternalServerError, statusResponse{Status: statusError, Error: err.Error()})
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Str("message_id", msg.ID).
		Str("pub_key", util.MaskKey(req.PubKey)).
		Time("expires_at", msg.ExpiresAt).
		Msg("saved message")
	util.ResponseAsJSON(w, http.StatusOK, statusResponse{Status: statusSaved})
}

func (ro *Router) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	var req api.RetrieveMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("failed to json decode request: %v", err), http.StatusBadRequest)
		return
	}
	if err := normalizeRetrieveRequest(&req); err != nil {
		http.Error(w, fmt.Sprintf("request validation error: %v", err), http.StatusBadRequest)
		return
	}

	msgs, err := ro.repo.GetMessagesByOwner(req.PubKey)
	if err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("failed to retrieve messages")
		util.ResponseAsJSON(w, http.StatusInternalServerError, statusResponse{Status: statusError, Error: err.Error()})
		return
	}

	util.ResponseAsJSON(w, http.StatusOK, api.RetrieveMessagesResponse{
		Status:   statusOk,
		Messages: toRetrievedMessages(msgs),
	})
}

// requestLogger attaches a request scoped logger and logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		base := zerolog.Ctx(r.Context())
		if base.GetLevel() == zerolog.Disabled {
			base = &log.Logger
		}
		lg := base.With().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(lg.WithContext(r.Context())))

		lg.Debug().
			Int("status", ww.Status()).
			Str("duration", time.Since(start).String()).
			Msg("handled request")
	})
}
