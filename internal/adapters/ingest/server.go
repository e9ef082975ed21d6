// Package ingest implements the Alertmanager webhook receiving server.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/alertcord/alertcord/internal/core/domain"
	"github.com/alertcord/alertcord/internal/core/ports"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second

	// maxBodyBytes bounds a webhook payload. Alertmanager truncates groups
	// well below this.
	maxBodyBytes = 4 << 20
)

// ForwardFunc relays one decoded alert group.
type ForwardFunc func(ctx context.Context, group *domain.Group) error

// Server receives Alertmanager webhook deliveries and hands them to a
// ForwardFunc.
type Server struct {
	listen  string
	logger  ports.Logger
	forward ForwardFunc

	mu   sync.Mutex
	addr net.Addr
}

// NewServer creates a Server bound to listen once Run is called.
func NewServer(listen string, logger ports.Logger, forward ForwardFunc) *Server {
	return &Server{
		listen:  listen,
		logger:  logger,
		forward: forward,
	}
}

// Addr returns the bound address, or nil before Run has started listening.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.listen)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "listen", s.listen)
	}

	s.mu.Lock()
	s.addr = listener.Addr()
	s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("POST /", s.handleWebhook)

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.logger.Info("listening on " + listener.Addr().String())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleWebhook decodes one Alertmanager group and forwards it. Decode and
// forward failures both answer 400, matching what Alertmanager treats as a
// failed notification so it retries.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()

	var group domain.Group
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&group); err != nil {
		s.logger.Error(zerr.Wrap(err, domain.ErrInvalidPayload.Error()))
		http.Error(w, domain.ErrInvalidPayload.Error(), http.StatusBadRequest)
		return
	}

	if err := s.forward(r.Context(), &group); err != nil {
		s.logger.Error(err)
		http.Error(w, "failed to forward alert group", http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
