// Package httpapi exposes the portal over HTTP: the login exchange and the
// public content endpoints. It is the only layer that translates internal
// errors into outward status codes and messages.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dkarlsson/priceportal/internal/logging"
	"github.com/dkarlsson/priceportal/internal/server/models"
)

// requestTimeout bounds the store lookup of a single request. A hung store
// resolves to the 500 path, never to 401/404.
const requestTimeout = 10 * time.Second

const shutdownTimeout = 5 * time.Second

// AuthService is the authentication gateway consumed by the login endpoint.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// ContentService serves the public read-through content endpoints.
type ContentService interface {
	Pricelist(ctx context.Context) ([]models.PriceItem, error)
	Terms(ctx context.Context, language string) (*models.Terms, error)
	Texts(ctx context.Context, language string) ([]models.Text, error)
}

type HTTPServer struct {
	address   string
	logger    logging.Logger
	auth      AuthService
	content   ContentService
	clientURL string
}

func NewHTTPServer(a string, l logging.Logger, as AuthService, cs ContentService, clientURL string) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		auth:      as,
		content:   cs,
		clientURL: clientURL,
	}
}

// Handler returns the full route table wrapped in the CORS and request
// logging middleware.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /pricelist", s.handlePricelist)
	mux.HandleFunc("GET /terms/{lang}", s.handleTerms)
	mux.HandleFunc("GET /texts/{lang}", s.handleTexts)
	mux.HandleFunc("GET /ping", s.handlePing)

	return s.corsMiddleware(s.loggingMiddleware(mux))
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
