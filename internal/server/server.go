package server

import (
	"context"
	"crypto/tls"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/br0k3x/osul-bot/docs"
	"github.com/br0k3x/osul-bot/internal/database"
	"github.com/br0k3x/osul-bot/internal/handler"
	"github.com/br0k3x/osul-bot/internal/linking"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/metrics"
	"github.com/br0k3x/osul-bot/internal/osu"
	"github.com/br0k3x/osul-bot/internal/web"
)

// Options holds listener and middleware settings.
type Options struct {
	Port               int
	CORSAllowedOrigin  string
	RateLimitPerMinute int
	TrustedProxies     []string
	SSLDir             string
	APIBaseURL         string
	Version            string
}

// Dependencies are the services behind the routes. DB and Members may be nil
// when the database or the Discord bot is not configured.
type Dependencies struct {
	DB          database.Pool
	OAuth       osu.TokenExchanger
	CallbackURI string
	Links       linking.Service
	Members     handler.MemberSearcher
	GuildID     string
	Pages       *web.Pages
}

type Server struct {
	httpServer *http.Server
	limiter    *RateLimiter
	sslDir     string
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	limiter := NewRateLimiter(opts.RateLimitPerMinute, opts.TrustedProxies, RateLimitCleanupPeriod)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           newRouter(opts, deps, limiter),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		limiter: limiter,
		sslDir:  opts.SSLDir,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func newRouter(opts Options, deps Dependencies, limiter *RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(CORSMiddleware(opts.CORSAllowedOrigin))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DB))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	if deps.Pages != nil {
		r.Get("/", deps.Pages.HandleIndex())
		r.Get("/oauth/osu/callback", deps.Pages.HandleCallback())
		r.Handle("/static/*", deps.Pages.Static())
	}

	oauthHandlers := handler.NewOAuthHandlers(deps.OAuth, deps.CallbackURI)
	linkingHandlers := handler.NewLinkingHandlers(deps.Links)
	discordHandlers := handler.NewDiscordHandlers(deps.Members, deps.GuildID)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Get("/", handler.HandleAPIInfo(opts.APIBaseURL))

		r.Route("/oauth/osu", func(r chi.Router) {
			r.Post("/callback", oauthHandlers.HandleCallback())
			r.Post("/refresh", oauthHandlers.HandleRefresh())

			r.Route("/link/discord", func(r chi.Router) {
				r.Post("/", linkingHandlers.HandleLink())
				r.Get("/{id}", linkingHandlers.HandleStatus())
				r.Delete("/{id}", linkingHandlers.HandleUnlink())
			})
		})

		r.Post("/discord/search-user", discordHandlers.HandleSearchUser())
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, prefix := range quietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// loadTLSConfig returns nil when any of the key, certificate or CA bundle is
// missing from dir. The bundle is appended to the served chain.
func loadTLSConfig(dir string) (*tls.Config, error) {
	if dir == "" {
		return nil, nil
	}

	keyPath := filepath.Join(dir, TLSKeyFile)
	certPath := filepath.Join(dir, TLSCertFile)
	bundlePath := filepath.Join(dir, TLSCABundleFile)
	for _, path := range []string{keyPath, certPath, bundlePath} {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, nil
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load key pair: %w", err)
	}

	bundle, err := os.ReadFile(bundlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA bundle: %w", err)
	}
	for {
		var block *pem.Block
		block, bundle = pem.Decode(bundle)
		if block == nil {
			break
		}
		if block.Type == "CERTIFICATE" {
			cert.Certificate = append(cert.Certificate, block.Bytes)
		}
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Start serves HTTPS when TLS material is present in the SSL directory, HTTP otherwise.
func (s *Server) Start() error {
	tlsConfig, err := loadTLSConfig(s.sslDir)
	if err != nil {
		return err
	}

	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr, "tls", tlsConfig != nil)
	if tlsConfig == nil {
		slog.Default().Info(LogMsgTLSDisabled, "ssl_dir", s.sslDir)
		return s.httpServer.ListenAndServe()
	}

	slog.Default().Info(LogMsgTLSEnabled, "ssl_dir", s.sslDir)
	s.httpServer.TLSConfig = tlsConfig
	return s.httpServer.ListenAndServeTLS("", "")
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.limiter.Stop()
	return s.httpServer.Shutdown(ctx)
}
