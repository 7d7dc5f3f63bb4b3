package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jrsteele09/go-job-tracker/auth"
	"github.com/jrsteele09/go-job-tracker/internal/config"
	"github.com/jrsteele09/go-job-tracker/jobs"
	"github.com/jrsteele09/go-job-tracker/token"
	"github.com/jrsteele09/go-job-tracker/users"
	"github.com/rs/zerolog/log"
)

// Repos are the stores the server is built over.
type Repos struct {
	Users users.UserRepo
	Jobs  jobs.Repo
}

type Server struct {
	dev        bool
	router     chi.Router
	routes     []string
	config     config.Config
	tokens     *token.Service
	auth       *auth.Service
	guard      *auth.Guard
	gatekeeper *auth.Gatekeeper
	jobs       *jobs.Service
}

func New(cfg config.Config, repos Repos) (*Server, error) {
	if repos.Users == nil || repos.Jobs == nil {
		return nil, fmt.Errorf("[Server New] user and job repositories are required")
	}

	tokens, err := token.NewServiceFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create token service: %w", err)
	}
	creds := users.NewCredentialStore(cfg.GetBcryptCost())

	s := &Server{
		dev:        cfg.IsDev(),
		router:     chi.NewRouter(),
		config:     cfg,
		tokens:     tokens,
		auth:       auth.NewService(repos.Users, creds, tokens),
		guard:      auth.NewGuard(tokens, auth.NewResolver(repos.Users)),
		gatekeeper: auth.NewGatekeeper(tokens, RouteLogin),
		jobs:       jobs.NewService(repos.Jobs),
	}

	// chi requires every Use before the first route
	s.router.Use(
		chimw.RealIP,
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.WWWRedirectMiddleware,
		s.CorsMiddleware,
		s.gatekeeper.Middleware,
	)

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// RegisterRouteHandler registers handler for a "METHOD /path" pattern.
func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	method, path := splitPattern(pattern)
	s.routes = append(s.routes, pattern)
	if method == "" {
		s.router.Handle(path, handler)
		return
	}
	s.router.Method(method, path, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.RegisterRouteHandler(pattern, http.HandlerFunc(handler))
}

func splitPattern(pattern string) (method, path string) {
	parts := strings.SplitN(pattern, " ", 2)
	if len(parts) > 1 {
		return parts[0], parts[1]
	}
	return "", parts[0]
}

func (s *Server) logRoutes() {
	if !s.dev {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		logRoute(splitPattern(route))
	}
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colourMethod(method), path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
