package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-boarding-client/internal/config"
	"github.com/jrsteele09/go-boarding-client/session"
	"github.com/rs/zerolog/log"
)

// CredentialExchanger trades credentials for a token with the remote service
type CredentialExchanger interface {
	ExchangeCredentials(ctx context.Context, username, password string) (string, error)
}

type Server struct {
	env     string // Environment (e.g., "DEV", "PROD")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	session *session.Core
	api     CredentialExchanger
	pages   map[string]*template.Template
}

func New(config config.Config, core *session.Core, api CredentialExchanger) (*Server, error) {
	s := &Server{
		env:     config.GetEnv(),
		mux:     http.NewServeMux(),
		config:  config,
		session: core,
		api:     api,
		pages:   make(map[string]*template.Template),
	}

	for _, page := range []string{loginTemplate, managerDashboardTemplate, renterDashboardTemplate} {
		tmpl, err := ParseTemplate(page)
		if err != nil {
			return nil, fmt.Errorf("[Server New] failed to parse %s: %w", page, err)
		}
		s.pages[page] = tmpl
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	log.Info().Msgf("[%-19s] %s", colourMethod(method), path)
}

func colourMethod(method string) string {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if colour, ok := methodColors[method]; ok {
		return colour + paddedMethod + ResetColor
	}
	return Gray + paddedMethod + ResetColor
}

// render executes a pre-parsed page template
func (s *Server) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := s.pages[page].Execute(w, data); err != nil {
		log.Err(err).Str("template", page).Msg("Failed to render template")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
