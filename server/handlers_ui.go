package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// DashboardPageData is the template model for both dashboards
type DashboardPageData struct {
	AppName   string
	Subject   string
	Role      string
	Realm     string
	ExpiresAt time.Time
}

// IndexHandler sends the user to their dashboard, or to the login page
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := s.session.CurrentIdentity()
		if !ok {
			redirectSuccess(w, r, RouteLogin)
			return
		}

		destination, err := destinationFor(identity.Role)
		if err != nil {
			redirectWithError(w, r, RouteLogin, msgUnknownRole)
			return
		}
		redirectSuccess(w, r, destination)
	}
}

func (s *Server) ManagerDashboardHandler() http.HandlerFunc {
	return s.dashboardHandler(managerDashboardTemplate)
}

func (s *Server) RenterDashboardHandler() http.HandlerFunc {
	return s.dashboardHandler(renterDashboardTemplate)
}

func (s *Server) dashboardHandler(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := IdentityFromContext(r.Context())
		if err != nil {
			log.Err(err).Str("path", r.URL.Path).Msg("Dashboard requested without an identity")
			redirectWithError(w, r, RouteLogin, msgLoginRequired)
			return
		}

		s.render(w, page, DashboardPageData{
			AppName:   s.config.GetAppName(),
			Subject:   identity.Subject,
			Role:      string(identity.Role),
			Realm:     identity.Realm,
			ExpiresAt: identity.ExpiresAt,
		})
	}
}
