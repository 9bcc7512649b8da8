package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName  string
	Error    string
	Username string // Preserve username on error
}

// LoginPageUIHandler displays the login page (GET /login)
func (s *Server) LoginPageUIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName:  s.config.GetAppName(),
			Error:    r.URL.Query().Get("error"),
			Username: r.URL.Query().Get("username"),
		}
		s.render(w, loginTemplate, data)
	}
}

// LoginSubmissionHandler exchanges the submitted credentials for a token and sends the user
// to the dashboard for their role. On any failure the session is left as it was.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")
		if username == "" || password == "" {
			s.renderLoginError(w, r, msgCredentialsRequired, username)
			return
		}

		rawToken, err := s.api.ExchangeCredentials(r.Context(), username, password)
		if err != nil {
			log.Err(err).Str("username", username).Msg("Login failed")
			s.renderLoginError(w, r, msgLoginFailed, username)
			return
		}

		// Route on the decoded role before committing, so an unknown role leaves no trace
		identity, err := s.session.Decode(rawToken)
		if err != nil {
			log.Err(err).Str("username", username).Msg("Login failed: issued token could not be decoded")
			s.renderLoginError(w, r, msgLoginFailed, username)
			return
		}

		destination, err := destinationFor(identity.Role)
		if err != nil {
			log.Warn().Err(err).Str("username", username).Msg("Login refused")
			s.renderLoginError(w, r, msgUnknownRole, username)
			return
		}

		if _, err := s.session.Login(r.Context(), rawToken); err != nil {
			log.Err(err).Str("username", username).Msg("Login failed")
			s.renderLoginError(w, r, msgLoginFailed, username)
			return
		}

		log.Info().Str("subject", identity.Subject).Str("role", string(identity.Role)).Msg("Logged in")
		redirectSuccess(w, r, destination)
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.session.Logout()
		redirectSuccess(w, r, RouteLogin)
	}
}

// renderLoginError redirects to login page with an error message
func (s *Server) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	redirectURL := RouteLogin + "?error=" + url.QueryEscape(errorMsg)
	if username != "" {
		redirectURL += "&username=" + url.QueryEscape(username)
	}

	redirectSuccess(w, r, redirectURL)
}
