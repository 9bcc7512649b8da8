package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jrsteele09/go-boarding-client/internal/utils"
	"github.com/rs/zerolog/log"
)

// SessionResponse describes the current session to scripts and other local tools
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Subject       string     `json:"subject,omitempty"`
	Role          string     `json:"role,omitempty"`
	Realm         string     `json:"realm,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// SessionAPIHandler reports the current identity (GET /api/session). The token is never exposed.
func (s *Server) SessionAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := SessionResponse{}
		if identity, ok := s.session.CurrentIdentity(); ok {
			resp.Authenticated = true
			resp.Subject = identity.Subject
			resp.Role = string(identity.Role)
			resp.Realm = identity.Realm
			if !identity.ExpiresAt.IsZero() {
				resp.ExpiresAt = utils.Ptr(identity.ExpiresAt.UTC())
			}
		}

		w.Header().Set("Content-Type", contentTypeJSON)
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Err(err).Msg("Failed to encode session response")
		}
	}
}
