package apiclient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

// authTransport reads the token on every round trip so a login or logout takes effect
// on the very next call
type authTransport struct {
	base     http.RoundTripper
	tokens   TokenReader
	logCalls bool
}

func (t *authTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())

	if token, ok := t.tokens.Get(); ok && r.Header.Get(HeaderAuthorization) == "" {
		r.Header.Set(HeaderAuthorization, "Bearer "+token)
	}
	if r.Header.Get(HeaderRequestID) == "" {
		r.Header.Set(HeaderRequestID, uuid.NewString())
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(r)
	if t.logCalls {
		logCall(r, resp, err, time.Since(start))
	}
	return resp, err
}

func logCall(r *http.Request, resp *http.Response, err error, duration time.Duration) {
	if err != nil {
		log.Err(err).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Str("request_id", r.Header.Get(HeaderRequestID)).
			Msg("http call completed with error")
		return
	}

	event := log.Info()
	if resp.StatusCode >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("request_id", r.Header.Get(HeaderRequestID)).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("http call completed")
}
