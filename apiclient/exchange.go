package apiclient

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-boarding-client/internal/errors"
	"golang.org/x/oauth2"
)

// CredentialExchangeError is returned for every failed credential exchange: network errors,
// rejected credentials and unusable responses alike.
type CredentialExchangeError struct {
	StatusCode int // HTTP status when the service answered, 0 otherwise
	Err        error
}

func (e *CredentialExchangeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", errors.ErrCredentialExchange, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", errors.ErrCredentialExchange, e.Err)
}

func (e *CredentialExchangeError) Unwrap() error {
	return e.Err
}

func (e *CredentialExchangeError) Is(target error) bool {
	return target == errors.ErrCredentialExchange
}

// ExchangeCredentials trades a username and password for an access token.
// The request is a single form-encoded password grant against the token endpoint.
func (c *Client) ExchangeCredentials(ctx context.Context, username, password string) (string, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient())
	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		exchangeErr := &CredentialExchangeError{Err: err}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			exchangeErr.StatusCode = retrieveErr.Response.StatusCode
		}
		return "", exchangeErr
	}

	return tok.AccessToken, nil
}
