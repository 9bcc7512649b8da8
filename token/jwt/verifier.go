package jwt

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/jrsteele09/go-boarding-client/internal/errors"
)

// Verifier checks that a raw token was issued by a trusted authority.
// Decode never calls a Verifier; callers that need authenticity run one explicitly.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) error
}

// VerifierFunc adapts a function to the Verifier interface
type VerifierFunc func(ctx context.Context, rawToken string) error

func (f VerifierFunc) Verify(ctx context.Context, rawToken string) error {
	return f(ctx, rawToken)
}

// OIDCVerifier verifies tokens against the signing keys published by an OIDC issuer
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

var _ Verifier = (*OIDCVerifier)(nil)

// NewOIDCVerifier discovers the issuer's configuration and keys
func NewOIDCVerifier(ctx context.Context, issuer string) (*OIDCVerifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("[jwt NewOIDCVerifier] failed to create OIDC provider: %w", err)
	}
	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{SkipClientIDCheck: true}),
	}, nil
}

// NewOIDCVerifierFromKeySet builds a verifier for an issuer whose keys are already known
func NewOIDCVerifierFromKeySet(issuer string, keySet oidc.KeySet) *OIDCVerifier {
	return &OIDCVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{SkipClientIDCheck: true}),
	}
}

func (v *OIDCVerifier) Verify(ctx context.Context, rawToken string) error {
	if _, err := v.verifier.Verify(ctx, rawToken); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidToken, err)
	}
	return nil
}
