// Package auth verifies bearer tokens issued by a Keycloak realm and
// turns them into request principals.
package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

type Authenticator interface {
	Authenticate(ctx context.Context, bearerToken string) (Principal, error)
}

type Principal struct {
	Issuer   string
	Subject  string
	Audience any
	Claims   map[string]any
}

// Config is the auth surface of the service configuration. With Enabled
// false the service runs open, which is the usual mode on disposable
// test-lab hosts.
type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string
}
