package ports

import "context"

// LoginResult is the successful outcome of a login: a signed bearer token and
// its lifetime in seconds.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// LoginService turns credentials into a signed token. Every failure mode that
// would reveal whether the username exists collapses into
// domain.ErrBadCredentials.
type LoginService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}
