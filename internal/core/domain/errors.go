package domain

import "errors"

// ErrBadCredentials covers both an unknown username and a wrong password.
// The two cases are deliberately indistinguishable so usernames cannot be
// enumerated by observing different failure reasons.
var ErrBadCredentials = errors.New("user or password is invalid")

// ErrUsernameTaken surfaces the store's uniqueness constraint on registration.
var ErrUsernameTaken = errors.New("username already exists")

// ErrInvalidInput means a request carried values the domain rejects, such as
// an empty username or password on registration.
var ErrInvalidInput = errors.New("invalid input")

// ErrRoleNotFound means the closed role catalog is missing an expected entry.
var ErrRoleNotFound = errors.New("role not found")

// ErrIdentityNotFound means a token's subject no longer exists. A valid token
// does not imply the subject still does.
var ErrIdentityNotFound = errors.New("identity not found")

// ErrTweetNotFound covers both a tweet that does not exist and a tweet owned
// by someone else, preventing existence probing on other users' resources.
var ErrTweetNotFound = errors.New("tweet not found")

// ErrInsufficientScope means the token is trustworthy but lacks the scope the
// operation requires.
var ErrInsufficientScope = errors.New("insufficient scope")
