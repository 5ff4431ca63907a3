package services

import "errors"

// Business-rule errors. Handlers map these onto the response envelope; the
// messages clients see live in the handlers, not here.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password so login failures are indistinguishable to a caller probing
	// for accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists means the requested username is already held by another
	// account.
	ErrUserExists = errors.New("user already exists")
	// ErrPasswordPair means exactly one of password/oldPassword was sent;
	// changing a password requires both.
	ErrPasswordPair = errors.New("password and old password must be sent together")
	// ErrPasswordMismatch means the supplied old password does not match the
	// stored hash.
	ErrPasswordMismatch = errors.New("old password does not match")
	// ErrProductExists means another product already holds the requested name.
	ErrProductExists = errors.New("product already exists")
)
