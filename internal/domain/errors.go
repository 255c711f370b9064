package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// Verification failures are kept distinct so the client can tell a mistyped
	// code from one that has lapsed. Both map to 400 at the boundary.
	ErrInvalidCode = errors.New("invalid code")
	ErrCodeExpired = errors.New("code expired")

	// External-collaborator failures (server-fault, 500).
	ErrDispatch = errors.New("dispatch failed")
	ErrUpstream = errors.New("upstream failed")
)
