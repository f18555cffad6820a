// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors for non-2xx PostgREST responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrInvalidBaseURL is returned when the configured API URL is empty or
	// lacks a scheme or host.
	ErrInvalidBaseURL = errors.New("invalid adapter base url")

	// ErrInvalidAccessToken is returned when the access token is not a JWT
	// carrying a subject.
	ErrInvalidAccessToken = errors.New("invalid access token")

	// ErrUnexpectedResponse is returned when a 2xx response body cannot be
	// decoded.
	ErrUnexpectedResponse = errors.New("unexpected response")
)
