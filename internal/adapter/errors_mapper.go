// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgerrcode"
)

// PostgREST error codes that do not follow from the HTTP status alone.
const (
	pgrstSingularNoRows = "PGRST116"
	pgrstJWTExpired     = "PGRST301"
	pgrstJWTAnonymous   = "PGRST302"
)

// postgrestError is the body PostgREST sends with a non-2xx status. Code is
// either a PGRST code or the SQLSTATE raised by Postgres.
type postgrestError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e postgrestError) String() string {
	s := e.Code + ": " + e.Message
	if e.Details != "" {
		s += " (" + e.Details + ")"
	}
	return s
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	pgErr, detail := decodeErrorBody(resp)

	if sentinel := sentinelFor(status, pgErr.Code); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", status, detail)
}

// decodeErrorBody returns the PostgREST error, if the body is one, and a
// one-line description for the wrapped error.
func decodeErrorBody(resp *resty.Response) (postgrestError, string) {
	body := strings.TrimSpace(string(resp.Body()))

	var pgErr postgrestError
	if err := json.Unmarshal([]byte(body), &pgErr); err == nil && pgErr.Code != "" {
		return pgErr, pgErr.String()
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return postgrestError{}, body
}

func sentinelFor(status int, code string) error {
	switch code {
	case pgrstSingularNoRows:
		return ErrNotFound
	case pgrstJWTExpired, pgrstJWTAnonymous:
		return ErrUnauthorized
	case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation:
		return ErrConflict
	case pgerrcode.InsufficientPrivilege:
		return ErrForbidden
	}

	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrServiceUnavailable
	case http.StatusInternalServerError:
		return ErrInternalServerError
	}
	return nil
}
