// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// UserIDFromAccessToken returns the "sub" claim of a session JWT.
//
// The signature is not verified: the server verifies it on every request,
// and the client only needs the subject to address its own rows.
func UserIDFromAccessToken(accessToken string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(strings.TrimSpace(accessToken), jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAccessToken, err)
	}
	if sub == "" {
		return "", fmt.Errorf("%w: subject is empty", ErrInvalidAccessToken)
	}

	return sub, nil
}
