// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID               = errors.New("invalid id")
	ErrMissingCriedAt          = errors.New("cried at is required")
	ErrInvalidEmotion          = errors.New("invalid emotion")
	ErrInvalidFeelingIntensity = errors.New("feeling intensity must be between 1 and 10")
	ErrEmptyRecentSmileThing   = errors.New("recent smile thing is required")

	ErrInvalidRole   = errors.New("invalid chat role")
	ErrEmptyContent  = errors.New("message content is required")
	ErrInvalidState  = errors.New("invalid chat state")
	ErrInvalidSource = errors.New("invalid chat source")
)
