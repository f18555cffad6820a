// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-psyche-vault/models"
)

const (
	FieldID               = "id"
	FieldCriedAt          = "cried_at"
	FieldEmotion          = "emotions"
	FieldFeelingIntensity = "feeling_intensity"
	FieldRecentSmileThing = "recent_smile_thing"

	FieldRole    = "role"
	FieldContent = "content"
	FieldState   = "state"
	FieldSource  = "source"
)

var (
	journalEntryFields = []string{FieldCriedAt, FieldEmotion, FieldFeelingIntensity, FieldRecentSmileThing}
	chatMessageFields  = []string{FieldRole, FieldContent, FieldState, FieldSource}
)

type DomainValidator struct{}

func NewDomainValidator() Validator {
	return &DomainValidator{}
}

func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.JournalEntry:
		return v.validateJournalEntry(ctx, value, fields...)
	case *models.JournalEntry:
		return v.validateJournalEntry(ctx, *value, fields...)

	case models.ChatMessage:
		return v.validateChatMessage(ctx, value, fields...)
	case *models.ChatMessage:
		return v.validateChatMessage(ctx, *value, fields...)

	case models.LegacyChatMessage:
		return v.validateLegacyChatMessage(ctx, value)
	case *models.LegacyChatMessage:
		return v.validateLegacyChatMessage(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *DomainValidator) validateJournalEntry(_ context.Context, entry models.JournalEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = journalEntryFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrInvalidID
			}
		case FieldCriedAt:
			if entry.CriedAt.IsZero() {
				return ErrMissingCriedAt
			}
		case FieldEmotion:
			if !entry.Emotion.Valid() {
				return ErrInvalidEmotion
			}
		case FieldFeelingIntensity:
			if entry.FeelingIntensity < models.MinFeelingIntensity || entry.FeelingIntensity > models.MaxFeelingIntensity {
				return ErrInvalidFeelingIntensity
			}
		case FieldRecentSmileThing:
			if strings.TrimSpace(entry.RecentSmileThing) == "" {
				return ErrEmptyRecentSmileThing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateChatMessage(_ context.Context, msg models.ChatMessage, fields ...string) error {
	if len(fields) == 0 {
		fields = chatMessageFields
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(msg.ID) == "" {
				return ErrInvalidID
			}
		case FieldRole:
			if !msg.Role.Valid() {
				return ErrInvalidRole
			}
		case FieldContent:
			if msg.Content == "" {
				return ErrEmptyContent
			}
		case FieldState:
			if msg.State != "" && !msg.State.Valid() {
				return ErrInvalidState
			}
		case FieldSource:
			if msg.Source != "" && !msg.Source.Valid() {
				return ErrInvalidSource
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLegacyChatMessage only requires what is needed to re-save the
// message: a role and some content.
func (v *DomainValidator) validateLegacyChatMessage(_ context.Context, msg models.LegacyChatMessage) error {
	if msg.Role == "" {
		return ErrInvalidRole
	}
	if msg.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
