// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const pathProfiles = "/users_data"

type profileRepository struct {
	*Client
}

// NewProfileRepository returns a [store.ProfileRepository] over PostgREST.
func NewProfileRepository(c *Client) store.ProfileRepository {
	return &profileRepository{Client: c}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	var profiles []models.UserProfile
	_, err := r.do(r.request(ctx).
		SetQueryParam("select", "id,encryption_key_check").
		SetQueryParam("id", eq(userID)),
		http.MethodGet, pathProfiles, &profiles)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.profileRepository.GetProfile").Str("user_id", userID).Msg("failed to load profile")
		return models.UserProfile{}, err
	}
	if len(profiles) == 0 {
		return models.UserProfile{}, store.ErrProfileNotFound
	}

	return profiles[0], nil
}

// SetKeyCheckIfAbsent patches only a profile whose key-check is still null;
// an empty representation means nothing was written.
func (r *profileRepository) SetKeyCheckIfAbsent(ctx context.Context, userID, keyCheck string) (bool, error) {
	var updated []models.UserProfile
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferRepresentation).
		SetQueryParam("id", eq(userID)).
		SetQueryParam("encryption_key_check", "is.null").
		SetBody(map[string]any{
			"encryption_key_check": keyCheck,
			"updated_at":           time.Now().UTC(),
		}),
		http.MethodPatch, pathProfiles, &updated)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.profileRepository.SetKeyCheckIfAbsent").Str("user_id", userID).Msg("failed to store key check")
		return false, err
	}

	return len(updated) > 0, nil
}

func (r *profileRepository) ClearKeyCheck(ctx context.Context, userID string) error {
	_, err := r.do(r.request(ctx).
		SetHeader(headerPrefer, preferMinimal).
		SetQueryParam("id", eq(userID)).
		SetBody(map[string]any{
			"encryption_key_check": nil,
			"updated_at":           time.Now().UTC(),
		}),
		http.MethodPatch, pathProfiles, nil)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "adapter.profileRepository.ClearKeyCheck").Str("user_id", userID).Msg("failed to clear key check")
		return err
	}
	return nil
}
