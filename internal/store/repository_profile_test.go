// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &profileRepository{db: db, logger: logger.Nop()}, mock
}

func TestGetProfile_Success(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	rows := sqlmock.NewRows([]string{"id", "encryption_key_check"}).AddRow("u-1", "enc_v1:aa:bb")
	mock.ExpectQuery(q("SELECT id, encryption_key_check FROM users_data WHERE id = $1")).
		WithArgs("u-1").
		WillReturnRows(rows)

	profile, err := repo.GetProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", profile.ID)
	require.NotNil(t, profile.EncryptionKeyCheck)
	assert.Equal(t, "enc_v1:aa:bb", *profile.EncryptionKeyCheck)
	assert.True(t, profile.HasKeyCheck())
}

func TestGetProfile_NullKeyCheck(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	rows := sqlmock.NewRows([]string{"id", "encryption_key_check"}).AddRow("u-1", nil)
	mock.ExpectQuery(q("FROM users_data")).WithArgs("u-1").WillReturnRows(rows)

	profile, err := repo.GetProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Nil(t, profile.EncryptionKeyCheck)
	assert.False(t, profile.HasKeyCheck())
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(q("FROM users_data")).WithArgs("u-1").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfile_TransientError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(q("FROM users_data")).WithArgs("u-1").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetProfile(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrTransient)
}

func TestGetProfile_PermanentError(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectQuery(q("FROM users_data")).WithArgs("u-1").WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := repo.GetProfile(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.False(t, errors.Is(err, ErrTransient))
}

func TestSetKeyCheckIfAbsent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "written", affected: 1, want: true},
		{name: "already present", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestProfileRepo(t)

			mock.ExpectExec(q("INSERT INTO users_data (id,encryption_key_check) VALUES ($1,$2) ON CONFLICT (id) DO UPDATE SET encryption_key_check = EXCLUDED.encryption_key_check")+".*"+q("WHERE users_data.encryption_key_check IS NULL")).
				WithArgs("u-1", "enc_v1:check").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			written, err := repo.SetKeyCheckIfAbsent(context.Background(), "u-1", "enc_v1:check")
			require.NoError(t, err)
			assert.Equal(t, tt.want, written)
		})
	}
}

func TestSetKeyCheckIfAbsent_Error(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectExec(q("INSERT INTO users_data")).WillReturnError(errors.New("boom"))

	_, err := repo.SetKeyCheckIfAbsent(context.Background(), "u-1", "enc_v1:check")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestClearKeyCheck(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectExec(q("UPDATE users_data SET encryption_key_check = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(nil, "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearKeyCheck(context.Background(), "u-1"))
}

func TestClearKeyCheck_Error(t *testing.T) {
	repo, mock := newTestProfileRepo(t)

	mock.ExpectExec(q("UPDATE users_data")).WillReturnError(pgError(pgerrcode.DeadlockDetected))

	err := repo.ClearKeyCheck(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrTransient)
}
