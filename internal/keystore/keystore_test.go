// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keystore

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "user-1"

// failingStorage fails every operation with err.
type failingStorage struct {
	err error
}

func (f failingStorage) GetItem(context.Context, string) (string, error) { return "", f.err }
func (f failingStorage) SetItem(context.Context, string, string) error   { return f.err }
func (f failingStorage) DeleteItem(context.Context, string) error        { return f.err }

func testKey(b byte) []byte {
	return bytes.Repeat([]byte{b}, 32)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "enc_key_v1_user-1", ActiveKeyName(testUserID))
	assert.Equal(t, "enc_key_candidate_v1_user-1", CandidateKeyName(testUserID))
}

func TestKeyStore_ActiveSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	ks := NewKeyStore(storage)

	assert.Nil(t, ks.ActiveKey(ctx, testUserID))
	assert.False(t, ks.HasActiveKey(ctx, testUserID))

	key := testKey(0xAB)
	require.NoError(t, ks.SetActiveKey(ctx, testUserID, key))

	assert.Equal(t, key, ks.ActiveKey(ctx, testUserID))
	assert.True(t, ks.HasActiveKey(ctx, testUserID))
	assert.False(t, ks.HasCandidateKey(ctx, testUserID), "slots must be independent")

	raw, err := storage.GetItem(ctx, ActiveKeyName(testUserID))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("ab", 32), raw, "keys are persisted as lowercase hex")

	require.NoError(t, ks.ClearActiveKey(ctx, testUserID))
	assert.Nil(t, ks.ActiveKey(ctx, testUserID))
}

func TestKeyStore_CandidateSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	ks := NewKeyStore(NewMemoryStorage())

	key := testKey(0x01)
	require.NoError(t, ks.SetCandidateKey(ctx, testUserID, key))
	assert.Equal(t, key, ks.CandidateKey(ctx, testUserID))
	assert.True(t, ks.HasCandidateKey(ctx, testUserID))
	assert.False(t, ks.HasActiveKey(ctx, testUserID))

	require.NoError(t, ks.ClearCandidateKey(ctx, testUserID))
	assert.False(t, ks.HasCandidateKey(ctx, testUserID))
}

func TestKeyStore_SlotsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	ks := NewKeyStore(NewMemoryStorage())

	require.NoError(t, ks.SetActiveKey(ctx, "alice", testKey(1)))
	assert.Nil(t, ks.ActiveKey(ctx, "bob"))
}

func TestKeyStore_ClearAbsentSlot(t *testing.T) {
	ks := NewKeyStore(NewMemoryStorage())
	assert.NoError(t, ks.ClearActiveKey(context.Background(), testUserID))
	assert.NoError(t, ks.ClearCandidateKey(context.Background(), testUserID))
}

func TestKeyStore_SetRejectsWrongLength(t *testing.T) {
	ctx := context.Background()
	ks := NewKeyStore(NewMemoryStorage())

	err := ks.SetActiveKey(ctx, testUserID, []byte("short"))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)

	err = ks.SetCandidateKey(ctx, testUserID, make([]byte, 33))
	assert.ErrorIs(t, err, ErrInvalidKeyLength)
}

func TestKeyStore_CorruptValuesReadAsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "too short", value: strings.Repeat("a", 62)},
		{name: "too long", value: strings.Repeat("a", 66)},
		{name: "odd length", value: strings.Repeat("a", 63)},
		{name: "non hex", value: strings.Repeat("zz", 32)},
		{name: "garbage", value: "not a key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			storage := NewMemoryStorage()
			require.NoError(t, storage.SetItem(ctx, ActiveKeyName(testUserID), tt.value))

			ks := NewKeyStore(storage)
			assert.Nil(t, ks.ActiveKey(ctx, testUserID))
			assert.False(t, ks.HasActiveKey(ctx, testUserID))
		})
	}
}

func TestKeyStore_UppercaseAndPaddedValuesAreAccepted(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.SetItem(ctx, ActiveKeyName(testUserID), " "+strings.Repeat("AB", 32)+"\n"))

	ks := NewKeyStore(storage)
	assert.Equal(t, testKey(0xAB), ks.ActiveKey(ctx, testUserID))
}

func TestKeyStore_ReadErrorsAreSwallowed(t *testing.T) {
	ctx := context.Background()
	ks := NewKeyStore(failingStorage{err: errors.New("keychain locked")})

	assert.Nil(t, ks.ActiveKey(ctx, testUserID))
	assert.Nil(t, ks.CandidateKey(ctx, testUserID))
	assert.False(t, ks.HasActiveKey(ctx, testUserID))
	assert.False(t, ks.HasCandidateKey(ctx, testUserID))
}

func TestKeyStore_WriteErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	backendErr := errors.New("keychain locked")
	ks := NewKeyStore(failingStorage{err: backendErr})

	assert.ErrorIs(t, ks.SetActiveKey(ctx, testUserID, testKey(1)), backendErr)
	assert.ErrorIs(t, ks.ClearCandidateKey(ctx, testUserID), backendErr)

	_, err := ks.CreateActiveKey(ctx, testUserID)
	assert.ErrorIs(t, err, backendErr)
}

func TestKeyStore_CreateActiveKey(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	ks := NewKeyStore(storage)

	key, err := ks.CreateActiveKey(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, key, 32)
	assert.Equal(t, key, ks.ActiveKey(ctx, testUserID))

	raw, err := storage.GetItem(ctx, ActiveKeyName(testUserID))
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(key), raw)

	other, err := ks.CreateActiveKey(ctx, testUserID)
	require.NoError(t, err)
	assert.NotEqual(t, key, other, "each call generates fresh key material")
}

func TestKeyStore_CreateActiveKeyGeneratorError(t *testing.T) {
	genErr := errors.New("entropy exhausted")
	ks := &keyStore{
		storage:  NewMemoryStorage(),
		generate: func() ([]byte, error) { return nil, genErr },
	}

	_, err := ks.CreateActiveKey(context.Background(), testUserID)
	assert.ErrorIs(t, err, genErr)
	assert.False(t, ks.HasActiveKey(context.Background(), testUserID))
}
