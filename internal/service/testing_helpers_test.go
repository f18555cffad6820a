// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-psyche-vault/internal/crypto"
	"github.com/MKhiriev/go-psyche-vault/internal/keystore"
	"github.com/MKhiriev/go-psyche-vault/internal/store"
	"github.com/MKhiriev/go-psyche-vault/models"
)

const testUserID = "user-1"

// memRemote is an in-memory rendition of the remote tables.
type memRemote struct {
	mu       sync.Mutex
	clock    time.Time
	profiles map[string]*string
	entries  []models.JournalEntryRow
	messages []models.ChatMessageRow
	sessions []models.ChatSessionRow
	prompts  map[string]string
}

func newMemRemote() *memRemote {
	return &memRemote{
		clock:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		profiles: make(map[string]*string),
		prompts:  make(map[string]string),
	}
}

func (m *memRemote) storages() *store.Storages {
	return &store.Storages{
		Profiles:     memProfiles{m},
		Journal:      memJournal{m},
		ChatMessages: memMessages{m},
		ChatSessions: memSessions{m},
		Prompts:      memPrompts{m},
	}
}

func (m *memRemote) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memRemote) addProfile(userID string, keyCheck *string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[userID] = keyCheck
}

func (m *memRemote) keyCheck(userID string) *string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[userID]
}

type memProfiles struct{ *memRemote }

func (p memProfiles) GetProfile(_ context.Context, userID string) (models.UserProfile, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	keyCheck, ok := p.profiles[userID]
	if !ok {
		return models.UserProfile{}, store.ErrProfileNotFound
	}
	return models.UserProfile{ID: userID, EncryptionKeyCheck: keyCheck}, nil
}

func (p memProfiles) SetKeyCheckIfAbsent(_ context.Context, userID, keyCheck string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if existing := p.profiles[userID]; existing != nil {
		return false, nil
	}
	p.profiles[userID] = &keyCheck
	return true, nil
}

func (p memProfiles) ClearKeyCheck(_ context.Context, userID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profiles[userID] = nil
	return nil
}

type memJournal struct{ *memRemote }

func (j memJournal) CreateEntry(_ context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	row.CreatedAt = j.tick()
	row.UpdatedAt = row.CreatedAt
	j.entries = append(j.entries, row)
	return row, nil
}

func (j memJournal) GetEntry(_ context.Context, userID, id string) (models.JournalEntryRow, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, row := range j.entries {
		if row.UserID == userID && row.ID == id {
			return row, nil
		}
	}
	return models.JournalEntryRow{}, store.ErrEntryNotFound
}

func (j memJournal) ListEntries(_ context.Context, userID string, limit int) ([]models.JournalEntryRow, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	var out []models.JournalEntryRow
	for _, row := range j.entries {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	slices.SortStableFunc(out, func(a, b models.JournalEntryRow) int { return b.CriedAt.Compare(a.CriedAt) })
	return out[:min(limit, len(out))], nil
}

func (j memJournal) UpdateEntry(_ context.Context, row models.JournalEntryRow) (models.JournalEntryRow, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, existing := range j.entries {
		if existing.UserID == row.UserID && existing.ID == row.ID {
			row.CreatedAt = existing.CreatedAt
			row.UpdatedAt = j.tick()
			j.entries[i] = row
			return row, nil
		}
	}
	return models.JournalEntryRow{}, store.ErrEntryNotFound
}

func (j memJournal) DeleteEntry(_ context.Context, userID, id string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	before := len(j.entries)
	j.entries = slices.DeleteFunc(j.entries, func(r models.JournalEntryRow) bool { return r.UserID == userID && r.ID == id })
	if len(j.entries) == before {
		return store.ErrEntryNotFound
	}
	return nil
}

func (j memJournal) DeleteAllEntries(_ context.Context, userID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = slices.DeleteFunc(j.entries, func(r models.JournalEntryRow) bool { return r.UserID == userID })
	return nil
}

type memMessages struct{ *memRemote }

func (c memMessages) CreateMessage(_ context.Context, row models.ChatMessageRow) (models.ChatMessageRow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	row.CreatedAt = c.tick()
	row.UpdatedAt = row.CreatedAt
	c.messages = append(c.messages, row)
	return row, nil
}

func (c memMessages) ListMessages(_ context.Context, userID string, limit int) ([]models.ChatMessageRow, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.ChatMessageRow
	for _, row := range c.messages {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out[:min(limit, len(out))], nil
}

func (c memMessages) CountMessages(_ context.Context, userID string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, row := range c.messages {
		if row.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (c memMessages) DeleteOldestMessages(_ context.Context, userID string, n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = slices.DeleteFunc(c.messages, func(r models.ChatMessageRow) bool {
		if r.UserID != userID || n == 0 {
			return false
		}
		n--
		return true
	})
	return nil
}

func (c memMessages) DeleteAllMessages(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = slices.DeleteFunc(c.messages, func(r models.ChatMessageRow) bool { return r.UserID == userID })
	return nil
}

type memSessions struct{ *memRemote }

func (s memSessions) GetLatestSession(_ context.Context, userID string) (models.ChatSessionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.sessions) - 1; i >= 0; i-- {
		if s.sessions[i].UserID == userID {
			return s.sessions[i], nil
		}
	}
	return models.ChatSessionRow{}, store.ErrSessionNotFound
}

func (s memSessions) UpsertSession(_ context.Context, row models.ChatSessionRow) (models.ChatSessionRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row.UpdatedAt = s.tick()
	for i, existing := range s.sessions {
		if existing.ID == row.ID {
			row.CreatedAt = existing.CreatedAt
			s.sessions[i] = row
			return row, nil
		}
	}
	row.CreatedAt = row.UpdatedAt
	s.sessions = append(s.sessions, row)
	return row, nil
}

func (s memSessions) ClearSummaries(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].UserID == userID {
			s.sessions[i].SummaryEnc = nil
		}
	}
	return nil
}

func (s memSessions) DeleteAllSessions(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = slices.DeleteFunc(s.sessions, func(r models.ChatSessionRow) bool { return r.UserID == userID })
	return nil
}

type memPrompts struct{ *memRemote }

func (p memPrompts) GetPrompt(_ context.Context, name string) (models.Prompt, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	prompt, ok := p.prompts[name]
	if !ok {
		return models.Prompt{}, store.ErrPromptNotFound
	}
	return models.Prompt{Name: name, Prompt: prompt}, nil
}

// memDevice is the device-local key/value store.
type memDevice struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemDevice() *memDevice {
	return &memDevice{items: make(map[string]string)}
}

func (d *memDevice) GetItem(_ context.Context, key string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	value, ok := d.items[key]
	if !ok {
		return "", store.ErrItemNotFound
	}
	return value, nil
}

func (d *memDevice) SetItem(_ context.Context, key, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items[key] = value
	return nil
}

func (d *memDevice) DeleteItem(_ context.Context, key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.items, key)
	return nil
}

func (d *memDevice) has(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.items[key]
	return ok
}

// scenario wires real services to in-memory backends.
type scenario struct {
	remote   *memRemote
	device   *memDevice
	keys     keystore.KeyStore
	services *Services
}

func newScenario(t *testing.T) *scenario {
	t.Helper()
	remote := newMemRemote()
	remote.addProfile(testUserID, nil)
	device := newMemDevice()
	keys := keystore.NewKeyStore(keystore.NewMemoryStorage())

	return &scenario{
		remote:   remote,
		device:   device,
		keys:     keys,
		services: NewServices(remote.storages(), keys, device),
	}
}

// ready brings the scenario user to the ready status.
func (s *scenario) ready(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	status, err := s.services.Encryption.Status(ctx, testUserID)
	require.NoError(t, err)
	require.Equal(t, models.StatusNeedsBackup, status)
	require.NoError(t, s.services.Encryption.ConfirmBackup(ctx, testUserID))
}

func newKey(t *testing.T) []byte {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key
}

func keyCheckFor(t *testing.T, userID string, key []byte) *string {
	t.Helper()
	keyCheck, err := crypto.NewKeyCheck(crypto.NewEnvelopeCipher(), userID, key)
	require.NoError(t, err)
	return &keyCheck
}

func requireCode(t *testing.T, err error, code models.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, CodeOf(err), "error: %v", err)
}
