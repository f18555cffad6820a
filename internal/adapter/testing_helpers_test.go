// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-psyche-vault/internal/config"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

const (
	testAPIKey    = "anon-key"
	testUserID    = "u-1"
	timeLayoutRow = "2006-01-02T15:04:05.000000Z07:00"
)

type row = map[string]any

// fakePostgREST is a minimal in-memory PostgREST: eq/is/in filters, order,
// limit, Prefer return/count/resolution and on_conflict upserts.
type fakePostgREST struct {
	mu     sync.Mutex
	tables map[string][]row
	clock  time.Time

	requests []*http.Request
}

func newFakePostgREST() *fakePostgREST {
	return &fakePostgREST{
		tables: make(map[string][]row),
		clock:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakePostgREST) router() http.Handler {
	r := chi.NewRouter()
	r.Use(f.requireAPIKey)
	r.Get("/{table}", f.handleSelect)
	r.Post("/{table}", f.handleInsert)
	r.Patch("/{table}", f.handleUpdate)
	r.Delete("/{table}", f.handleDelete)
	return r
}

func (f *fakePostgREST) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		if r.Header.Get("apikey") != testAPIKey {
			http.Error(w, `{"message":"no api key"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *fakePostgREST) seed(table string, rows ...row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range rows {
		f.stamp(r)
		f.tables[table] = append(f.tables[table], r)
	}
}

func (f *fakePostgREST) rows(table string) []row {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.tables[table])
}

func (f *fakePostgREST) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakePostgREST) stamp(r row) {
	f.clock = f.clock.Add(time.Second)
	now := f.clock.Format(timeLayoutRow)
	if _, ok := r["created_at"]; !ok {
		r["created_at"] = now
	}
	if _, ok := r["updated_at"]; !ok {
		r["updated_at"] = now
	}
}

func (f *fakePostgREST) handleSelect(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := chi.URLParam(r, "table")
	matched := filterRows(f.tables[table], r)
	total := len(matched)
	orderRows(matched, r.URL.Query().Get("order"))
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit < len(matched) {
		matched = matched[:limit]
	}

	if strings.Contains(r.Header.Get("Prefer"), "count=exact") {
		if len(matched) == 0 {
			w.Header().Set("Content-Range", fmt.Sprintf("*/%d", total))
		} else {
			w.Header().Set("Content-Range", fmt.Sprintf("0-%d/%d", len(matched)-1, total))
		}
	}
	writeRows(w, http.StatusOK, matched)
}

func (f *fakePostgREST) handleInsert(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := chi.URLParam(r, "table")
	var body row
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	upsert := strings.Contains(r.Header.Get("Prefer"), "resolution=merge-duplicates")
	conflict := r.URL.Query().Get("on_conflict")
	for i, existing := range f.tables[table] {
		if existing["id"] != body["id"] {
			continue
		}
		if !upsert || conflict != "id" {
			http.Error(w, `{"code":"23505"}`, http.StatusConflict)
			return
		}
		for k, v := range body {
			existing[k] = v
		}
		f.tables[table][i] = existing
		f.respond(w, r, http.StatusOK, []row{existing})
		return
	}

	f.stamp(body)
	f.tables[table] = append(f.tables[table], body)
	f.respond(w, r, http.StatusCreated, []row{body})
}

func (f *fakePostgREST) handleUpdate(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := chi.URLParam(r, "table")
	var body row
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	matched := filterRows(f.tables[table], r)
	for _, m := range matched {
		for k, v := range body {
			m[k] = v
		}
	}
	f.respond(w, r, http.StatusOK, matched)
}

func (f *fakePostgREST) handleDelete(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := chi.URLParam(r, "table")
	matched := filterRows(f.tables[table], r)
	f.tables[table] = slices.DeleteFunc(f.tables[table], func(existing row) bool {
		return slices.ContainsFunc(matched, func(m row) bool { return m["id"] == existing["id"] })
	})
	f.respond(w, r, http.StatusOK, matched)
}

func (f *fakePostgREST) respond(w http.ResponseWriter, r *http.Request, status int, rows []row) {
	if strings.Contains(r.Header.Get("Prefer"), "return=representation") {
		writeRows(w, status, rows)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeRows(w http.ResponseWriter, status int, rows []row) {
	if rows == nil {
		rows = []row{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(rows)
}

func filterRows(rows []row, r *http.Request) []row {
	var out []row
	for _, candidate := range rows {
		if matchesFilters(candidate, r) {
			out = append(out, candidate)
		}
	}
	return out
}

func matchesFilters(candidate row, r *http.Request) bool {
	for column, values := range r.URL.Query() {
		switch column {
		case "select", "order", "limit", "on_conflict":
			continue
		}
		for _, filter := range values {
			if !matchesFilter(candidate[column], filter) {
				return false
			}
		}
	}
	return true
}

func matchesFilter(value any, filter string) bool {
	switch {
	case filter == "is.null":
		return value == nil
	case strings.HasPrefix(filter, "eq."):
		return value != nil && fmt.Sprint(value) == strings.TrimPrefix(filter, "eq.")
	case strings.HasPrefix(filter, "in.(") && strings.HasSuffix(filter, ")"):
		list := strings.Split(strings.TrimSuffix(strings.TrimPrefix(filter, "in.("), ")"), ",")
		return value != nil && slices.Contains(list, fmt.Sprint(value))
	}
	return false
}

func orderRows(rows []row, order string) {
	if order == "" {
		return
	}
	terms := strings.Split(order, ",")
	slices.SortStableFunc(rows, func(a, b row) int {
		for _, term := range terms {
			column, direction, _ := strings.Cut(term, ".")
			c := strings.Compare(fmt.Sprint(a[column]), fmt.Sprint(b[column]))
			if direction == "desc" {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewPostgRESTClient(config.Adapter{
		URL:            srv.URL + "/",
		APIKey:         testAPIKey,
		RequestTimeout: 5 * time.Second,
	}, "access-token", logger.Nop())
	require.NoError(t, err)
	return c
}

func newFakeBackend(t *testing.T) (*fakePostgREST, *Client) {
	t.Helper()
	fake := newFakePostgREST()
	return fake, newTestClient(t, fake.router())
}

func strPtr(s string) *string {
	return &s
}
