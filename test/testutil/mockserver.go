// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package testutil provides common test helpers for bitbucket-relay
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
)

// MockServer simulates the Bitbucket Cloud paginated pull requests
// endpoint. It serves a scripted sequence of pages and records every
// request URL so tests can assert which parameters each page request
// carried.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []url.URL
}

// NewPaginatedServer creates a mock server that serves the given pages in
// order. Page 1 is served for requests without a page parameter; each
// page links to the next via a next URL pointing back at the server.
// The next URL deliberately carries only the page number, mimicking
// Bitbucket dropping the original filter parameters from cursors.
func NewPaginatedServer(t *testing.T, pages ...[]map[string]any) *MockServer {
	t.Helper()

	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.mu.Lock()
		ms.requests = append(ms.requests, *r.URL)
		ms.mu.Unlock()

		pageNum := 1
		if p := r.URL.Query().Get("page"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 || n > len(pages) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error": {"message": "Invalid page"}}`))
				return
			}
			pageNum = n
		}

		values := pages[pageNum-1]
		response := map[string]any{
			"size":    len(values),
			"page":    pageNum,
			"pagelen": len(values),
			"values":  values,
		}
		if pageNum < len(pages) {
			response["next"] = fmt.Sprintf("%s%s?page=%d", ms.Server.URL, r.URL.Path, pageNum+1)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))

	t.Cleanup(ms.Server.Close)
	return ms
}

// NewErrorServer creates a mock server that always returns the specified
// status code.
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()

	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.mu.Lock()
		ms.requests = append(ms.requests, *r.URL)
		ms.mu.Unlock()

		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(ms.Server.Close)
	return ms
}

// NewFailAtPageServer serves pages like NewPaginatedServer but returns the
// given status once the failAt page (1-based) is requested. Used to verify
// that a mid-pagination failure aborts the whole fetch.
func NewFailAtPageServer(t *testing.T, failAt, statusCode int, pages ...[]map[string]any) *MockServer {
	t.Helper()

	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ms.mu.Lock()
		ms.requests = append(ms.requests, *r.URL)
		ms.mu.Unlock()

		pageNum := 1
		if p := r.URL.Query().Get("page"); p != "" {
			if n, err := strconv.Atoi(p); err == nil {
				pageNum = n
			}
		}

		if pageNum >= failAt {
			w.WriteHeader(statusCode)
			_, _ = w.Write([]byte(http.StatusText(statusCode)))
			return
		}

		values := pages[pageNum-1]
		response := map[string]any{
			"size":    len(values),
			"page":    pageNum,
			"pagelen": len(values),
			"values":  values,
		}
		if pageNum < len(pages) {
			response["next"] = fmt.Sprintf("%s%s?page=%d", ms.Server.URL, r.URL.Path, pageNum+1)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))

	t.Cleanup(ms.Server.Close)
	return ms
}

// Requests returns a copy of the request URLs received so far, in order.
func (ms *MockServer) Requests() []url.URL {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	out := make([]url.URL, len(ms.requests))
	copy(out, ms.requests)
	return out
}
