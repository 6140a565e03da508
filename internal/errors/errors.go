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

// Package errors defines sentinel errors for consistent error handling across
// the application. Every failure aborts the run with exit code 1; the
// sentinels exist so callers and tests can distinguish failure classes with
// errors.Is without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the exporter can hit.
var (
	// ErrMissingCredentials indicates the Bitbucket email or API token could
	// not be resolved from any source. Detected before any network call.
	ErrMissingCredentials = errors.New("bitbucket credentials not found")

	// ErrNetworkFailure indicates a transport-level problem: connection
	// refused, DNS failure, timeout. Distinct from an API error response.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrMalformedResponse indicates a response body that does not match the
	// expected paginated page shape. Always fatal; records are never skipped.
	ErrMalformedResponse = errors.New("malformed bitbucket api response")
)

// APIError represents a non-2xx response from the Bitbucket API. It carries
// the status code and raw response body so the user can see exactly what the
// server said.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("bitbucket API error (HTTP %d): %s", e.StatusCode, e.Body)
}

// AsAPIError reports whether err is (or wraps) an *APIError, returning it
// when found.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
