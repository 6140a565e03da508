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

package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirseerhq/bitbucket-relay/internal/auth"
	relayerrors "github.com/sirseerhq/bitbucket-relay/internal/errors"
	"github.com/sirseerhq/bitbucket-relay/pkg/version"
)

// maxResponseSize caps API response bodies to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// RESTClient implements the Client interface against the Bitbucket Cloud
// REST API v2. It is configured with:
//   - Basic Auth via Bitbucket API token credentials
//   - Custom base endpoint (e.g., for testing against a local server)
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Optimized connection pooling
type RESTClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewRESTClient creates a Bitbucket API client authenticated with the given
// credentials. baseURL is the API root, normally
// "https://api.bitbucket.org/2.0".
func NewRESTClient(creds auth.Credentials, baseURL string) *RESTClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	return &RESTClient{
		httpClient: &http.Client{
			Transport: &basicAuthTransport{
				creds: creds,
				base:  transport,
			},
		},
		baseURL: baseURL,
	}
}

// FetchPullRequests fetches one page of pull requests. The first request
// targets the list endpoint with opts.Params attached; subsequent requests
// go to the opaque opts.PageURL cursor verbatim.
func (c *RESTClient) FetchPullRequests(ctx context.Context, workspace, repoSlug string, opts FetchOptions) (*PullRequestPage, error) {
	requestURL := opts.PageURL
	if requestURL == "" {
		requestURL = fmt.Sprintf("%s/repositories/%s/%s/pullrequests", c.baseURL, workspace, repoSlug)
		if len(opts.Params) > 0 {
			requestURL += "?" + opts.Params.Encode()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", requestURL, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to Bitbucket API failed. Please check your internet connection and try again: %w (%v)",
			relayerrors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			body = []byte("failed to read response body")
		}
		return nil, &relayerrors.APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var page PullRequestPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode page from %s: %w (%v)",
			requestURL, relayerrors.ErrMalformedResponse, err)
	}

	// A list response without a values array is not a page at all.
	if page.Values == nil {
		return nil, fmt.Errorf("page from %s is missing the values array: %w",
			requestURL, relayerrors.ErrMalformedResponse)
	}

	return &page, nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive
// memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// basicAuthTransport adds Basic Auth credentials and safety limits to HTTP
// requests. Bitbucket Cloud API tokens authenticate with the Atlassian
// account email as the username and the token as the password.
type basicAuthTransport struct {
	creds auth.Credentials
	base  http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *basicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	req = req.Clone(req.Context())

	req.SetBasicAuth(t.creds.Email, t.creds.APIToken)
	req.Header.Set("User-Agent", fmt.Sprintf("bitbucket-relay/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      maxResponseSize,
		}
	}

	return resp, nil
}
