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

import "context"

// MockClient is a mock implementation of the Client interface for testing.
// It serves a scripted sequence of pages: the first call returns Pages[0],
// a call with PageURL equal to Pages[i].Next returns Pages[i+1].
type MockClient struct {
	// Pages to serve, in order. Each page's Next field chains to the
	// following page; the last page's Next should be empty.
	Pages []PullRequestPage

	// Error to return on the call with index ErrorAt (0-based). Ignored
	// when Error is nil.
	Error   error
	ErrorAt int

	// Track calls for verification
	CallCount int
	LastOpts  []FetchOptions
}

// FetchPullRequests implements the Client interface.
func (m *MockClient) FetchPullRequests(ctx context.Context, workspace, repoSlug string, opts FetchOptions) (*PullRequestPage, error) {
	call := m.CallCount
	m.CallCount++
	m.LastOpts = append(m.LastOpts, opts)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.Error != nil && call == m.ErrorAt {
		return nil, m.Error
	}

	if opts.PageURL == "" {
		if len(m.Pages) == 0 {
			return &PullRequestPage{Values: []PullRequest{}}, nil
		}
		page := m.Pages[0]
		return &page, nil
	}

	for i := range m.Pages {
		if m.Pages[i].Next == opts.PageURL && i+1 < len(m.Pages) {
			page := m.Pages[i+1]
			return &page, nil
		}
	}

	return &PullRequestPage{Values: []PullRequest{}}, nil
}
