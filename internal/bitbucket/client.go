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

// Client defines the interface for fetching pages of pull requests from
// the Bitbucket API. This interface allows for easy mocking in tests.
type Client interface {
	// FetchPullRequests retrieves one page of pull requests from the
	// specified repository. When opts.PageURL is empty the first page of
	// the list endpoint is fetched with opts.Params attached; otherwise
	// the request goes to opts.PageURL exactly as the server issued it.
	FetchPullRequests(ctx context.Context, workspace, repoSlug string, opts FetchOptions) (*PullRequestPage, error)
}
