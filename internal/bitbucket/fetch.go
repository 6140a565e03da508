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
	"strconv"
)

// FetchAll retrieves every pull request in the repository matching the
// filter, walking the paginated endpoint to completion. pageLen is the
// page size requested on the first request; zero or negative leaves the
// server default in place.
//
// The filter's query parameters are attached to the first request only.
// Each response carries an opaque next URL; while one is present, the next
// request goes to it verbatim. The loop terminates when a page has no next
// URL. There is no page cap and no cycle detection: a server that keeps
// issuing next URLs will be followed indefinitely.
//
// Records are accumulated in server-returned order with no deduplication.
// Before returning, the filter is re-applied client-side: Bitbucket is not
// guaranteed to honor the first request's parameters on cursor-fetched
// pages, and the returned set must satisfy every active filter regardless.
//
// Any error from the client aborts the whole fetch; no partial results are
// returned.
func FetchAll(ctx context.Context, client Client, workspace, repoSlug string, filter Filter, pageLen int) ([]PullRequest, error) {
	var all []PullRequest

	params := filter.QueryParams()
	if pageLen > 0 {
		params.Set("pagelen", strconv.Itoa(pageLen))
	}

	opts := FetchOptions{Params: params}
	for {
		page, err := client.FetchPullRequests(ctx, workspace, repoSlug, opts)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Values...)

		if page.Next == "" {
			break
		}
		// The next URL already encodes the server's pagination state; it is
		// never re-decorated with the original parameters.
		opts = FetchOptions{PageURL: page.Next}
	}

	return filter.Apply(all), nil
}
