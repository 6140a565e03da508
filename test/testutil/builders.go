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

package testutil

import "fmt"

// PR builds the JSON shape of one pull request as the Bitbucket Cloud API
// returns it. An empty destBranch produces a null destination branch, as
// happens when the branch was deleted.
func PR(id int, state, destBranch string) map[string]any {
	var dest any
	if destBranch != "" {
		dest = map[string]any{"name": destBranch}
	}

	return map[string]any{
		"id":     id,
		"title":  fmt.Sprintf("PR %d", id),
		"author": map[string]any{"display_name": fmt.Sprintf("user%d", id)},
		"state":  state,
		"source": map[string]any{
			"branch": map[string]any{"name": fmt.Sprintf("feature/%d", id)},
		},
		"destination": map[string]any{"branch": dest},
		"created_on":  fmt.Sprintf("2023-06-%02dT10:00:00+00:00", (id%28)+1),
		"updated_on":  fmt.Sprintf("2023-06-%02dT12:00:00+00:00", (id%28)+1),
		"links": map[string]any{
			"html": map[string]any{
				"href": fmt.Sprintf("https://bitbucket.org/myteam/my-repo/pull-requests/%d", id),
			},
		},
	}
}
