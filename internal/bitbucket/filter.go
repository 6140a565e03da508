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

// Apply re-applies the state and destination-branch filters to an
// accumulated result set. The query parameters are only attached to the
// first page request; pages fetched through the server-issued next URL may
// not preserve the original filter intent, so the result set is re-checked
// here to guarantee every returned record satisfies the active filters.
//
// Date-range filters are not re-applied; they rely entirely on server-side
// q handling. Hardening candidate.
//
// Pure: no I/O, the input slice is not mutated, and the returned slice
// preserves the original relative order.
func (f Filter) Apply(prs []PullRequest) []PullRequest {
	if f.State == "" && f.DestinationBranch == "" {
		return prs
	}

	filtered := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		if f.State != "" && pr.State != f.State {
			continue
		}
		if f.DestinationBranch != "" {
			// A deleted destination branch cannot match an active branch
			// filter.
			if pr.Destination.Branch == nil || pr.Destination.Branch.Name != f.DestinationBranch {
				continue
			}
		}
		filtered = append(filtered, pr)
	}

	return filtered
}
