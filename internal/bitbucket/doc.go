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

// Package bitbucket provides access to the Bitbucket Cloud REST API v2
// pull requests endpoint.
//
// The package is built around three independently testable pieces:
//
//   - Filter.QueryParams translates user filters into the request
//     parameters Bitbucket understands (the state parameter plus the
//     q query-language string).
//   - FetchAll walks the paginated endpoint to completion, following the
//     server-issued next URL until no more pages remain.
//   - Filter.Apply re-applies the state and destination-branch filters to
//     the accumulated records, because Bitbucket only sees the filter
//     parameters on the first request and pages fetched through the next
//     URL are not guaranteed to honor them.
//
// Authentication uses Bitbucket Cloud API tokens via HTTP Basic Auth
// (Atlassian account email + token).
// See: https://support.atlassian.com/bitbucket-cloud/docs/api-tokens/
package bitbucket
