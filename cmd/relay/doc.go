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

// Package main implements the bitbucket-relay command-line interface.
// This tool exports pull request data from Bitbucket Cloud repositories
// to CSV.
//
// The CLI supports:
//   - Filtering by state, creation date range and destination branch
//   - Customizable output destinations (stdout or file)
//   - API token authentication via flags or environment variables
//   - YAML configuration files for endpoint and page size overrides
//
// Usage:
//
//	bitbucket-relay export <workspace>/<repo> [flags]
//
// Example:
//
//	export BITBUCKET_EMAIL=you@example.com
//	export BITBUCKET_API_TOKEN=your_token
//	bitbucket-relay export myteam/my-repo --state OPEN --output prs.csv
//
// Exit codes:
//   - 0: Success
//   - 1: Any credential, API, network or output error
//
// CSV goes to stdout (or the --output file); progress and the final
// summary go to stderr, so stdout can be piped safely.
package main
