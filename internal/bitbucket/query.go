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
	"fmt"
	"net/url"
	"strings"
	"time"
)

// dateLayout is the bare-date format used in created_on query clauses.
const dateLayout = "2006-01-02"

// Filter is the set of user-requested constraints the final result set
// must satisfy. The zero value of each field means the constraint is
// inactive. Filters are passed by value and never mutated.
type Filter struct {
	// State restricts results to one pull request state. Empty means all
	// states.
	State State

	// CreatedAfter is the inclusive lower bound on the creation date.
	// Only the calendar date matters; a zero time means no bound.
	CreatedAfter time.Time

	// CreatedBefore is the inclusive upper bound on the creation date.
	// The entire day is included. A zero time means no bound.
	CreatedBefore time.Time

	// DestinationBranch restricts results to pull requests targeting this
	// branch. Empty means any destination.
	DestinationBranch string
}

// QueryParams converts the filter into Bitbucket request parameters. The
// state filter becomes the dedicated state parameter; everything else is
// expressed in the q query-language string, with clauses joined by AND.
// When no query-language clauses apply, the q key is omitted entirely.
//
// Pure and total: no error conditions, no I/O.
func (f Filter) QueryParams() url.Values {
	params := url.Values{}

	if f.State != "" {
		params.Set("state", string(f.State))
	}

	var clauses []string

	if !f.CreatedAfter.IsZero() {
		clauses = append(clauses, fmt.Sprintf("created_on >= %s", f.CreatedAfter.Format(dateLayout)))
	}

	if !f.CreatedBefore.IsZero() {
		// created_on carries time-of-day precision, so compare with
		// "< next day" rather than "<= bound": a naive <= on the bare date
		// would exclude pull requests created later on the boundary day.
		dayAfter := f.CreatedBefore.AddDate(0, 0, 1)
		clauses = append(clauses, fmt.Sprintf("created_on < %s", dayAfter.Format(dateLayout)))
	}

	if f.DestinationBranch != "" {
		// The branch name is quoted verbatim. Embedded double quotes are not
		// escaped; the Bitbucket query language offers no escape syntax for
		// them. Known limitation.
		clauses = append(clauses, fmt.Sprintf("destination.branch.name = \"%s\"", f.DestinationBranch))
	}

	if len(clauses) > 0 {
		params.Set("q", strings.Join(clauses, " AND "))
	}

	return params
}

// Describe returns a short human-readable summary of the active filters,
// such as "state=OPEN, created>=2023-01-01". Returns the empty string when
// no filters are active. Used for the stderr summary line.
func (f Filter) Describe() string {
	var parts []string

	if f.State != "" {
		parts = append(parts, fmt.Sprintf("state=%s", f.State))
	}
	if !f.CreatedAfter.IsZero() {
		parts = append(parts, fmt.Sprintf("created>=%s", f.CreatedAfter.Format(dateLayout)))
	}
	if !f.CreatedBefore.IsZero() {
		parts = append(parts, fmt.Sprintf("created<=%s", f.CreatedBefore.Format(dateLayout)))
	}
	if f.DestinationBranch != "" {
		parts = append(parts, fmt.Sprintf("destination=%s", f.DestinationBranch))
	}

	return strings.Join(parts, ", ")
}
