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
	"time"
)

// State is a pull request state as reported by Bitbucket Cloud.
// The API uses uppercase strings for state values.
type State string

// The four states a Bitbucket Cloud pull request can be in.
const (
	StateOpen       State = "OPEN"
	StateMerged     State = "MERGED"
	StateDeclined   State = "DECLINED"
	StateSuperseded State = "SUPERSEDED"
)

// States lists all valid pull request states, in the order they are
// presented to the user in CLI help.
func States() []State {
	return []State{StateOpen, StateMerged, StateDeclined, StateSuperseded}
}

// ParseState validates a user-supplied state name.
func ParseState(s string) (State, error) {
	state := State(s)
	for _, valid := range States() {
		if state == valid {
			return state, nil
		}
	}
	return "", fmt.Errorf("invalid state %q. Valid states: OPEN, MERGED, DECLINED, SUPERSEDED", s)
}

// Account is the author of a pull request (subset of the Bitbucket
// account object).
type Account struct {
	DisplayName string `json:"display_name"`
}

// Branch is a reference to a branch by name.
type Branch struct {
	Name string `json:"name"`
}

// Endpoint is the source or destination side of a pull request. Branch is
// nil when the branch was deleted after the PR was merged or declined.
type Endpoint struct {
	Branch *Branch `json:"branch"`
}

// Link is a single href from the Bitbucket _links structure.
type Link struct {
	Href string `json:"href"`
}

// Links holds the links associated with a pull request resource.
type Links struct {
	HTML Link `json:"html"`
}

// PullRequest is a single pull request as returned by the Bitbucket Cloud
// API. It maps to the objects in the values array of the paginated list
// endpoint and is never mutated after decoding.
type PullRequest struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Author      Account   `json:"author"`
	State       State     `json:"state"`
	Source      Endpoint  `json:"source"`
	Destination Endpoint  `json:"destination"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
	Links       Links     `json:"links"`
}

// PullRequestPage is one page of the paginated list response. Next holds
// the URL of the following page; empty means no more pages. The client
// treats Next as an opaque cursor and passes it back verbatim.
type PullRequestPage struct {
	Size    int           `json:"size"`
	Page    int           `json:"page"`
	PageLen int           `json:"pagelen"`
	Next    string        `json:"next"`
	Values  []PullRequest `json:"values"`
}

// FetchOptions configures a single page request. Exactly one of the two
// modes is used: the first request goes to the list endpoint with Params
// attached, subsequent requests go to the server-issued PageURL unmodified.
type FetchOptions struct {
	// Params are the query parameters for the first request. Ignored when
	// PageURL is set; next-page URLs already encode the server's pagination
	// state and must not be re-decorated.
	Params url.Values

	// PageURL is the next-page cursor from a previous response. Empty
	// fetches the first page of the list endpoint.
	PageURL string
}
