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

package output

import (
	"strconv"
	"time"

	"github.com/sirseerhq/bitbucket-relay/internal/bitbucket"
)

// Header holds the CSV column headers, in output order. The order matches
// the fields emitted by Row.record.
var Header = []string{
	"ID",
	"Title",
	"Author",
	"State",
	"Source Branch",
	"Destination Branch",
	"Created On",
	"Updated On",
	"Link",
}

// Row is the flat export shape of one pull request. It decouples the CSV
// output format from the nested API response structure; all fields are
// plain strings ready for serialization.
type Row struct {
	ID                int
	Title             string
	Author            string
	State             string
	SourceBranch      string
	DestinationBranch string
	CreatedOn         string
	UpdatedOn         string
	Link              string
}

// NewRow flattens a pull request into a Row. Deleted source or destination
// branches become empty strings; timestamps are serialized as RFC 3339.
func NewRow(pr bitbucket.PullRequest) Row {
	return Row{
		ID:                pr.ID,
		Title:             pr.Title,
		Author:            pr.Author.DisplayName,
		State:             string(pr.State),
		SourceBranch:      branchName(pr.Source),
		DestinationBranch: branchName(pr.Destination),
		CreatedOn:         pr.CreatedOn.Format(time.RFC3339),
		UpdatedOn:         pr.UpdatedOn.Format(time.RFC3339),
		Link:              pr.Links.HTML.Href,
	}
}

// record returns the row's values in Header order.
func (r Row) record() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.Title,
		r.Author,
		r.State,
		r.SourceBranch,
		r.DestinationBranch,
		r.CreatedOn,
		r.UpdatedOn,
		r.Link,
	}
}

func branchName(e bitbucket.Endpoint) string {
	if e.Branch == nil {
		return ""
	}
	return e.Branch.Name
}
