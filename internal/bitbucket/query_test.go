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
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantState string
		wantQuery string
	}{
		{
			name:   "empty filter produces no parameters",
			filter: Filter{},
		},
		{
			name:      "state only",
			filter:    Filter{State: StateOpen},
			wantState: "OPEN",
		},
		{
			name:      "created after only",
			filter:    Filter{CreatedAfter: date(2023, time.January, 1)},
			wantQuery: "created_on >= 2023-01-01",
		},
		{
			name:      "created before advances one day with strict less-than",
			filter:    Filter{CreatedBefore: date(2023, time.January, 31)},
			wantQuery: "created_on < 2023-02-01",
		},
		{
			name: "date range",
			filter: Filter{
				CreatedAfter:  date(2023, time.January, 1),
				CreatedBefore: date(2023, time.January, 31),
			},
			wantQuery: "created_on >= 2023-01-01 AND created_on < 2023-02-01",
		},
		{
			name:      "upper bound across year boundary",
			filter:    Filter{CreatedBefore: date(2023, time.December, 31)},
			wantQuery: "created_on < 2024-01-01",
		},
		{
			name:      "destination branch quoted verbatim",
			filter:    Filter{DestinationBranch: "main"},
			wantQuery: `destination.branch.name = "main"`,
		},
		{
			name: "all clauses joined with AND",
			filter: Filter{
				State:             StateMerged,
				CreatedAfter:      date(2023, time.June, 15),
				CreatedBefore:     date(2023, time.June, 30),
				DestinationBranch: "release/2.0",
			},
			wantState: "MERGED",
			wantQuery: `created_on >= 2023-06-15 AND created_on < 2023-07-01 AND destination.branch.name = "release/2.0"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.filter.QueryParams()

			if got := params.Get("state"); got != tt.wantState {
				t.Errorf("state param = %q, want %q", got, tt.wantState)
			}
			if got := params.Get("q"); got != tt.wantQuery {
				t.Errorf("q param = %q, want %q", got, tt.wantQuery)
			}

			// Absent filters must omit the keys entirely, not send empty
			// strings.
			if tt.wantState == "" {
				if _, ok := params["state"]; ok {
					t.Error("state key present for inactive state filter")
				}
			}
			if tt.wantQuery == "" {
				if _, ok := params["q"]; ok {
					t.Error("q key present for filter with no query clauses")
				}
			}
		})
	}
}

func TestQueryParamsPure(t *testing.T) {
	filter := Filter{State: StateOpen, DestinationBranch: "main"}

	first := filter.QueryParams().Encode()
	second := filter.QueryParams().Encode()

	if first != second {
		t.Errorf("QueryParams not deterministic: %q vs %q", first, second)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   string
	}{
		{
			name:   "no filters",
			filter: Filter{},
			want:   "",
		},
		{
			name:   "state only",
			filter: Filter{State: StateOpen},
			want:   "state=OPEN",
		},
		{
			name: "all filters",
			filter: Filter{
				State:             StateDeclined,
				CreatedAfter:      date(2023, time.March, 1),
				CreatedBefore:     date(2023, time.March, 31),
				DestinationBranch: "develop",
			},
			want: "state=DECLINED, created>=2023-03-01, created<=2023-03-31, destination=develop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		input   string
		want    State
		wantErr bool
	}{
		{input: "OPEN", want: StateOpen},
		{input: "MERGED", want: StateMerged},
		{input: "DECLINED", want: StateDeclined},
		{input: "SUPERSEDED", want: StateSuperseded},
		{input: "open", wantErr: true},
		{input: "CLOSED", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseState(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseState(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseState(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
